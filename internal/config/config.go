package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Database Database `envPrefix:"DATABASE_"`
	Auth     Auth     `envPrefix:"JWT_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"mysql"` // mysql | sqlite
	URL    string `env:"URL"`
}

type Auth struct {
	Secret string `env:"SECRET"`
}

// Checkout holds the storefront pricing constants applied on top of the cart
// subtotal at preview and placement time.
type Checkout struct {
	FreeShippingLimit float64 `env:"FREE_SHIPPING_LIMIT" envDefault:"1000"`
	ShippingCharges   float64 `env:"SHIPPING_CHARGES" envDefault:"99"`
	TaxPercentage     float64 `env:"TAX_PERCENTAGE" envDefault:"18"`
}
