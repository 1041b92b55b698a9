package configs

import "time"

// AdServer holds the connection settings for the remote ad server. BaseURL
// is the API root; the app credentials are sent as headers on every request.
type AdServer struct {
	BaseURL   string        `env:"BASE_URL" envDefault:"https://api.adchain.com"`
	AppID     string        `env:"APP_ID"`
	AppSecret string        `env:"APP_SECRET"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
