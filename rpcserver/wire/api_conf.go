package wire

// API is the rate limit section of the service config as the middleware
// reads it.
type API struct {
	RateLimit       RateLimit `yaml:"rate_limit"`
	NoLimitApiList  []string  `yaml:"nolimit_api_list"`
	NoLimitHostList []string  `yaml:"nolimit_host_list"`
}

type RateLimit struct {
	PerSecond int `yaml:"per_second"`
	Burst     int `yaml:"burst"`
}
