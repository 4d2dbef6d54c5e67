package keeper

// Config describes a config for Keeper
type Config struct {
	// Used for logging and as the StoreMetrics label
	Name string
	// Defaults to NewBasicLogger(false)
	Logger Logger
	// Defaults to NoopMetricsProvider
	MetricsProvider MetricsProvider
	// Encodes stored values, defaults to JSONSerde
	Serde Serde
}

// DefaultConfig returns a config with every field set to its default.
func DefaultConfig() *Config {
	return configOrDefault(nil)
}

// configOrDefault fills the unset fields of config, allocating it when nil.
func configOrDefault(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	config.setDefaults()
	return config
}

func (config *Config) setDefaults() {
	if config.Name == "" {
		config.Name = "keeper"
	}
	if config.Logger == nil {
		config.Logger = NewBasicLogger(false)
	}
	if config.MetricsProvider == nil {
		config.MetricsProvider = &NoopMetricsProvider{}
	}
	if config.Serde == nil {
		config.Serde = NewJSONSerde()
	}
}
