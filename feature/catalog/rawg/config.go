package rawg

// Config holds configuration for the RAWG metadata provider.
type Config struct {
	// BaseURL is the provider API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.rawg.io/api"`
	// APIKey is the provider credential. Lookups fail with a configuration
	// error before any network I/O when it is empty.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds every outbound lookup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"7"`
}
