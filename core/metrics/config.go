package metrics

// Config controls the metrics endpoint.
type Config struct {
	Enabled bool   `mapstructure:"enabled" default:"true"`
	Path    string `mapstructure:"path" default:"/metrics"`
}
