package catalog

// Config locates the catalog document. A non-empty Path wins over Object.
type Config struct {
	// Path is a local YAML file.
	Path string `mapstructure:"path" default:""`
	// Object is the object name in the storage bucket.
	Object string `mapstructure:"object" default:"catalog/items.yaml"`
}
