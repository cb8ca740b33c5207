package archive

// openConfig holds configuration for Open.
type openConfig struct {
	level int
}

// Option configures Open.
type Option func(*openConfig)

// WithCompressionLevel sets the deflate level used for entry content.
// Valid levels are flate.NoCompression (0) through flate.BestCompression
// (9), or flate.DefaultCompression (-1), the default.
func WithCompressionLevel(level int) Option {
	return func(c *openConfig) {
		c.level = level
	}
}

// addConfig holds configuration for AddFile.
type addConfig struct {
	name     string
	metadata any
	hasMeta  bool
}

// AddOption configures AddFile.
type AddOption func(*addConfig)

// WithName overrides the entry's name in the archive. Without it, the
// entry is stored under the base name of the source path.
func WithName(name string) AddOption {
	return func(c *addConfig) {
		c.name = name
	}
}

// WithMetadata attaches a JSON metadata value to the entry. The value is
// encoded into the entry's comment field at add time; the caller's value
// is not referenced afterward.
func WithMetadata(meta any) AddOption {
	return func(c *addConfig) {
		c.metadata = meta
		c.hasMeta = true
	}
}
