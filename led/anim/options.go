package anim

// Clock is a monotonic millisecond counter. The engine polls it once
// per Cycle and applies only the delta since its previous observation;
// counter wraparound is the source's concern and survives the unsigned
// subtraction here.
type Clock func() uint32

// Store persists the selected animation index across power cycles.
type Store interface {
	Load() (int, error)
	Save(index int) error
}

// Config defines an engine's hardware shape and collaborators.
type Config struct {
	Catalog      Catalog
	StripOutputs int
	ColorOutputs int
	Split        int
	Clock        Clock
	Store        Store
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference badge configuration: the preset
// catalog on a 7-output strip split at index 6 plus a 4-channel color
// LED, running on the wall clock with no persistence.
func DefaultConfig() Config {
	return Config{
		Catalog:      Presets(),
		StripOutputs: StripOutputs,
		ColorOutputs: ColorOutputs,
		Split:        StripSplit,
	}
}

// WithCatalog replaces the animation catalog.
func WithCatalog(c Catalog) Option {
	return func(cfg *Config) {
		if len(c) > 0 {
			cfg.Catalog = c
		}
	}
}

// WithOutputs sets the strip and color output counts.
func WithOutputs(strip, color int) Option {
	return func(cfg *Config) {
		if strip > 0 {
			cfg.StripOutputs = strip
		}
		if color > 0 {
			cfg.ColorOutputs = color
		}
	}
}

// WithSplit sets the index at which the strip divides into its two
// independently cascading halves.
func WithSplit(split int) Option {
	return func(cfg *Config) {
		if split > 0 {
			cfg.Split = split
		}
	}
}

// WithClock substitutes the time source, mainly for tests.
func WithClock(c Clock) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Clock = c
		}
	}
}

// WithStore attaches a durable store for the selected animation index.
func WithStore(s Store) Option {
	return func(cfg *Config) {
		cfg.Store = s
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
