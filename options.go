package examtable

import "github.com/tsawler/examtable/config"

// ExtractOptions holds configuration for schedule extraction.
type ExtractOptions struct {
	// Page selection, 1-indexed; nil means all pages
	pages []int

	// workers overrides cfg.Workers when positive
	workers int

	cfg config.Config
}

func defaultOptions() ExtractOptions {
	return ExtractOptions{cfg: config.Default()}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	n := ExtractOptions{
		workers: o.workers,
		cfg:     o.cfg,
	}
	if o.pages != nil {
		n.pages = make([]int, len(o.pages))
		copy(n.pages, o.pages)
	}
	return n
}

// effectiveConfig applies the workers override to the configuration
func (o ExtractOptions) effectiveConfig() config.Config {
	cfg := o.cfg
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	return cfg
}
