package domain

import "fmt"

// DefaultMaxDepth bounds document traversal when no override is configured.
const DefaultMaxDepth = 256

// SiteConfig holds per-site configuration loaded from .pagekraft.yaml.
type SiteConfig struct {
	Page           string   `yaml:"page"            json:"page,omitempty"`
	Stylesheets    []string `yaml:"stylesheets"     json:"stylesheets,omitempty"`
	SkipCategories []string `yaml:"skip_categories" json:"skip_categories,omitempty"`
	MaxDepth       int      `yaml:"max_depth"       json:"max_depth,omitempty"`
	MinScore       float64  `yaml:"min_score"       json:"min_score,omitempty"`
}

// DefaultConfig returns the configuration used when no .pagekraft.yaml exists.
func DefaultConfig() SiteConfig {
	return SiteConfig{
		Page:     "index.html",
		MaxDepth: DefaultMaxDepth,
	}
}

// Validate catches typos in user-supplied configuration before it is applied.
func (c SiteConfig) Validate() error {
	for _, name := range c.SkipCategories {
		if !ValidCategory(name) {
			return fmt.Errorf("unknown category %q in skip_categories", name)
		}
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MinScore < 0 || c.MinScore > 10 {
		return fmt.Errorf("min_score must be between 0 and 10, got %g", c.MinScore)
	}
	return nil
}

// IsSkippedCategory reports whether the named category is configured out.
func (c SiteConfig) IsSkippedCategory(cat Category) bool {
	for _, name := range c.SkipCategories {
		if name == string(cat) {
			return true
		}
	}
	return false
}

// EffectiveMaxDepth falls back to the default when unset.
func (c SiteConfig) EffectiveMaxDepth() int {
	if c.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}
