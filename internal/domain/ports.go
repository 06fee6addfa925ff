package domain

// PageLoader parses a markup file into a DocumentNode tree.
type PageLoader interface {
	Load(path string) (*DocumentNode, error)
}

// StyleLoader parses stylesheet files into a single ordered StyleRuleSet.
type StyleLoader interface {
	Load(paths []string) (StyleRuleSet, error)
}

// ConfigLoader loads per-site configuration.
type ConfigLoader interface {
	Load(sitePath string) (SiteConfig, error)
}

// AuditHistory persists audit results for a site across runs.
type AuditHistory interface {
	Save(sitePath string, entry AuditEntry) error
	Load(sitePath string) ([]AuditEntry, error)
}

// GitInfo reports version-control metadata for an audited site.
type GitInfo interface {
	IsGitRepo(sitePath string) bool
	CommitHash(sitePath string) (string, error)
}
