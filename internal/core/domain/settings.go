package domain

import "time"

// AppSettings holds application configuration.
type AppSettings struct {
	Cache    CacheSettings
	Scan     ScanSettings
	Locators LocatorSettings
	Replace  ReplaceSettings
	Storage  StorageSettings
}

// CacheSettings configures the match cache.
type CacheSettings struct {
	// TTL is how long a computed match set stays valid.
	// Zero disables caching.
	TTL time.Duration
}

// ScanSettings configures the match scanner.
type ScanSettings struct {
	// Parallel enumerates sources concurrently.
	Parallel bool
}

// LocatorSettings configures the links attached to matches.
type LocatorSettings struct {
	// AdminURL is the base for edit locators.
	AdminURL string

	// SiteURL is the base for view locators.
	SiteURL string
}

// ReplaceSettings configures bulk replacement.
type ReplaceSettings struct {
	// WritesPerSecond throttles replace-all writes.
	WritesPerSecond float64
}

// StorageSettings configures the content store.
type StorageSettings struct {
	// DataDir holds the SQLite database. Empty means ~/.rebrand/data.
	DataDir string
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Cache: CacheSettings{
			TTL: time.Hour,
		},
		Scan: ScanSettings{
			Parallel: true,
		},
		Locators: LocatorSettings{
			AdminURL: "http://localhost/admin",
			SiteURL:  "http://localhost",
		},
		Replace: ReplaceSettings{
			WritesPerSecond: 5,
		},
	}
}
