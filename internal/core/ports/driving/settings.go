package driving

import (
	"time"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetCacheTTL updates how long a computed match set stays valid.
	SetCacheTTL(ttl time.Duration) error

	// SetLocators updates the base URLs used for edit and view locators.
	SetLocators(adminURL, siteURL string) error

	// Validate checks that current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
