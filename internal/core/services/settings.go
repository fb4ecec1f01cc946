package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCacheTTL        = "cache.ttl"
	keyScanParallel    = "scan.parallel"
	keyAdminURL        = "locators.admin_url"
	keySiteURL         = "locators.site_url"
	keyWritesPerSecond = "replace.writes_per_second"
	keyStorageDataDir  = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unparsable values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Cache: domain.CacheSettings{
			TTL: s.getDuration(keyCacheTTL, defaults.Cache.TTL),
		},
		Scan: domain.ScanSettings{
			Parallel: s.getBool(keyScanParallel, defaults.Scan.Parallel),
		},
		Locators: domain.LocatorSettings{
			AdminURL: s.getString(keyAdminURL, defaults.Locators.AdminURL),
			SiteURL:  s.getString(keySiteURL, defaults.Locators.SiteURL),
		},
		Replace: domain.ReplaceSettings{
			WritesPerSecond: s.getFloat(keyWritesPerSecond, defaults.Replace.WritesPerSecond),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyStorageDataDir), // No default - empty means ~/.rebrand/data
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyCacheTTL, settings.Cache.TTL.String()); err != nil {
		return fmt.Errorf("save cache ttl: %w", err)
	}
	if err := s.configStore.Set(keyScanParallel, settings.Scan.Parallel); err != nil {
		return fmt.Errorf("save scan parallel: %w", err)
	}
	if err := s.configStore.Set(keyAdminURL, settings.Locators.AdminURL); err != nil {
		return fmt.Errorf("save admin url: %w", err)
	}
	if err := s.configStore.Set(keySiteURL, settings.Locators.SiteURL); err != nil {
		return fmt.Errorf("save site url: %w", err)
	}
	if err := s.configStore.Set(keyWritesPerSecond, settings.Replace.WritesPerSecond); err != nil {
		return fmt.Errorf("save writes per second: %w", err)
	}
	if settings.Storage.DataDir != "" {
		if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
			return fmt.Errorf("save data dir: %w", err)
		}
	}
	return nil
}

// SetCacheTTL updates how long a computed match set stays valid.
func (s *SettingsService) SetCacheTTL(ttl time.Duration) error {
	if ttl < 0 {
		return fmt.Errorf("%w: cache ttl must not be negative", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyCacheTTL, ttl.String()); err != nil {
		return fmt.Errorf("save cache ttl: %w", err)
	}
	return nil
}

// SetLocators updates the base URLs used for edit and view locators.
func (s *SettingsService) SetLocators(adminURL, siteURL string) error {
	if err := validateBaseURL(adminURL); err != nil {
		return fmt.Errorf("admin url: %w", err)
	}
	if err := validateBaseURL(siteURL); err != nil {
		return fmt.Errorf("site url: %w", err)
	}
	if err := s.configStore.Set(keyAdminURL, adminURL); err != nil {
		return fmt.Errorf("save admin url: %w", err)
	}
	if err := s.configStore.Set(keySiteURL, siteURL); err != nil {
		return fmt.Errorf("save site url: %w", err)
	}
	return nil
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	if settings.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative", domain.ErrInvalidInput)
	}
	if settings.Replace.WritesPerSecond <= 0 {
		return fmt.Errorf("%w: replace.writes_per_second must be positive", domain.ErrInvalidInput)
	}
	if err := validateBaseURL(settings.Locators.AdminURL); err != nil {
		return fmt.Errorf("locators.admin_url: %w", err)
	}
	if err := validateBaseURL(settings.Locators.SiteURL); err != nil {
		return fmt.Errorf("locators.site_url: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute URL", domain.ErrInvalidInput, raw)
	}
	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getDuration reads a duration string such as "30m". A bare integer is
// taken as seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := s.configStore.GetString(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil || d < 0 {
			return defaultVal
		}
		return d
	}
	if _, exists := s.configStore.Get(key); exists {
		return time.Duration(s.configStore.GetInt(key)) * time.Second
	}
	return defaultVal
}
