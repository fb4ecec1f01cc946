package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rebrand-tracker/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("cache.ttl", "15m")
	_ = store.Set("scan.parallel", false)
	_ = store.Set("locators.admin_url", "https://cms.example.com/admin")
	_ = store.Set("locators.site_url", "https://example.com")
	_ = store.Set("replace.writes_per_second", 2.5)
	_ = store.Set("storage.data_dir", "/var/lib/rebrand")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, settings.Cache.TTL)
	assert.False(t, settings.Scan.Parallel)
	assert.Equal(t, "https://cms.example.com/admin", settings.Locators.AdminURL)
	assert.Equal(t, "https://example.com", settings.Locators.SiteURL)
	assert.InDelta(t, 2.5, settings.Replace.WritesPerSecond, 0.0001)
	assert.Equal(t, "/var/lib/rebrand", settings.Storage.DataDir)
}

func TestSettingsService_Get_CacheTTLForms(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  time.Duration
	}{
		{"duration string", "90s", 90 * time.Second},
		{"zero disables", "0s", 0},
		{"integer seconds", int64(120), 2 * time.Minute},
		{"invalid falls back", "soon", time.Hour},
		{"negative falls back", "-5m", time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			_ = store.Set("cache.ttl", tt.value)

			settings, err := NewSettingsService(store).Get()

			require.NoError(t, err)
			assert.Equal(t, tt.want, settings.Cache.TTL)
		})
	}
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	want := domain.DefaultAppSettings()
	want.Cache.TTL = 10 * time.Minute
	want.Scan.Parallel = false
	want.Replace.WritesPerSecond = 1
	want.Storage.DataDir = "/tmp/rebrand"

	require.NoError(t, service.Save(&want))
	got, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_SetCacheTTL(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetCacheTTL(30*time.Minute))
	assert.Equal(t, "30m0s", store.GetString("cache.ttl"))

	assert.ErrorIs(t, service.SetCacheTTL(-time.Second), domain.ErrInvalidInput)
}

func TestSettingsService_SetLocators(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetLocators("https://cms.example.com/wp-admin", "https://example.com"))
	assert.Equal(t, "https://cms.example.com/wp-admin", store.GetString("locators.admin_url"))

	err := service.SetLocators("not a url", "https://example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Validate(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.Validate())

	_ = store.Set("replace.writes_per_second", -1.0)
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidInput)

	_ = store.Set("replace.writes_per_second", 3.0)
	_ = store.Set("locators.site_url", "/relative")
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
