package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not toml {{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("cache.ttl")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("s", "hello"))
	require.NoError(t, store.Set("i", 42))
	require.NoError(t, store.Set("f", 2.5))
	require.NoError(t, store.Set("b", true))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("s"), "hello"},
		{"string wrong type", store.GetString("i"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"int", store.GetInt("i"), 42},
		{"int wrong type", store.GetInt("s"), 0},
		{"float", store.GetFloat("f"), 2.5},
		{"float from int", store.GetFloat("i"), 42.0},
		{"float wrong type", store.GetFloat("b"), 0.0},
		{"bool", store.GetBool("b"), true},
		{"bool wrong type", store.GetBool("s"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("cache.ttl", "30m"))
	require.NoError(t, store.Set("scan.parallel", false))
	require.NoError(t, store.Set("replace.writes_per_second", 2))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[cache]")
	assert.Contains(t, string(raw), "[scan]")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "30m", reopened.GetString("cache.ttl"))
	assert.False(t, reopened.GetBool("scan.parallel"))
	assert.Equal(t, 2, reopened.GetInt("replace.writes_per_second"))
	assert.Equal(t, 2.0, reopened.GetFloat("replace.writes_per_second"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[locators]
admin_url = "https://example.com/admin"
site_url = "https://example.com"

[replace]
writes_per_second = 0.5
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/admin", store.GetString("locators.admin_url"))
	assert.Equal(t, "https://example.com", store.GetString("locators.site_url"))
	assert.Equal(t, 0.5, store.GetFloat("replace.writes_per_second"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_WriteError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("k", "v"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("other", "v"))
	assert.Error(t, store.Save())
}

func TestConfigStore_Load_KeepsDataOnParseError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("cache.ttl", "5m"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("][ broken"), 0600))

	assert.Error(t, store.Load())
	assert.Equal(t, "5m", store.GetString("cache.ttl"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := "key" + string(rune('0'+i))
			_ = store.Set(key, i)
			_ = store.GetInt(key)
			_ = store.GetFloat(key)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, store.GetInt("key3"))
}

func TestNestMap(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want map[string]any
	}{
		{
			name: "top level",
			flat: map[string]any{"a": 1},
			want: map[string]any{"a": 1},
		},
		{
			name: "nested",
			flat: map[string]any{"cache.ttl": "1h", "scan.parallel": true, "cache.x": 2},
			want: map[string]any{
				"cache": map[string]any{"ttl": "1h", "x": 2},
				"scan":  map[string]any{"parallel": true},
			},
		},
		{
			name: "value blocks table path",
			flat: map[string]any{"a": 1, "a.b": 2},
			want: map[string]any{"a": 1, "a.b": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nestMap(tt.flat))
		})
	}
}
