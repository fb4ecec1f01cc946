package content

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// Ensure SettingAdapter implements the interface.
var _ driven.SourceAdapter = (*SettingAdapter)(nil)

// SettingAdapter exposes global settings. The setting name is its only text field.
type SettingAdapter struct {
	repo     driven.ContentRepository
	locators Locators
}

// NewSettingAdapter creates a setting adapter.
func NewSettingAdapter(repo driven.ContentRepository, locators Locators) *SettingAdapter {
	return &SettingAdapter{repo: repo, locators: locators}
}

// Kind returns domain.SourceKindSetting.
func (a *SettingAdapter) Kind() domain.SourceKind {
	return domain.SourceKindSetting
}

// Enumerate yields every setting.
func (a *SettingAdapter) Enumerate(ctx context.Context) iter.Seq2[domain.SourceRecord, error] {
	return func(yield func(domain.SourceRecord, error) bool) {
		for st, err := range a.repo.ListAllSettings(ctx) {
			if err != nil {
				yield(domain.SourceRecord{}, fmt.Errorf("list settings: %w", err))
				return
			}
			if !yield(a.record(st), nil) {
				return
			}
		}
	}
}

// Get loads a setting by ID.
func (a *SettingAdapter) Get(ctx context.Context, id int64) (*domain.SourceRecord, error) {
	st, err := a.repo.GetSetting(ctx, id)
	if err != nil {
		return nil, readError(err, a.Kind(), id)
	}
	out := a.record(*st)
	return &out, nil
}

// ApplyReplace writes a new value for the setting. The field must be the setting name.
func (a *SettingAdapter) ApplyReplace(ctx context.Context, ref domain.RecordRef, newText string) error {
	st, err := a.repo.GetSetting(ctx, ref.ID)
	if err != nil {
		return readError(err, a.Kind(), ref.ID)
	}
	if ref.Field != st.Name {
		return fieldMismatch(ref)
	}
	if err := a.repo.UpdateSettingValue(ctx, st.Name, newText); err != nil {
		return writeError(err, ref)
	}
	return nil
}

func (a *SettingAdapter) record(st domain.Setting) domain.SourceRecord {
	return domain.SourceRecord{
		ID:          st.ID,
		Fields:      map[string]string{st.Name: st.Value},
		Label:       "Setting " + st.Name,
		EditLocator: a.locators.EditSetting(st.Name),
		ViewLocator: a.locators.ViewSite(),
	}
}
