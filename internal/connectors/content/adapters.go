package content

import (
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
)

// NewAdapters returns the document, metadata and setting adapters over repo,
// in presentation order.
func NewAdapters(repo driven.ContentRepository, locators Locators) []driven.SourceAdapter {
	return []driven.SourceAdapter{
		NewDocumentAdapter(repo, locators),
		NewMetadataAdapter(repo, locators),
		NewSettingAdapter(repo, locators),
	}
}
