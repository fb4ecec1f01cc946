package driving

import (
	"context"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// ReplaceService applies a find-and-replace to a single match.
type ReplaceService interface {
	// ReplaceMatch replaces every whole-word occurrence of the term in the
	// referenced record. Rejections and failures are *domain.ReplaceError.
	ReplaceMatch(ctx context.Context, req domain.ReplaceRequest) (*domain.ReplaceResult, error)

	// Preview computes the replacement without writing anything.
	Preview(ctx context.Context, req domain.ReplaceRequest) (*domain.ReplacePreview, error)
}
