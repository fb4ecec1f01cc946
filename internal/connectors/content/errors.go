package content

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
)

// readError maps a repository read failure onto the adapter contract.
func readError(err error, kind domain.SourceKind, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", domain.ErrRecordNotFound, kind, id)
	}
	return fmt.Errorf("%w: read %s %d: %w", domain.ErrStorage, kind, id, err)
}

// writeError maps a repository write failure onto the adapter contract.
func writeError(err error, ref domain.RecordRef) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, ref)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrWrite, ref, err)
}

// fieldMismatch reports a replace aimed at a field the record does not have.
func fieldMismatch(ref domain.RecordRef) error {
	return fmt.Errorf("%w: no field %q on %s %d", domain.ErrRecordNotFound, ref.Field, ref.Kind, ref.ID)
}
