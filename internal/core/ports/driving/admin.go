package driving

import "context"

// AdminService performs administrative resets.
type AdminService interface {
	// ClearAllState drops the stored terms and the cached match set.
	ClearAllState(ctx context.Context) error
}
