package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driven"
	"github.com/custodia-labs/rebrand-tracker/internal/core/ports/driving"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// Ensure ReplaceEngine implements the interface.
var _ driving.ReplaceService = (*ReplaceEngine)(nil)

// ReplaceEngine applies an audited find-and-replace to a single record.
//
// A request moves through Validated, Snapshotted, Written and
// CacheInvalidated, or stops early as Rejected or Failed. Rejections
// happen before any write and leave the cache untouched.
type ReplaceEngine struct {
	adapters map[domain.SourceKind]driven.SourceAdapter
	cache    *MatchCache
}

// NewReplaceEngine creates a replace engine over the given adapters.
func NewReplaceEngine(adapters []driven.SourceAdapter, cache *MatchCache) *ReplaceEngine {
	byKind := make(map[domain.SourceKind]driven.SourceAdapter, len(adapters))
	for _, a := range adapters {
		byKind[a.Kind()] = a
	}
	return &ReplaceEngine{
		adapters: byKind,
		cache:    cache,
	}
}

// replacePlan is a validated request with its computed substitution.
type replacePlan struct {
	adapter     driven.SourceAdapter
	ref         domain.RecordRef
	term        string
	before      string
	after       string
	occurrences int
}

// ReplaceMatch replaces every whole-word occurrence of the term in one record.
func (e *ReplaceEngine) ReplaceMatch(ctx context.Context, req domain.ReplaceRequest) (*domain.ReplaceResult, error) {
	logger.Section("Replace")

	plan, err := e.plan(ctx, req)
	if err != nil {
		logger.Debug("replace %s/%d rejected: %v", req.Kind, req.RecordID, err)
		return nil, err
	}

	revisionID := e.snapshot(ctx, plan)

	if err := plan.adapter.ApplyReplace(ctx, plan.ref, plan.after); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.Rejected(domain.ReasonRecordNotFound, err)
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, domain.Rejected(domain.ReasonInvalidContext, err)
		}
		if !errors.Is(err, domain.ErrWrite) {
			err = fmt.Errorf("%w: %w", domain.ErrWrite, err)
		}
		logger.Warn("replace %s failed: %v", plan.ref, err)
		return nil, domain.Failed(domain.ReasonWriteError, err)
	}

	e.cache.Invalidate()
	logger.Info("replaced %d occurrence(s) of %q in %s", plan.occurrences, plan.term, plan.ref)

	return &domain.ReplaceResult{
		Ref:         plan.ref,
		Term:        plan.term,
		Replacement: req.Replacement,
		Occurrences: plan.occurrences,
		RevisionID:  revisionID,
	}, nil
}

// Preview computes what ReplaceMatch would write without writing it.
func (e *ReplaceEngine) Preview(ctx context.Context, req domain.ReplaceRequest) (*domain.ReplacePreview, error) {
	plan, err := e.plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return &domain.ReplacePreview{
		Ref:         plan.ref,
		Before:      plan.before,
		After:       plan.after,
		Occurrences: plan.occurrences,
	}, nil
}

// plan validates the request, fetches the record and computes the new text.
func (e *ReplaceEngine) plan(ctx context.Context, req domain.ReplaceRequest) (*replacePlan, error) {
	term := domain.SanitizeTerm(req.Term)
	switch {
	case !req.Kind.IsValid():
		return nil, invalidContext("%w: %q", domain.ErrUnsupportedKind, req.Kind)
	case req.RecordID <= 0:
		return nil, invalidContext("record id must be positive, got %d", req.RecordID)
	case term == "":
		return nil, invalidContext("term is required")
	}

	adapter, ok := e.adapters[req.Kind]
	if !ok {
		return nil, invalidContext("no adapter for %s", req.Kind)
	}

	rec, err := adapter.Get(ctx, req.RecordID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.Rejected(domain.ReasonRecordNotFound, err)
		}
		if !errors.Is(err, domain.ErrStorage) {
			err = fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}
		return nil, fmt.Errorf("fetch %s %d: %w", req.Kind, req.RecordID, err)
	}

	field, err := resolveField(rec, req)
	if err != nil {
		return nil, err
	}

	before := rec.Fields[field]
	after, n := newWordMatcher(term).Replace(before, req.Replacement)
	if after == before {
		return nil, domain.Rejected(domain.ReasonTermNotFound,
			fmt.Errorf("%w: %q in %s/%d/%s", domain.ErrTermNotFound, term, req.Kind, req.RecordID, field))
	}

	return &replacePlan{
		adapter:     adapter,
		ref:         domain.RecordRef{Kind: req.Kind, ID: req.RecordID, Field: field},
		term:        term,
		before:      before,
		after:       after,
		occurrences: n,
	}, nil
}

// snapshot captures a revision when the adapter supports it.
// Failures are logged and swallowed.
func (e *ReplaceEngine) snapshot(ctx context.Context, plan *replacePlan) string {
	snap, ok := plan.adapter.(driven.Snapshotter)
	if !ok {
		return ""
	}
	id, err := snap.CaptureSnapshot(ctx, plan.ref.ID)
	if err != nil {
		logger.Warn("snapshot of %s failed, continuing: %v", plan.ref, err)
		return ""
	}
	logger.Debug("snapshot %s captured for %s", id, plan.ref)
	return id
}

// resolveField picks the text field the request targets.
// Without an explicit field the record must have exactly one.
func resolveField(rec *domain.SourceRecord, req domain.ReplaceRequest) (string, error) {
	if req.Field != "" {
		if _, ok := rec.Fields[req.Field]; !ok {
			return "", domain.Rejected(domain.ReasonRecordNotFound,
				fmt.Errorf("%w: field %q of %s/%d", domain.ErrRecordNotFound, req.Field, req.Kind, req.RecordID))
		}
		return req.Field, nil
	}
	if len(rec.Fields) != 1 {
		return "", invalidContext("%s/%d has %d text fields, field is required", req.Kind, req.RecordID, len(rec.Fields))
	}
	for name := range rec.Fields {
		return name, nil
	}
	return "", invalidContext("no text field")
}

func invalidContext(format string, args ...any) *domain.ReplaceError {
	return domain.Rejected(domain.ReasonInvalidContext,
		fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...))
}
