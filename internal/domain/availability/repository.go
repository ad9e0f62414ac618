package availability

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the narrow persistence contract the engine depends on.
// Transport and storage live behind it; the lifecycle rules (forced first
// default, delete guards, single-default flip) live in the use cases.
//
// Writes are last-write-wins: no optimistic-concurrency token is exchanged,
// so two concurrent editors of the same schedule silently overwrite each
// other. Acceptable for the single-owner-per-schedule usage model; a known
// limitation, not a bug to fix here.
type Repository interface {
	ListByOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]Schedule, error)

	GetByID(
		ctx context.Context,
		id uuid.UUID,
	) (Schedule, error)

	CountByOwner(
		ctx context.Context,
		ownerID uuid.UUID,
	) (int64, error)

	Create(
		ctx context.Context,
		s *Schedule,
	) error

	Update(
		ctx context.Context,
		s *Schedule,
	) error

	Delete(
		ctx context.Context,
		id uuid.UUID,
	) error

	// SetDefault atomically clears the owner's previous default and flags
	// the target, preserving the single-default invariant.
	SetDefault(
		ctx context.Context,
		ownerID uuid.UUID,
		id uuid.UUID,
	) error
}
