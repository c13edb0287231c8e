package booking

import (
	"context"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
)

// CheckSlot answers "would this appointment fit" without writing anything.
// Mutating paths do not use this type: they run domain.CheckSlot inside
// their own locked transaction.
type CheckSlot struct {
	repo domain.Repository
}

func NewCheckSlot(repo domain.Repository) *CheckSlot {
	return &CheckSlot{repo: repo}
}

func (uc *CheckSlot) Execute(
	ctx context.Context,
	q domain.SlotQuery,
) (domain.SlotResult, error) {
	return domain.CheckSlot(ctx, uc.repo, q)
}
