package writerepo

import (
	"context"

	"lushquote/internal/infra"

	"github.com/google/uuid"
)

type UsageRepository struct {
	db infra.DBTX
}

func NewUsageRepository(db infra.DBTX) *UsageRepository {
	return &UsageRepository{db: db}
}

// IncrementIfBelow bumps the owner's counter for the month only while it is
// below limit, as one conditional statement. Returns false when the limit
// was already reached, in which case nothing was written. Running this in
// the same transaction as the submission insert keeps counter and rows in
// lockstep under concurrency.
func (r *UsageRepository) IncrementIfBelow(ctx context.Context, tx infra.DBTX, ownerID uuid.UUID, monthKey string, limit int) (bool, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO usage_counters (owner_id, month, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (owner_id, month)
		DO UPDATE SET count = usage_counters.count + 1, updated_at = now()
		WHERE usage_counters.count < $3`,
		ownerID, monthKey, limit)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment usage counter", err, classify(err))
	}
	return tag.RowsAffected() > 0, nil
}
