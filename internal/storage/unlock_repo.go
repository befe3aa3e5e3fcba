package storage

import (
	"context"
	"fmt"
	"time"
)

type UnlockRepo struct {
	db dbtx
}

func NewUnlockRepo(db dbtx) *UnlockRepo {
	return &UnlockRepo{db: db}
}

// Insert records an unlock. The (player_uid, equipment_id) primary
// key makes unlocks idempotent at the storage layer; a repeat insert
// is ignored rather than erroring.
func (r *UnlockRepo) Insert(ctx context.Context, playerUID string, equipmentID uint32, unlockedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO unlocked_equipment (player_uid, equipment_id, unlocked_at)
		VALUES (?, ?, ?)
	`, playerUID, equipmentID, unlockedAt); err != nil {
		return fmt.Errorf("unlock insert: %w", err)
	}
	return nil
}

// ListIDs returns the player's unlocked equipment IDs, ordered by ID
// for deterministic results.
func (r *UnlockRepo) ListIDs(ctx context.Context, playerUID string) ([]uint32, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT equipment_id FROM unlocked_equipment
		WHERE player_uid = ?
		ORDER BY equipment_id
	`, playerUID)
	if err != nil {
		return nil, fmt.Errorf("unlock list: %w", err)
	}
	defer rows.Close()

	var ids []uint32
	for rows.Next() {
		var id uint32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unlock scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unlock rows: %w", err)
	}
	return ids, nil
}
