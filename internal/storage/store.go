package storage

import (
	"context"
	"database/sql"
	"time"
)

// Store is the persistence adapter for progression. It holds only
// the database path: every logical operation acquires its own
// handle, does one unit of work, and releases it on every exit path.
// No handle survives across calls, so there is nothing to leak when
// the host game loop tears the subsystem down mid-session.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// with opens the database for one operation and guarantees release.
func (s *Store) with(ctx context.Context, fn func(db *sql.DB) error) error {
	db, err := Open(ctx, s.path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// GetProgression loads a player's row; (nil, nil) when absent.
func (s *Store) GetProgression(ctx context.Context, playerUID string) (*Progression, error) {
	var p *Progression
	err := s.with(ctx, func(db *sql.DB) error {
		var err error
		p, err = NewProgressionRepo(db).Get(ctx, playerUID)
		return err
	})
	return p, err
}

// CreateProgression inserts a fresh player row together with its
// starter unlock records in one transaction, so a half-created
// player can never be observed.
func (s *Store) CreateProgression(ctx context.Context, p *Progression, unlockIDs []uint32) error {
	now := time.Now().UTC()
	return s.with(ctx, func(db *sql.DB) error {
		return WithTx(ctx, db, func(tx *sql.Tx) error {
			if err := NewProgressionRepo(tx).Insert(ctx, p.PlayerUID); err != nil {
				return err
			}
			unlocks := NewUnlockRepo(tx)
			for _, id := range unlockIDs {
				if err := unlocks.Insert(ctx, p.PlayerUID, id, now); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// UpdateProgression upserts the full row for an existing player.
func (s *Store) UpdateProgression(ctx context.Context, p *Progression) error {
	return s.with(ctx, func(db *sql.DB) error {
		return NewProgressionRepo(db).Update(ctx, p)
	})
}

// InsertUnlock appends one unlock record (idempotent).
func (s *Store) InsertUnlock(ctx context.Context, playerUID string, equipmentID uint32) error {
	return s.with(ctx, func(db *sql.DB) error {
		return NewUnlockRepo(db).Insert(ctx, playerUID, equipmentID, time.Now().UTC())
	})
}

// ListUnlocks returns the player's unlocked equipment IDs.
func (s *Store) ListUnlocks(ctx context.Context, playerUID string) ([]uint32, error) {
	var ids []uint32
	err := s.with(ctx, func(db *sql.DB) error {
		var err error
		ids, err = NewUnlockRepo(db).ListIDs(ctx, playerUID)
		return err
	})
	return ids, err
}
