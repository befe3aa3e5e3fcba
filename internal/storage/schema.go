package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the progression schema. Column defaults seed a new
// player: level 1, all-50 stats, and each slot's starter item ID
// already equipped, so an insert of just the player_uid produces a
// valid fresh row.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player_progression (
			player_uid TEXT PRIMARY KEY,
			experience INTEGER DEFAULT 0,
			level INTEGER DEFAULT 1,
			skill_points INTEGER DEFAULT 0,
			power REAL DEFAULT 50.0,
			accuracy REAL DEFAULT 50.0,
			spin REAL DEFAULT 50.0,
			putting REAL DEFAULT 50.0,
			recovery REAL DEFAULT 50.0,
			equipped_driver INTEGER DEFAULT 1,
			equipped_iron INTEGER DEFAULT 11,
			equipped_wedge INTEGER DEFAULT 21,
			equipped_putter INTEGER DEFAULT 31,
			equipped_gloves INTEGER DEFAULT 41,
			equipped_shoes INTEGER DEFAULT 51,
			holes_played INTEGER DEFAULT 0,
			holes_in_one INTEGER DEFAULT 0,
			eagles INTEGER DEFAULT 0,
			birdies INTEGER DEFAULT 0,
			pars INTEGER DEFAULT 0,
			tournaments_won INTEGER DEFAULT 0,
			longest_drive REAL DEFAULT 0.0,
			longest_putt REAL DEFAULT 0.0
		);`,
		`CREATE TABLE IF NOT EXISTS unlocked_equipment (
			player_uid TEXT NOT NULL,
			equipment_id INTEGER NOT NULL,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player_uid, equipment_id),
			FOREIGN KEY (player_uid) REFERENCES player_progression(player_uid)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_unlocked_equipment_player ON unlocked_equipment(player_uid);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
