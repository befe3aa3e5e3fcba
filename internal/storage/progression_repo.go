package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const progressionColumns = `player_uid, experience, level, skill_points,
	power, accuracy, spin, putting, recovery,
	equipped_driver, equipped_iron, equipped_wedge, equipped_putter, equipped_gloves, equipped_shoes,
	holes_played, holes_in_one, eagles, birdies, pars, tournaments_won,
	longest_drive, longest_putt`

type ProgressionRepo struct {
	db dbtx
}

// dbtx is the subset of *sql.DB / *sql.Tx the repos need, so the
// same repo code runs inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewProgressionRepo(db dbtx) *ProgressionRepo {
	return &ProgressionRepo{db: db}
}

// Get returns the player's progression row, or (nil, nil) when the
// player has never been seen.
func (r *ProgressionRepo) Get(ctx context.Context, playerUID string) (*Progression, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+progressionColumns+` FROM player_progression WHERE player_uid = ?`, playerUID)

	var p Progression
	err := row.Scan(&p.PlayerUID, &p.Experience, &p.Level, &p.SkillPoints,
		&p.Power, &p.Accuracy, &p.Spin, &p.Putting, &p.Recovery,
		&p.EquippedDriver, &p.EquippedIron, &p.EquippedWedge, &p.EquippedPutter, &p.EquippedGloves, &p.EquippedShoes,
		&p.HolesPlayed, &p.HolesInOne, &p.Eagles, &p.Birdies, &p.Pars, &p.TournamentsWon,
		&p.LongestDrive, &p.LongestPutt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("progression get: %w", err)
	}
	return &p, nil
}

// Insert creates the row for a new player. Column defaults supply
// the rest of a fresh record.
func (r *ProgressionRepo) Insert(ctx context.Context, playerUID string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO player_progression (player_uid) VALUES (?)`, playerUID); err != nil {
		return fmt.Errorf("progression insert: %w", err)
	}
	return nil
}

// Update writes every column of the row keyed by player_uid. A write
// touching zero rows is a failed save, reported so the caller can
// retry; the in-memory ledger stays authoritative.
func (r *ProgressionRepo) Update(ctx context.Context, p *Progression) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE player_progression SET
			experience = ?, level = ?, skill_points = ?,
			power = ?, accuracy = ?, spin = ?, putting = ?, recovery = ?,
			equipped_driver = ?, equipped_iron = ?, equipped_wedge = ?,
			equipped_putter = ?, equipped_gloves = ?, equipped_shoes = ?,
			holes_played = ?, holes_in_one = ?, eagles = ?, birdies = ?, pars = ?,
			tournaments_won = ?, longest_drive = ?, longest_putt = ?
		WHERE player_uid = ?
	`, p.Experience, p.Level, p.SkillPoints,
		p.Power, p.Accuracy, p.Spin, p.Putting, p.Recovery,
		p.EquippedDriver, p.EquippedIron, p.EquippedWedge,
		p.EquippedPutter, p.EquippedGloves, p.EquippedShoes,
		p.HolesPlayed, p.HolesInOne, p.Eagles, p.Birdies, p.Pars,
		p.TournamentsWon, p.LongestDrive, p.LongestPutt,
		p.PlayerUID)
	if err != nil {
		return fmt.Errorf("progression update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("progression update rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("progression update: no row for player %q", p.PlayerUID)
	}
	return nil
}
