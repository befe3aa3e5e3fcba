package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/MolochDaGod/DudeGolf/internal/storage"
)

// ErrNoLedger is returned by gameplay operations before LoadOrCreate
// has established a current player.
var ErrNoLedger = errors.New("no progression loaded")

// Service orchestrates the progression ledger: it owns the current
// in-memory ledger and the shared catalog, applies gameplay events
// under the ledger's invariants, and writes through to the store.
// The in-memory ledger is the source of truth for the session; a
// failed save leaves it intact and a later save may succeed.
type Service struct {
	store    *storage.Store
	catalog  *Catalog
	identity IdentityProvider
	ledger   *Ledger
}

func NewService(store *storage.Store, catalog *Catalog, identity IdentityProvider) *Service {
	if identity == nil {
		identity = StaticIdentity(DefaultPlayerUID)
	}
	return &Service{store: store, catalog: catalog, identity: identity}
}

func (s *Service) Catalog() *Catalog { return s.catalog }

// Ledger returns the current ledger, or nil before LoadOrCreate.
func (s *Service) Ledger() *Ledger { return s.ledger }

// LoadCurrent loads (or creates) progression for the identity
// provider's player.
func (s *Service) LoadCurrent(ctx context.Context) error {
	return s.LoadOrCreate(ctx, s.identity.CurrentPlayerUID())
}

// LoadOrCreate makes the given player's ledger current. A first-seen
// UID gets a fresh row seeded with starter equipment, committed
// atomically with its unlock records, then read back. A store that
// cannot be opened fails the call; there is no in-memory fallback.
func (s *Service) LoadOrCreate(ctx context.Context, playerUID string) error {
	if playerUID == "" {
		return errors.New("player UID is required")
	}

	row, err := s.store.GetProgression(ctx, playerUID)
	if err != nil {
		return err
	}
	if row == nil {
		fresh := NewLedger(playerUID, s.catalog)
		starterIDs := make([]uint32, 0, len(fresh.Unlocked))
		for _, item := range s.catalog.All() {
			if fresh.IsUnlocked(item.ID) {
				starterIDs = append(starterIDs, item.ID)
			}
		}
		if err := s.store.CreateProgression(ctx, ledgerToRow(fresh), starterIDs); err != nil {
			return fmt.Errorf("create progression: %w", err)
		}
		row, err = s.store.GetProgression(ctx, playerUID)
		if err != nil {
			return err
		}
		if row == nil {
			return fmt.Errorf("progression for %q missing after create", playerUID)
		}
	}

	unlocks, err := s.store.ListUnlocks(ctx, playerUID)
	if err != nil {
		return err
	}
	s.ledger = rowToLedger(row, unlocks)
	return nil
}

// Save writes the full current ledger through to the store. Explicit
// write-through for callers that batch events (end of round, app
// shutdown).
func (s *Service) Save(ctx context.Context) error {
	if s.ledger == nil {
		return ErrNoLedger
	}
	return s.store.UpdateProgression(ctx, ledgerToRow(s.ledger))
}

// AwardExperience adds XP to the current ledger. The reason is an
// audit label only; it never changes behavior. On level-up, every
// catalog item with a required level equal to the new level is
// unlocked and the ledger is persisted. Awards without a level-up
// accumulate in memory and rely on a later write-through.
func (s *Service) AwardExperience(ctx context.Context, amount uint32, reason string) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	_ = reason // audit label for callers; no behavioral effect

	leveledUp := s.ledger.AddExperience(amount)
	if !leveledUp {
		return false, nil
	}

	for _, item := range s.catalog.All() {
		if item.RequiredLevel == s.ledger.Level && !s.ledger.IsUnlocked(item.ID) {
			if _, err := s.UnlockEquipment(ctx, item.ID); err != nil {
				return true, err
			}
		}
	}
	if err := s.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// ScoreCategory labels a hole result relative to par.
type ScoreCategory string

const (
	ScoreHoleInOne ScoreCategory = "hole in one"
	ScoreEagle     ScoreCategory = "eagle"
	ScoreBirdie    ScoreCategory = "birdie"
	ScorePar       ScoreCategory = "par"
	ScoreOther     ScoreCategory = ""
)

// HoleResult reports what a recorded hole was worth.
type HoleResult struct {
	Diff      int
	Category  ScoreCategory
	XPAwarded uint32
	LeveledUp bool
}

// RecordHoleScore counts a completed hole and awards XP by the exact
// score difference: -3 hole in one, -2 eagle, -1 birdie, 0 par. Any
// other diff earns no category bonus. The flat completed-hole XP is
// always a second, separate award.
func (s *Service) RecordHoleScore(ctx context.Context, strokes, par int) (*HoleResult, error) {
	if s.ledger == nil {
		return nil, ErrNoLedger
	}

	s.ledger.HolesPlayed++
	res := &HoleResult{Diff: strokes - par, Category: ScoreOther}

	var bonus uint32
	switch res.Diff {
	case -3:
		s.ledger.HolesInOne++ // or albatross
		res.Category, bonus = ScoreHoleInOne, XPHoleInOne
	case -2:
		s.ledger.Eagles++
		res.Category, bonus = ScoreEagle, XPEagle
	case -1:
		s.ledger.Birdies++
		res.Category, bonus = ScoreBirdie, XPBirdie
	case 0:
		s.ledger.Pars++
		res.Category, bonus = ScorePar, XPPar
	}

	if bonus > 0 {
		leveled, err := s.AwardExperience(ctx, bonus, string(res.Category))
		if err != nil {
			return res, err
		}
		res.XPAwarded += bonus
		res.LeveledUp = res.LeveledUp || leveled
	}

	leveled, err := s.AwardExperience(ctx, XPCompletedHole, "completed hole")
	if err != nil {
		return res, err
	}
	res.XPAwarded += XPCompletedHole
	res.LeveledUp = res.LeveledUp || leveled
	return res, nil
}

// RecordDriveDistance tracks the longest drive. The stored maximum
// only moves on a strict improvement; a new best at or beyond the
// long-drive threshold also pays the bonus, every time.
func (s *Service) RecordDriveDistance(ctx context.Context, yards float64) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	if yards <= s.ledger.LongestDrive {
		return false, nil
	}
	s.ledger.LongestDrive = yards
	if yards >= LongDriveYards {
		if _, err := s.AwardExperience(ctx, XPLongDrive, "long drive"); err != nil {
			return true, err
		}
	}
	return true, nil
}

// RecordPuttDistance tracks the longest putt, mirroring
// RecordDriveDistance with the long-putt threshold.
func (s *Service) RecordPuttDistance(ctx context.Context, feet float64) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	if feet <= s.ledger.LongestPutt {
		return false, nil
	}
	s.ledger.LongestPutt = feet
	if feet >= LongPuttFeet {
		if _, err := s.AwardExperience(ctx, XPLongPutt, "long putt"); err != nil {
			return true, err
		}
	}
	return true, nil
}

// RecordRoundComplete awards the flat round-completion XP and
// persists the ledger.
func (s *Service) RecordRoundComplete(ctx context.Context) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	leveled, err := s.AwardExperience(ctx, XPCompletedRound, "completed round")
	if err != nil {
		return leveled, err
	}
	if !leveled {
		// AwardExperience only saves on level-up.
		if err := s.Save(ctx); err != nil {
			return false, err
		}
	}
	return leveled, nil
}

// RecordTournamentWin counts a tournament victory, awards its XP and
// persists the ledger.
func (s *Service) RecordTournamentWin(ctx context.Context) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	s.ledger.TournamentsWon++
	leveled, err := s.AwardExperience(ctx, XPWonTournament, "won tournament")
	if err != nil {
		return leveled, err
	}
	if !leveled {
		if err := s.Save(ctx); err != nil {
			return false, err
		}
	}
	return leveled, nil
}

// UnlockEquipment grants the item to the current player. It refuses
// unknown IDs, items above the player's level, and repeat unlocks;
// refusals return false with no mutation. A granted unlock is
// appended to the store immediately.
func (s *Service) UnlockEquipment(ctx context.Context, itemID uint32) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		return false, nil
	}
	if item.RequiredLevel > s.ledger.Level {
		return false, nil
	}
	if s.ledger.IsUnlocked(itemID) {
		return false, nil
	}

	s.ledger.Unlocked[itemID] = struct{}{}
	if err := s.store.InsertUnlock(ctx, s.ledger.PlayerUID, itemID); err != nil {
		return true, err
	}
	return true, nil
}

// EquipItem puts an unlocked item into its slot. The item must be
// unlocked and its catalog slot must match the requested one; on
// success the full ledger is persisted.
func (s *Service) EquipItem(ctx context.Context, slot Slot, itemID uint32) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	if !s.ledger.IsUnlocked(itemID) {
		return false, nil
	}
	item, ok := s.catalog.Lookup(itemID)
	if !ok || item.Slot != slot {
		return false, nil
	}

	s.ledger.Equipped[slot] = itemID
	if err := s.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// SpendSkillPoint applies one skill point to the named base stat and
// persists on success.
func (s *Service) SpendSkillPoint(ctx context.Context, stat StatName) (bool, error) {
	if s.ledger == nil {
		return false, ErrNoLedger
	}
	field := s.ledger.BaseStats.Field(stat)
	if field == nil {
		return false, fmt.Errorf("unknown stat %q", stat)
	}
	if !s.ledger.ApplySkillPoint(field) {
		return false, nil
	}
	if err := s.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// LockReason explains why an item cannot be unlocked yet, for UI use.
// Returns nil when the unlock would be allowed (or already happened).
func (s *Service) LockReason(itemID uint32) error {
	if s.ledger == nil {
		return ErrNoLedger
	}
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		return fmt.Errorf("unknown equipment %d", itemID)
	}
	if item.RequiredLevel > s.ledger.Level {
		return LockedError{ItemName: item.Name, RequiredLevel: item.RequiredLevel, CurrentLevel: s.ledger.Level}
	}
	return nil
}

func ledgerToRow(l *Ledger) *storage.Progression {
	return &storage.Progression{
		PlayerUID:      l.PlayerUID,
		Experience:     l.Experience,
		Level:          l.Level,
		SkillPoints:    l.SkillPoints,
		Power:          l.BaseStats.Power,
		Accuracy:       l.BaseStats.Accuracy,
		Spin:           l.BaseStats.Spin,
		Putting:        l.BaseStats.Putting,
		Recovery:       l.BaseStats.Recovery,
		EquippedDriver: l.Equipped[SlotDriver],
		EquippedIron:   l.Equipped[SlotIron],
		EquippedWedge:  l.Equipped[SlotWedge],
		EquippedPutter: l.Equipped[SlotPutter],
		EquippedGloves: l.Equipped[SlotGloves],
		EquippedShoes:  l.Equipped[SlotShoes],
		HolesPlayed:    l.HolesPlayed,
		HolesInOne:     l.HolesInOne,
		Eagles:         l.Eagles,
		Birdies:        l.Birdies,
		Pars:           l.Pars,
		TournamentsWon: l.TournamentsWon,
		LongestDrive:   l.LongestDrive,
		LongestPutt:    l.LongestPutt,
	}
}

func rowToLedger(row *storage.Progression, unlocks []uint32) *Ledger {
	l := &Ledger{
		PlayerUID:   row.PlayerUID,
		Experience:  row.Experience,
		Level:       row.Level,
		SkillPoints: row.SkillPoints,
		BaseStats: StatBlock{
			Power:    row.Power,
			Accuracy: row.Accuracy,
			Spin:     row.Spin,
			Putting:  row.Putting,
			Recovery: row.Recovery,
		},
		Unlocked:       make(map[uint32]struct{}, len(unlocks)),
		HolesPlayed:    row.HolesPlayed,
		HolesInOne:     row.HolesInOne,
		Eagles:         row.Eagles,
		Birdies:        row.Birdies,
		Pars:           row.Pars,
		TournamentsWon: row.TournamentsWon,
		LongestDrive:   row.LongestDrive,
		LongestPutt:    row.LongestPutt,
	}
	l.Equipped[SlotDriver] = row.EquippedDriver
	l.Equipped[SlotIron] = row.EquippedIron
	l.Equipped[SlotWedge] = row.EquippedWedge
	l.Equipped[SlotPutter] = row.EquippedPutter
	l.Equipped[SlotGloves] = row.EquippedGloves
	l.Equipped[SlotShoes] = row.EquippedShoes
	for _, id := range unlocks {
		l.Unlocked[id] = struct{}{}
	}
	return l
}
