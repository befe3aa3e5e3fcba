package engine

import "math"

const (
	// XPCurveCoef is the constant in the leveling curve:
	// XP to advance past level L is 100 * (L^1.5).
	XPCurveCoef = 100.0

	// SkillPointsPerLevel is granted on every level-up.
	SkillPointsPerLevel = 3

	// LevelUpStatBoost is the automatic per-attribute bump on level-up.
	LevelUpStatBoost = 0.5

	// SkillPointStatBoost is the per-point increase from spending a
	// skill point on an attribute.
	SkillPointStatBoost = 2.0
)

// ExperienceForLevel returns the experience threshold to advance from
// the given level to the next one. A ledger at level L levels up once
// its experience reaches ExperienceForLevel(L + 1).
func ExperienceForLevel(level uint32) uint32 {
	return uint32(XPCurveCoef * math.Pow(float64(level), 1.5))
}

// Ledger is the per-player progression record. It is owned by the
// Service for the active session and mutated only through it; the
// player UID is supplied by the identity provider. Fields mirror the
// persisted progression row plus the unlocked-equipment set.
type Ledger struct {
	PlayerUID string

	Experience  uint32
	Level       uint32
	SkillPoints uint32

	BaseStats StatBlock

	// Equipped holds one item ID per slot, indexed by Slot. A zero
	// entry means nothing equipped (never the case after NewLedger).
	Equipped [SlotCount]uint32

	// Unlocked is the set of catalog IDs this player may equip.
	Unlocked map[uint32]struct{}

	HolesPlayed    uint32
	HolesInOne     uint32
	Eagles         uint32
	Birdies        uint32
	Pars           uint32
	TournamentsWon uint32
	LongestDrive   float64
	LongestPutt    float64
}

// NewLedger seeds a fresh record: level 1, all-50 stats, and every
// slot's starter item both unlocked and equipped.
func NewLedger(playerUID string, catalog *Catalog) *Ledger {
	l := &Ledger{
		PlayerUID: playerUID,
		Level:     1,
		BaseStats: DefaultStats(),
		Unlocked:  make(map[uint32]struct{}),
	}
	for slot := SlotDriver; slot < SlotCount; slot++ {
		starter := catalog.Starter(slot)
		l.Equipped[slot] = starter.ID
	}
	for _, item := range catalog.All() {
		if item.RequiredLevel == 1 {
			l.Unlocked[item.ID] = struct{}{}
		}
	}
	return l
}

// AddExperience accumulates XP and reports whether a level-up
// happened. At most one level is gained per call regardless of the
// amount; a huge grant advances one level now and the next on a later
// award. Intentional, pinned by test.
func (l *Ledger) AddExperience(amount uint32) bool {
	l.Experience += amount

	if l.Experience >= ExperienceForLevel(l.Level+1) {
		l.levelUp()
		return true
	}
	return false
}

// levelUp grants skill points and a small automatic stat boost. The
// boost is applied unclamped, matching the stored-row semantics
// relied on elsewhere; TotalStats clamps on read.
func (l *Ledger) levelUp() {
	l.Level++
	l.SkillPoints += SkillPointsPerLevel

	l.BaseStats.Power += LevelUpStatBoost
	l.BaseStats.Accuracy += LevelUpStatBoost
	l.BaseStats.Spin += LevelUpStatBoost
	l.BaseStats.Putting += LevelUpStatBoost
	l.BaseStats.Recovery += LevelUpStatBoost
}

// ApplySkillPoint spends one skill point on the referenced stat,
// raising it by SkillPointStatBoost capped at MaxStat. Returns false
// without mutation when no points remain or the stat is maxed.
func (l *Ledger) ApplySkillPoint(stat *float64) bool {
	if l.SkillPoints == 0 || *stat >= MaxStat {
		return false
	}
	*stat = math.Min(*stat+SkillPointStatBoost, MaxStat)
	l.SkillPoints--
	return true
}

// IsUnlocked reports whether the item ID is in the unlocked set.
func (l *Ledger) IsUnlocked(id uint32) bool {
	_, ok := l.Unlocked[id]
	return ok
}

// TotalStats returns base stats plus the bonuses of every equipped
// item, clamped to the valid range. Unknown or zero equipped IDs
// contribute nothing; a dangling reference must not take the whole
// calculation down.
func (l *Ledger) TotalStats(catalog *Catalog) StatBlock {
	total := l.BaseStats
	for slot := SlotDriver; slot < SlotCount; slot++ {
		id := l.Equipped[slot]
		if id == 0 {
			continue
		}
		if item, ok := catalog.Lookup(id); ok {
			total.Add(item.Bonus)
		}
	}
	total.Clamp()
	return total
}
