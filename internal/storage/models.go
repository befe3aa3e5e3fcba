package storage

import "time"

// Progression mirrors one row of player_progression.
type Progression struct {
	PlayerUID string

	Experience  uint32
	Level       uint32
	SkillPoints uint32

	Power    float64
	Accuracy float64
	Spin     float64
	Putting  float64
	Recovery float64

	EquippedDriver uint32
	EquippedIron   uint32
	EquippedWedge  uint32
	EquippedPutter uint32
	EquippedGloves uint32
	EquippedShoes  uint32

	HolesPlayed    uint32
	HolesInOne     uint32
	Eagles         uint32
	Birdies        uint32
	Pars           uint32
	TournamentsWon uint32
	LongestDrive   float64
	LongestPutt    float64
}

// Unlock mirrors one row of unlocked_equipment. UnlockedAt is
// informational only.
type Unlock struct {
	PlayerUID   string
	EquipmentID uint32
	UnlockedAt  time.Time
}
