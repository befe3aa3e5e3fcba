package engine

// Experience rewards for gameplay actions.
const (
	XPHoleInOne      uint32 = 500
	XPEagle          uint32 = 150
	XPBirdie         uint32 = 75
	XPPar            uint32 = 25
	XPCompletedHole  uint32 = 10
	XPCompletedRound uint32 = 100
	XPWonTournament  uint32 = 500
	XPLongDrive      uint32 = 50
	XPLongPutt       uint32 = 50
)

// Distance thresholds for the long-drive and long-putt bonuses. The
// bonus fires on every new personal best at or beyond the threshold,
// so a run of improving 300+ yard drives pays out each time. Rewards
// per event, not per achievement.
const (
	LongDriveYards = 300.0
	LongPuttFeet   = 50.0
)
