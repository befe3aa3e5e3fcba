package engine

const (
	// MinStat and MaxStat bound every player attribute.
	MinStat = 10.0
	MaxStat = 100.0
)

// StatBlock holds the five attributes that affect golf gameplay.
// All values live on the MinStat..MaxStat scale; a fresh player
// starts at 50 across the board.
type StatBlock struct {
	Power    float64
	Accuracy float64
	Spin     float64
	Putting  float64
	Recovery float64
}

// DefaultStats returns the all-50 starting block.
func DefaultStats() StatBlock {
	return StatBlock{Power: 50, Accuracy: 50, Spin: 50, Putting: 50, Recovery: 50}
}

// StatName identifies one attribute of a StatBlock.
type StatName string

const (
	StatPower    StatName = "power"
	StatAccuracy StatName = "accuracy"
	StatSpin     StatName = "spin"
	StatPutting  StatName = "putting"
	StatRecovery StatName = "recovery"
)

func (n StatName) IsValid() bool {
	switch n {
	case StatPower, StatAccuracy, StatSpin, StatPutting, StatRecovery:
		return true
	default:
		return false
	}
}

// Field returns a pointer to the named attribute, or nil for an
// unknown name.
func (s *StatBlock) Field(name StatName) *float64 {
	switch name {
	case StatPower:
		return &s.Power
	case StatAccuracy:
		return &s.Accuracy
	case StatSpin:
		return &s.Spin
	case StatPutting:
		return &s.Putting
	case StatRecovery:
		return &s.Recovery
	default:
		return nil
	}
}

// Add sums another block into this one field by field. Bonuses use
// the same shape as stats, so equipment deltas are just StatBlocks.
func (s *StatBlock) Add(o StatBlock) {
	s.Power += o.Power
	s.Accuracy += o.Accuracy
	s.Spin += o.Spin
	s.Putting += o.Putting
	s.Recovery += o.Recovery
}

// Clamp applies the MinStat..MaxStat range to all five attributes.
// Idempotent.
func (s *StatBlock) Clamp() {
	s.Power = clampStat(s.Power)
	s.Accuracy = clampStat(s.Accuracy)
	s.Spin = clampStat(s.Spin)
	s.Putting = clampStat(s.Putting)
	s.Recovery = clampStat(s.Recovery)
}

func clampStat(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Multiplier converts a stat value into a gameplay multiplier:
// 50 is neutral (1.0), each point above or below moves it by 1%.
// Never derived from stored state; always computed on demand.
func Multiplier(value float64) float64 {
	return 1.0 + (value-50.0)*0.01
}

func (s StatBlock) PowerMultiplier() float64    { return Multiplier(s.Power) }
func (s StatBlock) AccuracyMultiplier() float64 { return Multiplier(s.Accuracy) }
func (s StatBlock) SpinMultiplier() float64     { return Multiplier(s.Spin) }
func (s StatBlock) PuttingMultiplier() float64  { return Multiplier(s.Putting) }
func (s StatBlock) RecoveryMultiplier() float64 { return Multiplier(s.Recovery) }
