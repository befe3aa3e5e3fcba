package engine

import "testing"

func TestClampBounds(t *testing.T) {
	s := StatBlock{Power: 120, Accuracy: 3, Spin: 50, Putting: -10, Recovery: 100}
	s.Clamp()
	if s.Power != MaxStat {
		t.Fatalf("Power=%v, want %v", s.Power, MaxStat)
	}
	if s.Accuracy != MinStat {
		t.Fatalf("Accuracy=%v, want %v", s.Accuracy, MinStat)
	}
	if s.Putting != MinStat {
		t.Fatalf("Putting=%v, want %v", s.Putting, MinStat)
	}
	if s.Spin != 50 || s.Recovery != 100 {
		t.Fatalf("in-range stats changed: %+v", s)
	}

	before := s
	s.Clamp()
	if s != before {
		t.Fatalf("Clamp not idempotent: %+v vs %+v", s, before)
	}
}

func TestMultiplier(t *testing.T) {
	if got := Multiplier(50); got != 1.0 {
		t.Fatalf("Multiplier(50)=%v, want 1.0", got)
	}
	if got := Multiplier(100); got != 1.5 {
		t.Fatalf("Multiplier(100)=%v, want 1.5", got)
	}
	if got := Multiplier(10); got != 0.6 {
		t.Fatalf("Multiplier(10)=%v, want 0.6", got)
	}
}

func TestStatField(t *testing.T) {
	s := DefaultStats()
	for _, name := range []StatName{StatPower, StatAccuracy, StatSpin, StatPutting, StatRecovery} {
		f := s.Field(name)
		if f == nil {
			t.Fatalf("Field(%q)=nil", name)
		}
		*f = 60
	}
	if s.Power != 60 || s.Recovery != 60 {
		t.Fatalf("Field did not reference struct fields: %+v", s)
	}
	if s.Field("charisma") != nil {
		t.Fatalf("expected nil for unknown stat")
	}
}
