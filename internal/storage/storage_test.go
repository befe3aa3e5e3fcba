package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "test.db"))
}

func sampleRow(uid string) *Progression {
	return &Progression{
		PlayerUID:   uid,
		Experience:  1203,
		Level:       5,
		SkillPoints: 7,
		Power:       52.5, Accuracy: 51.5, Spin: 50.5, Putting: 61.0, Recovery: 50.0,
		EquippedDriver: 2, EquippedIron: 11, EquippedWedge: 21,
		EquippedPutter: 32, EquippedGloves: 41, EquippedShoes: 51,
		HolesPlayed: 23, HolesInOne: 1, Eagles: 2, Birdies: 5, Pars: 9,
		TournamentsWon: 1,
		LongestDrive:   312.5,
		LongestPutt:    48.25,
	}
}

func TestGetMissingPlayer(t *testing.T) {
	s := newTestStore(t)
	p, err := s.GetProgression(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil for unknown player, got %+v", p)
	}
}

func TestCreateAndRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fresh := &Progression{PlayerUID: "p1"}
	if err := s.CreateProgression(ctx, fresh, []uint32{1, 11, 21, 31, 41, 51}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A bare insert picks up the schema's fresh-player defaults.
	p, err := s.GetProgression(ctx, "p1")
	if err != nil || p == nil {
		t.Fatalf("get after create: %+v, %v", p, err)
	}
	if p.Level != 1 || p.Power != 50.0 || p.EquippedDriver != 1 || p.EquippedShoes != 51 {
		t.Fatalf("defaults = %+v", p)
	}

	ids, err := s.ListUnlocks(ctx, "p1")
	if err != nil {
		t.Fatalf("list unlocks: %v", err)
	}
	want := []uint32{1, 11, 21, 31, 41, 51}
	if len(ids) != len(want) {
		t.Fatalf("unlocks = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("unlocks = %v, want %v", ids, want)
		}
	}

	row := sampleRow("p1")
	if err := s.UpdateProgression(ctx, row); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.GetProgression(ctx, "p1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if *got != *row {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, row)
	}
}

func TestUpdateMissingPlayerFails(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateProgression(context.Background(), sampleRow("ghost"))
	if err == nil {
		t.Fatalf("expected error updating a missing row")
	}
}

func TestUnlockInsertIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.CreateProgression(ctx, &Progression{PlayerUID: "p1"}, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.InsertUnlock(ctx, "p1", 2); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.InsertUnlock(ctx, "p1", 2); err != nil {
		t.Fatalf("repeat insert: %v", err)
	}
	ids, err := s.ListUnlocks(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("unlocks = %v, want [2]", ids)
	}
}

func TestCreateProgressionAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if err := s.CreateProgression(ctx, &Progression{PlayerUID: "p1"}, []uint32{1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// A second create for the same UID violates the primary key; the
	// transaction must roll back without touching existing unlocks.
	if err := s.CreateProgression(ctx, &Progression{PlayerUID: "p1"}, []uint32{1, 11}); err == nil {
		t.Fatalf("expected duplicate-create to fail")
	}
	ids, err := s.ListUnlocks(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("unlocks = %v after failed create, want the original [1]", ids)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	errBoom := errors.New("boom")
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := NewProgressionRepo(tx).Insert(ctx, "p1"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithTx err = %v, want %v", err, errBoom)
	}
	p, err := NewProgressionRepo(db).Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("insert survived rollback: %+v", p)
	}
}
