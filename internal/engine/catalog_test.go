package engine

import "testing"

func TestCatalogInvariants(t *testing.T) {
	c := NewCatalog()

	seen := map[uint32]bool{}
	for _, item := range c.All() {
		if item.ID == 0 {
			t.Fatalf("item %q has zero ID", item.Name)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate ID %d", item.ID)
		}
		seen[item.ID] = true
		if item.RequiredLevel < 1 {
			t.Fatalf("item %d required level %d", item.ID, item.RequiredLevel)
		}
	}

	for slot := SlotDriver; slot < SlotCount; slot++ {
		starter := c.Starter(slot)
		if starter.RequiredLevel != 1 || !starter.Starter {
			t.Fatalf("slot %s starter = %+v", slot, starter)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog()

	item, ok := c.Lookup(2)
	if !ok {
		t.Fatalf("Lookup(2) not found")
	}
	if item.Name != "Pro Driver" || item.Slot != SlotDriver || item.RequiredLevel != 5 {
		t.Fatalf("Lookup(2) = %+v", item)
	}
	if item.Bonus.Power != 5 || item.Bonus.Accuracy != 2 {
		t.Fatalf("Lookup(2) bonus = %+v", item.Bonus)
	}

	if _, ok := c.Lookup(999); ok {
		t.Fatalf("Lookup(999) found")
	}
}

func TestCatalogBySlotOrder(t *testing.T) {
	c := NewCatalog()

	drivers := c.BySlot(SlotDriver)
	want := []uint32{1, 2, 3, 4}
	if len(drivers) != len(want) {
		t.Fatalf("drivers = %d items, want %d", len(drivers), len(want))
	}
	for i, id := range want {
		if drivers[i].ID != id {
			t.Fatalf("drivers[%d].ID=%d, want %d", i, drivers[i].ID, id)
		}
	}
}

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("putter")
	if err != nil || s != SlotPutter {
		t.Fatalf("ParseSlot(putter)=%v, %v", s, err)
	}
	if _, err := ParseSlot("racket"); err == nil {
		t.Fatalf("expected error for unknown slot")
	}
}
