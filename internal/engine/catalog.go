package engine

import "fmt"

// Slot is an equipment category. Exactly one item is equipped per
// slot at a time.
type Slot int

const (
	SlotDriver Slot = iota
	SlotIron
	SlotWedge
	SlotPutter
	SlotGloves
	SlotShoes

	SlotCount = 6
)

func (s Slot) IsValid() bool {
	return s >= SlotDriver && s < SlotCount
}

func (s Slot) String() string {
	switch s {
	case SlotDriver:
		return "driver"
	case SlotIron:
		return "iron"
	case SlotWedge:
		return "wedge"
	case SlotPutter:
		return "putter"
	case SlotGloves:
		return "gloves"
	case SlotShoes:
		return "shoes"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// ParseSlot maps user input to a Slot.
func ParseSlot(s string) (Slot, error) {
	for slot := SlotDriver; slot < SlotCount; slot++ {
		if slot.String() == s {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("unknown slot %q", s)
}

// EquipmentItem is one fixed catalog entry. Items are immutable and
// referenced by ID from persisted unlock and equip state, so IDs must
// stay stable across releases.
type EquipmentItem struct {
	ID            uint32
	Name          string
	Description   string
	Slot          Slot
	RequiredLevel uint32
	Bonus         StatBlock
	Starter       bool
}

// Catalog is the fixed equipment table, built once at startup and
// shared read-only for the process lifetime.
type Catalog struct {
	items []EquipmentItem
	byID  map[uint32]int
}

// NewCatalog builds the standard equipment table. It panics if the
// table violates catalog invariants (duplicate ID, slot without a
// level-1 starter); that is a programming error, not a runtime one.
func NewCatalog() *Catalog {
	c := &Catalog{items: equipmentTable(), byID: make(map[uint32]int)}
	var starters [SlotCount]bool
	for i, item := range c.items {
		if item.ID == 0 {
			panic(fmt.Sprintf("catalog: item %q has zero ID", item.Name))
		}
		if _, dup := c.byID[item.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate equipment ID %d", item.ID))
		}
		if !item.Slot.IsValid() {
			panic(fmt.Sprintf("catalog: item %d has invalid slot", item.ID))
		}
		if item.RequiredLevel < 1 {
			panic(fmt.Sprintf("catalog: item %d requires level %d", item.ID, item.RequiredLevel))
		}
		if item.Starter {
			starters[item.Slot] = true
			if item.RequiredLevel != 1 {
				panic(fmt.Sprintf("catalog: starter item %d requires level %d", item.ID, item.RequiredLevel))
			}
		}
		c.byID[item.ID] = i
	}
	for slot := SlotDriver; slot < SlotCount; slot++ {
		if !starters[slot] {
			panic(fmt.Sprintf("catalog: slot %s has no starter item", slot))
		}
	}
	return c
}

// Lookup returns the item with the given ID.
func (c *Catalog) Lookup(id uint32) (EquipmentItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return EquipmentItem{}, false
	}
	return c.items[i], true
}

// BySlot returns every item for a slot in definition order.
func (c *Catalog) BySlot(slot Slot) []EquipmentItem {
	var out []EquipmentItem
	for _, item := range c.items {
		if item.Slot == slot {
			out = append(out, item)
		}
	}
	return out
}

// All returns the full table in definition order.
func (c *Catalog) All() []EquipmentItem {
	out := make([]EquipmentItem, len(c.items))
	copy(out, c.items)
	return out
}

// Starter returns the level-1 default item for a slot.
func (c *Catalog) Starter(slot Slot) EquipmentItem {
	for _, item := range c.items {
		if item.Slot == slot && item.Starter {
			return item
		}
	}
	// Unreachable: NewCatalog guarantees a starter per slot.
	panic(fmt.Sprintf("catalog: slot %s has no starter item", slot))
}

func equipmentTable() []EquipmentItem {
	return []EquipmentItem{
		// Drivers
		{ID: 1, Name: "Starter Driver", Description: "Basic driver for beginners", Slot: SlotDriver, RequiredLevel: 1, Starter: true},
		{ID: 2, Name: "Pro Driver", Description: "Increased power and accuracy", Slot: SlotDriver, RequiredLevel: 5, Bonus: StatBlock{Power: 5, Accuracy: 2}},
		{ID: 3, Name: "Elite Driver", Description: "Maximum distance driver", Slot: SlotDriver, RequiredLevel: 10, Bonus: StatBlock{Power: 10, Accuracy: 3}},
		{ID: 4, Name: "Legend Driver", Description: "Perfect balance of power and control", Slot: SlotDriver, RequiredLevel: 20, Bonus: StatBlock{Power: 12, Accuracy: 8}},

		// Irons
		{ID: 11, Name: "Starter Irons", Description: "Basic iron set", Slot: SlotIron, RequiredLevel: 1, Starter: true},
		{ID: 12, Name: "Forged Irons", Description: "Better accuracy", Slot: SlotIron, RequiredLevel: 5, Bonus: StatBlock{Power: 2, Accuracy: 5}},
		{ID: 13, Name: "Tour Irons", Description: "Professional grade accuracy", Slot: SlotIron, RequiredLevel: 10, Bonus: StatBlock{Power: 3, Accuracy: 10, Spin: 2}},
		{ID: 14, Name: "Champion Irons", Description: "Ultimate precision", Slot: SlotIron, RequiredLevel: 20, Bonus: StatBlock{Power: 5, Accuracy: 15, Spin: 5}},

		// Wedges
		{ID: 21, Name: "Standard Wedge", Description: "Basic short game club", Slot: SlotWedge, RequiredLevel: 1, Starter: true},
		{ID: 22, Name: "Spin Wedge", Description: "Enhanced spin control", Slot: SlotWedge, RequiredLevel: 5, Bonus: StatBlock{Accuracy: 2, Spin: 8, Recovery: 5}},
		{ID: 23, Name: "Precision Wedge", Description: "Maximum spin and accuracy", Slot: SlotWedge, RequiredLevel: 15, Bonus: StatBlock{Accuracy: 5, Spin: 12, Recovery: 8}},

		// Putters
		{ID: 31, Name: "Basic Putter", Description: "Standard putter", Slot: SlotPutter, RequiredLevel: 1, Starter: true},
		{ID: 32, Name: "Balanced Putter", Description: "Improved putting feel", Slot: SlotPutter, RequiredLevel: 5, Bonus: StatBlock{Accuracy: 3, Putting: 8}},
		{ID: 33, Name: "Pro Putter", Description: "Professional putting", Slot: SlotPutter, RequiredLevel: 12, Bonus: StatBlock{Accuracy: 5, Putting: 12}},
		{ID: 34, Name: "Master Putter", Description: "Perfect putting control", Slot: SlotPutter, RequiredLevel: 25, Bonus: StatBlock{Accuracy: 8, Putting: 18}},

		// Gloves
		{ID: 41, Name: "Basic Gloves", Description: "Standard gloves", Slot: SlotGloves, RequiredLevel: 1, Starter: true},
		{ID: 42, Name: "Grip Gloves", Description: "Better club control", Slot: SlotGloves, RequiredLevel: 7, Bonus: StatBlock{Power: 2, Accuracy: 5, Spin: 3, Putting: 2}},
		{ID: 43, Name: "Pro Gloves", Description: "Enhanced feel and control", Slot: SlotGloves, RequiredLevel: 15, Bonus: StatBlock{Power: 3, Accuracy: 8, Spin: 5, Putting: 4}},

		// Shoes
		{ID: 51, Name: "Standard Shoes", Description: "Basic golf shoes", Slot: SlotShoes, RequiredLevel: 1, Starter: true},
		{ID: 52, Name: "Stable Shoes", Description: "Improved stance stability", Slot: SlotShoes, RequiredLevel: 8, Bonus: StatBlock{Power: 3, Accuracy: 3, Putting: 3, Recovery: 5}},
		{ID: 53, Name: "Tour Shoes", Description: "Professional stability", Slot: SlotShoes, RequiredLevel: 18, Bonus: StatBlock{Power: 5, Accuracy: 5, Putting: 5, Recovery: 8}},
	}
}
