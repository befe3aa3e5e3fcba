package engine

import "testing"

func TestAchievements(t *testing.T) {
	c := NewCatalog()
	l := NewLedger("p1", c)
	checker := NewAchievementChecker(l, c)

	if got := checker.CountEarned(); got != 0 {
		t.Fatalf("fresh player earned %d achievements", got)
	}

	l.HolesPlayed = 1
	l.HolesInOne = 1
	l.LongestDrive = 310
	earned := map[string]bool{}
	for _, a := range checker.GetAchievements() {
		if a.Earned {
			earned[a.ID] = true
		}
	}
	for _, id := range []string{"first_swing", "hole_in_one", "long_drive"} {
		if !earned[id] {
			t.Fatalf("achievement %q not earned", id)
		}
	}
	if earned["eagle"] || earned["level_5"] {
		t.Fatalf("unexpected achievements earned: %v", earned)
	}
}

func TestFullBagAchievement(t *testing.T) {
	c := NewCatalog()
	l := NewLedger("p1", c)
	checker := NewAchievementChecker(l, c)

	// Upgrade every slot past its starter.
	upgrades := map[Slot]uint32{
		SlotDriver: 2, SlotIron: 12, SlotWedge: 22,
		SlotPutter: 32, SlotGloves: 42, SlotShoes: 52,
	}
	for slot, id := range upgrades {
		l.Equipped[slot] = id
	}
	found := false
	for _, a := range checker.GetAchievements() {
		if a.ID == "full_bag" {
			found = true
			if !a.Earned {
				t.Fatalf("full_bag not earned with upgraded slots")
			}
		}
	}
	if !found {
		t.Fatalf("full_bag achievement missing")
	}
}
