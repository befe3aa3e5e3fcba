package engine

// Achievement is a badge derived from the current ledger. Earned
// status is recomputed on demand and never persisted; the ledger's
// counters are the durable record.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker evaluates badges against a ledger + catalog.
type AchievementChecker struct {
	ledger  *Ledger
	catalog *Catalog
}

func NewAchievementChecker(ledger *Ledger, catalog *Catalog) *AchievementChecker {
	return &AchievementChecker{ledger: ledger, catalog: catalog}
}

// GetAchievements returns all badges with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	l := c.ledger
	return []Achievement{
		c.badge("first_swing", "First Swing", "Play your first hole", "🏌️", l.HolesPlayed >= 1),
		c.badge("level_5", "Rising Star", "Reach level 5", "📈", l.Level >= 5),
		c.badge("level_10", "Club Regular", "Reach level 10", "🌟", l.Level >= 10),
		c.badge("level_20", "Tour Pro", "Reach level 20", "💫", l.Level >= 20),

		c.badge("hole_in_one", "Hole in One!", "Score three under par", "⭐", l.HolesInOne >= 1),
		c.badge("eagle", "Eagle", "Score two under par", "🦅", l.Eagles >= 1),
		c.badge("birdie", "Birdie", "Score one under par", "🐦", l.Birdies >= 1),
		c.badge("century", "Century", "Play 100 holes", "💯", l.HolesPlayed >= 100),

		c.badge("long_drive", "Big Hitter", "Drive 300+ yards", "💥", l.LongestDrive >= LongDriveYards),
		c.badge("long_putt", "Drain It", "Sink a 50+ foot putt", "🎯", l.LongestPutt >= LongPuttFeet),

		c.badge("full_bag", "Full Bag", "Upgrade every slot past its starter", "🎒", c.fullBag()),
		c.badge("stat_master", "Stat Master", "Max out any total attribute", "💪", c.statMastery()),
		c.badge("champion", "Champion", "Win a tournament", "🏆", l.TournamentsWon >= 1),
	}
}

// CountEarned returns how many badges have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns the total number of badges.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) badge(id, name, desc, icon string, earned bool) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) fullBag() bool {
	for slot := SlotDriver; slot < SlotCount; slot++ {
		id := c.ledger.Equipped[slot]
		item, ok := c.catalog.Lookup(id)
		if !ok || item.Starter {
			return false
		}
	}
	return true
}

func (c *AchievementChecker) statMastery() bool {
	total := c.ledger.TotalStats(c.catalog)
	return total.Power >= MaxStat || total.Accuracy >= MaxStat ||
		total.Spin >= MaxStat || total.Putting >= MaxStat || total.Recovery >= MaxStat
}
