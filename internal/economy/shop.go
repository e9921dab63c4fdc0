package economy

import (
	"fmt"
	"strconv"

	"radius-defense/internal/component"
	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/event"
)

// Stat is one of the two purchasable upgrades of a shop tab.
type Stat int

const (
	StatSpeed Stat = iota
	// StatRange is tower range for Basic and Sniper, bullet count for Radius.
	StatRange
)

var stats = [...]Stat{StatSpeed, StatRange}

func (s Stat) String() string {
	switch s {
	case StatSpeed:
		return "speed"
	case StatRange:
		return "range"
	default:
		return "unknown"
	}
}

// FullyUpgradedText replaces the price label of a maxed-out track.
const FullyUpgradedText = "Fully Upgraded"

// Track is the (level, cost) pair of one purchasable stat.
type Track struct {
	Level    int
	Cost     int
	BaseCost int
}

// TowerRegistry gives the shop access to placed towers for broadcasting upgrades.
type TowerRegistry interface {
	LiveCombats(category defs.TowerCategory) []*component.Combat
}

// Purchase is the payload of event.UpgradePurchased.
type Purchase struct {
	Category defs.TowerCategory
	Stat     Stat
	Level    int // Level after the purchase
	Paid     int
}

// ButtonState is what the UI needs to render one upgrade control.
type ButtonState struct {
	Purchasable bool
	MaxedOut    bool
	Text        string
}

type upgrade struct {
	label  string
	track  *Track
	apply  func(c *component.Combat) // One level worth of stat delta
	target defs.TowerCategory        // Category whose live towers receive the delta
}

type shopEntry struct {
	title    string
	upgrades [len(stats)]*upgrade
}

// Shop sells speed and range upgrades per tower category.
type Shop struct {
	pool       *Pool
	towers     TowerRegistry
	dispatcher *event.Dispatcher
	maxLevel   int
	increment  int
	current    defs.TowerCategory
	entries    map[defs.TowerCategory]*shopEntry
}

// NewShop creates a shop with every track at level 1 and its base cost.
// towers and dispatcher may be nil.
func NewShop(pool *Pool, towers TowerRegistry, dispatcher *event.Dispatcher, cfg config.EconomyConfig) (*Shop, error) {
	if pool == nil {
		return nil, ErrNoPool
	}
	if cfg.MaxLevel < 1 {
		return nil, fmt.Errorf("%w: max level %d", config.ErrInvalidConfig, cfg.MaxLevel)
	}

	s := &Shop{
		pool:       pool,
		towers:     towers,
		dispatcher: dispatcher,
		maxLevel:   cfg.MaxLevel,
		increment:  cfg.CostIncrement,
		current:    defs.CategoryBasic,
	}
	s.entries = buildEntries(cfg)
	return s, nil
}

func newTrack(baseCost int) *Track {
	return &Track{Level: 1, Cost: baseCost, BaseCost: baseCost}
}

func upgradeSpeed(c *component.Combat) { c.UpgradeSpeed(config.SpeedUpgradeDelta) }

// buildEntries is the category lookup table. By default Basic and Sniper purchases are
// delivered to Radius towers, as the shipped game did.
func buildEntries(cfg config.EconomyConfig) map[defs.TowerCategory]*shopEntry {
	basicTarget, sniperTarget := defs.CategoryRadius, defs.CategoryRadius
	if cfg.BroadcastToOwnCategory {
		basicTarget, sniperTarget = defs.CategoryBasic, defs.CategorySniper
	}

	return map[defs.TowerCategory]*shopEntry{
		defs.CategoryBasic: {
			title: "Basic Tower Upgrades",
			upgrades: [len(stats)]*upgrade{
				StatSpeed: {label: "Attack Speed Lvl. ", track: newTrack(cfg.Basic.Speed), apply: upgradeSpeed, target: basicTarget},
				StatRange: {label: "Tower Range Lvl. ", track: newTrack(cfg.Basic.Range), target: basicTarget,
					apply: func(c *component.Combat) { c.UpgradeRange(config.BasicRangeUpgradeDelta) }},
			},
		},
		defs.CategorySniper: {
			title: "Sniper Tower Upgrades",
			upgrades: [len(stats)]*upgrade{
				StatSpeed: {label: "Attack Speed Lvl. ", track: newTrack(cfg.Sniper.Speed), apply: upgradeSpeed, target: sniperTarget},
				StatRange: {label: "Sniper Range Lvl. ", track: newTrack(cfg.Sniper.Range), target: sniperTarget,
					apply: func(c *component.Combat) { c.UpgradeRange(config.SniperRangeUpgradeDelta) }},
			},
		},
		defs.CategoryRadius: {
			title: "Radius Tower Upgrades",
			upgrades: [len(stats)]*upgrade{
				StatSpeed: {label: "Attack Speed Lvl. ", track: newTrack(cfg.Radius.Speed), apply: upgradeSpeed, target: defs.CategoryRadius},
				StatRange: {label: "Bullet Count Lvl. ", track: newTrack(cfg.Radius.Range), target: defs.CategoryRadius,
					apply: func(c *component.Combat) { c.IncreaseBulletCount(config.BulletCountUpgradeDelta) }},
			},
		},
	}
}

func (s *Shop) lookup(category defs.TowerCategory, stat Stat) (*upgrade, bool) {
	entry, ok := s.entries[category]
	if !ok || stat < StatSpeed || stat > StatRange {
		return nil, false
	}
	return entry.upgrades[stat], true
}

// Pool returns the gold balance the shop spends from.
func (s *Shop) Pool() *Pool { return s.pool }

// MaxLevel is the highest level any track can reach.
func (s *Shop) MaxLevel() int { return s.maxLevel }

// Current returns the selected shop tab.
func (s *Shop) Current() defs.TowerCategory { return s.current }

// Select switches the shop tab. Unknown categories are ignored.
func (s *Shop) Select(category defs.TowerCategory) bool {
	if _, ok := s.entries[category]; !ok {
		return false
	}
	s.current = category
	return true
}

// Next cycles to the following shop tab.
func (s *Shop) Next() defs.TowerCategory {
	s.current = defs.Categories[(int(s.current)+1)%len(defs.Categories)]
	return s.current
}

// Track returns a copy of the track for category and stat.
func (s *Shop) Track(category defs.TowerCategory, stat Stat) (Track, bool) {
	u, ok := s.lookup(category, stat)
	if !ok {
		return Track{}, false
	}
	return *u.track, true
}

// Level of a track, 0 if it does not exist.
func (s *Shop) Level(category defs.TowerCategory, stat Stat) int {
	t, _ := s.Track(category, stat)
	return t.Level
}

// Cost of a track's next purchase, 0 if it does not exist.
func (s *Shop) Cost(category defs.TowerCategory, stat Stat) int {
	t, _ := s.Track(category, stat)
	return t.Cost
}

// SpeedLevel of the selected tab.
func (s *Shop) SpeedLevel() int { return s.Level(s.current, StatSpeed) }

// RangeLevel of the selected tab.
func (s *Shop) RangeLevel() int { return s.Level(s.current, StatRange) }

// IsMaxed reports whether the track cannot be upgraded any further.
func (s *Shop) IsMaxed(category defs.TowerCategory, stat Stat) bool {
	u, ok := s.lookup(category, stat)
	return !ok || u.track.Level >= s.maxLevel
}

// CanPurchase checks the purchase preconditions without changing anything.
func (s *Shop) CanPurchase(category defs.TowerCategory, stat Stat) bool {
	u, ok := s.lookup(category, stat)
	if !ok {
		return false
	}
	return u.track.Level < s.maxLevel && s.pool.CanAfford(u.track.Cost)
}

// Purchase buys stat on the selected tab.
func (s *Shop) Purchase(stat Stat) bool {
	return s.PurchaseFor(s.current, stat)
}

// PurchaseFor buys one level of stat for category. On failure nothing changes.
// On success the gold is spent, the cost and level go up, and the delta is pushed
// to every live tower of the track's target category.
func (s *Shop) PurchaseFor(category defs.TowerCategory, stat Stat) bool {
	if !s.CanPurchase(category, stat) {
		return false
	}
	u, _ := s.lookup(category, stat)
	paid := u.track.Cost
	if !s.pool.spend(paid) {
		return false
	}
	u.track.Cost += s.increment
	u.track.Level++

	if s.towers != nil {
		for _, combat := range s.towers.LiveCombats(u.target) {
			u.apply(combat)
		}
	}

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.UpgradePurchased,
			Data: Purchase{Category: category, Stat: stat, Level: u.track.Level, Paid: paid},
		})
	}
	return true
}

// ApplyCurrentLevels brings a newly placed tower of the given category up to the
// upgrades its already placed peers have received. Every track whose deliveries go
// to this category contributes level-1 deltas. Nothing is broadcast.
func (s *Shop) ApplyCurrentLevels(category defs.TowerCategory, combat *component.Combat) {
	if combat == nil {
		return
	}
	for _, c := range defs.Categories {
		entry := s.entries[c]
		for _, u := range entry.upgrades {
			if u.target != category {
				continue
			}
			for i := 1; i < u.track.Level; i++ {
				u.apply(combat)
			}
		}
	}
}

// Title of the selected tab.
func (s *Shop) Title() string {
	return s.entries[s.current].title
}

// LevelText is the "<stat> Lvl. N" label of the selected tab.
func (s *Shop) LevelText(stat Stat) string {
	u, ok := s.lookup(s.current, stat)
	if !ok {
		return ""
	}
	return u.label + strconv.Itoa(u.track.Level)
}

// CostText is the price label of the selected tab, or FullyUpgradedText at max level.
func (s *Shop) CostText(stat Stat) string {
	u, ok := s.lookup(s.current, stat)
	if !ok {
		return ""
	}
	if u.track.Level >= s.maxLevel {
		return FullyUpgradedText
	}
	return strconv.Itoa(u.track.Cost) + " Gold"
}

// ButtonState derives the control state of stat on the selected tab.
// A control is purchasable only while at least one tower of the tab's category is placed.
func (s *Shop) ButtonState(stat Stat, placed map[defs.TowerCategory]int) ButtonState {
	maxed := s.IsMaxed(s.current, stat)
	return ButtonState{
		Purchasable: !maxed && s.CanPurchase(s.current, stat) && placed[s.current] > 0,
		MaxedOut:    maxed,
		Text:        s.CostText(stat),
	}
}
