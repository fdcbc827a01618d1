// Package leveling converts a learner's cumulative experience points into a
// level on a geometric cost curve.
//
// Level 1 costs BaseLevelXP points to complete and every later level costs
// one and a half times the previous one, rounded down. A LevelInfo is a pure
// view over the XP total: it is recomputed on every query and never stored.
package leveling

import (
	"errors"
	"fmt"
	"math"

	"github.com/vidhya/vidhya/internal/ratio"
)

// BaseLevelXP is the cost of completing level 1.
const BaseLevelXP = 100

// ErrInvalidInput is returned for negative XP totals and levels below 1.
var ErrInvalidInput = errors.New("invalid leveling input")

// LevelInfo describes where an XP total sits on the level curve.
type LevelInfo struct {
	Level           int // ≥ 1
	CurrentXP       int // XP earned inside the current level, < XPForNextLevel
	XPForNextLevel  int // cost of the current level
	ProgressPercent int // round(100 × CurrentXP / XPForNextLevel)
}

// XPToNextLevel returns the XP still missing before the next level-up.
func (li LevelInfo) XPToNextLevel() int {
	return li.XPForNextLevel - li.CurrentXP
}

// XPForLevel returns the XP needed to complete the given level.
// Costs saturate at math.MaxInt for very high levels.
func XPForLevel(level int) (int, error) {
	if level < 1 {
		return 0, fmt.Errorf("%w: level %d is below 1", ErrInvalidInput, level)
	}
	cost := BaseLevelXP
	for l := 1; l < level && cost < math.MaxInt; l++ {
		cost = nextCost(cost)
	}
	return cost, nil
}

// FromTotal derives the LevelInfo for a cumulative XP total.
func FromTotal(totalXP int) (LevelInfo, error) {
	if totalXP < 0 {
		return LevelInfo{}, fmt.Errorf("%w: XP total %d is negative", ErrInvalidInput, totalXP)
	}

	level := 1
	cost := BaseLevelXP
	remaining := totalXP
	for remaining >= cost {
		remaining -= cost
		level++
		cost = nextCost(cost)
	}

	return LevelInfo{
		Level:           level,
		CurrentXP:       remaining,
		XPForNextLevel:  cost,
		ProgressPercent: ratio.Percent(remaining, cost),
	}, nil
}

// TotalForLevel returns the cumulative XP at which a learner reaches level.
// TotalForLevel(1) is 0. The sum saturates at math.MaxInt.
func TotalForLevel(level int) (int, error) {
	if level < 1 {
		return 0, fmt.Errorf("%w: level %d is below 1", ErrInvalidInput, level)
	}
	total := 0
	cost := BaseLevelXP
	for l := 1; l < level; l++ {
		if total > math.MaxInt-cost {
			return math.MaxInt, nil
		}
		total += cost
		cost = nextCost(cost)
	}
	return total, nil
}

// LevelUps returns the levels newly reached when a total grows from before
// to after, in ascending order. It returns nil when no level was crossed.
func LevelUps(before, after int) ([]int, error) {
	from, err := FromTotal(before)
	if err != nil {
		return nil, err
	}
	to, err := FromTotal(after)
	if err != nil {
		return nil, err
	}
	var levels []int
	for l := from.Level + 1; l <= to.Level; l++ {
		levels = append(levels, l)
	}
	return levels, nil
}

// nextCost applies the 1.5× growth, floor(c × 1.5) = c + c/2, saturating
// instead of overflowing.
func nextCost(c int) int {
	if c > math.MaxInt-c/2 {
		return math.MaxInt
	}
	return c + c/2
}
