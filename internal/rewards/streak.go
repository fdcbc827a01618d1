package rewards

import (
	"slices"
	"time"
)

// NextStreakMilestone returns the next daily-streak milestone above the
// current streak length.
func NextStreakMilestone(current int) int {
	milestones := []int{3, 7, 14, 30}
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	// Beyond 30, every 30 days.
	return ((current / 30) + 1) * 30
}

// IsStreakMilestone reports whether a streak of n days lands exactly on a
// milestone.
func IsStreakMilestone(n int) bool {
	if n <= 0 {
		return false
	}
	return NextStreakMilestone(n-1) == n
}

// StreakInfo summarizes daily learning activity.
type StreakInfo struct {
	Current     int
	Longest     int
	ActiveToday bool
	LastActive  time.Time
}

// Streak computes streak statistics from activity timestamps. Timestamps
// are bucketed into calendar days in now's location, duplicates collapse.
// The current streak stays alive until the end of the day after the last
// active day.
func Streak(activity []time.Time, now time.Time) StreakInfo {
	if len(activity) == 0 {
		return StreakInfo{}
	}
	loc := now.Location()

	days := make([]time.Time, 0, len(activity))
	for _, t := range activity {
		days = append(days, dayOf(t, loc))
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	days = slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })

	info := StreakInfo{LastActive: days[len(days)-1]}

	run := 0
	for i, d := range days {
		if i > 0 && d.Equal(nextDay(days[i-1])) {
			run++
		} else {
			run = 1
		}
		info.Longest = max(info.Longest, run)
	}

	today := dayOf(now, loc)
	last := days[len(days)-1]
	info.ActiveToday = last.Equal(today)
	if last.After(today) {
		// Clock skew: activity recorded "in the future" still counts as today.
		info.ActiveToday = true
	} else if !info.ActiveToday && !nextDay(last).Equal(today) {
		return info
	}
	info.Current = run
	return info
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func nextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}
