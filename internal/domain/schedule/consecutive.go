package schedule

import (
	"sort"

	"society-booking/internal/domain/booking"
)

// DefaultMaxConsecutiveDays is the rolling cap on guest-parking days.
const DefaultMaxConsecutiveDays = 2

// WouldExceedLimit reports whether adding proposed to the user's existing
// active guest-parking dates would create a run of calendar-adjacent days
// longer than maxConsecutive, along with the resulting longest run.
//
// The full sorted sequence is rescanned on every proposal: inserting a date
// can merge two previously separate runs, so membership is not a property
// of the proposed date alone.
func WouldExceedLimit(existing []booking.Date, proposed booking.Date, maxConsecutive int) (bool, int) {
	if maxConsecutive <= 0 {
		maxConsecutive = DefaultMaxConsecutiveDays
	}

	run := LongestRun(append(append([]booking.Date{}, existing...), proposed))
	return run > maxConsecutive, run
}

// LongestRun returns the length of the longest chain of dates where each is
// exactly one day after the previous. Duplicates are ignored.
func LongestRun(dates []booking.Date) int {
	if len(dates) == 0 {
		return 0
	}

	unique := make([]booking.Date, 0, len(dates))
	seen := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		key := d.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, d)
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i].Before(unique[j]) })

	longest, streak := 1, 1
	for i := 1; i < len(unique); i++ {
		if unique[i].DaysSince(unique[i-1]) == 1 {
			streak++
		} else {
			streak = 1
		}
		if streak > longest {
			longest = streak
		}
	}
	return longest
}
