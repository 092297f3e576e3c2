package agingsched

import "math"

// CoarsePriority returns the aging-adjusted priority of a task inserted at the
// given timestamp. A task loses one unit of priority for every aging interval
// that separates its insertion from the epoch, so tasks inserted earlier rank
// above tasks of the same base priority inserted later.
//
// Division rounds towards negative infinity, so negative timestamps age the
// same way positive ones do. The interval must be positive.
func CoarsePriority(priority, timestamp, interval int64) int64 {
	return priority - floorDiv(timestamp, interval)
}

// Bonus returns the adjustment applied to a task's coarse priority when it is
// compared against the other tasks in its group at time now. It is 0 if the
// task's position within its aging interval is not ahead of now's position,
// and -1 otherwise.
func Bonus(insertedAt, now, interval int64) int64 {
	if floorMod(insertedAt, interval) <= floorMod(now, interval) {
		return 0
	}
	return -1
}

// EffectivePriority returns the priority of a task at time now: its coarse
// priority plus its [Bonus].
func EffectivePriority(priority, insertedAt, now, interval int64) int64 {
	return CoarsePriority(priority, insertedAt, interval) + Bonus(insertedAt, now, interval)
}

// coarsePriority is [CoarsePriority] with overflow detection. It reports false
// when the result does not fit in an int64, or when it is so small that the
// effective priority would underflow.
func coarsePriority(priority, timestamp, interval int64) (int64, bool) {
	q := floorDiv(timestamp, interval)
	c := priority - q
	if (q > 0 && c > priority) || (q < 0 && c < priority) {
		return 0, false
	}
	if c == math.MinInt64 {
		return 0, false
	}
	return c, true
}

// floorDiv divides a by b rounding towards negative infinity. b must be
// positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns a modulo b in the range [0, b). b must be positive.
func floorMod(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
