package agingsched

// Task represents an item waiting in a [Scheduler]. It holds the caller's
// identifier alongside the priority and timestamp it was inserted with.
type Task[T comparable] struct {
	ID         T
	Priority   int64
	InsertedAt int64

	// Both are derived once at insertion and never change, even when the task
	// is popped as part of a group and pushed back.
	coarse    int64
	remainder int64
	interval  int64

	// The seqNo is used to maintain the order of tasks with the same effective
	// priority. It is taken from the scheduler's counter when the task is
	// inserted and is immutable.
	seqNo int64

	index int
}

// CoarsePriority returns the aging-adjusted priority the task was ordered by
// when it was inserted.
func (t *Task[T]) CoarsePriority() int64 {
	return t.coarse
}

// EffectivePriority returns the priority of the task at time now.
func (t *Task[T]) EffectivePriority(now int64) int64 {
	return t.coarse + t.bonus(floorMod(now, t.interval))
}

// bonus returns the group tie-break adjustment given the remainder of the
// query timestamp.
func (t *Task[T]) bonus(nowRemainder int64) int64 {
	if t.remainder <= nowRemainder {
		return 0
	}
	return -1
}

// outranks reports whether t should be extracted before u at a query time
// with the given remainder. Both tasks must share the same coarse priority.
func (t *Task[T]) outranks(u *Task[T], nowRemainder int64) bool {
	tb, ub := t.bonus(nowRemainder), u.bonus(nowRemainder)
	if tb != ub {
		return tb > ub
	}
	return t.seqNo < u.seqNo
}
