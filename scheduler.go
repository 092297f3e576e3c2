package agingsched

import (
	"container/heap"
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// MetricsHook defines hooks for monitoring insert, extract, and remove events.
// Hooks are called synchronously once the scheduler's state has changed.
type MetricsHook[T comparable] interface {
	OnInsert(task *Task[T])
	OnExtract(task *Task[T], now int64, groupSize int)
	OnRemove(task *Task[T])
}

// Scheduler is a priority queue whose tasks age while they wait. It supports
// the following operations:
//
//   - Insert with a base priority and an insertion timestamp
//   - Extract the task with the highest effective priority at a given time
//   - Peek at the task that would be extracted
//   - Remove a task before it is extracted
//
// Tasks are ordered by their coarse priority, which is fixed at insertion and
// drops by one for every aging interval between the epoch and the insertion
// timestamp. Tasks sharing the highest coarse priority form a group, and only
// that group is examined on extraction: a task whose position within its
// aging interval is ahead of the query time's position ranks one below the
// rest of its group. Remaining ties are broken in FIFO order.
//
// A Scheduler is not safe for concurrent use. Callers sharing one between
// goroutines must hold a single lock across every call.
type Scheduler[T comparable] struct {
	logger  *zap.Logger
	metrics MetricsHook[T]

	tasks    taskHeap[T]
	seqNo    int64
	interval int64
}

// New creates a new [Scheduler] that ages tasks by one priority unit for every
// interval units of time. It returns [ErrInvalidConfiguration] if the interval
// is not positive.
func New[T comparable](interval int64, opts ...Option[T]) (*Scheduler[T], error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: aging interval must be positive, got %d", ErrInvalidConfiguration, interval)
	}

	o := &Options[T]{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	s := &Scheduler[T]{
		logger:   o.Logger,
		metrics:  o.Metrics,
		tasks:    make(taskHeap[T], 0),
		interval: interval,
	}

	heap.Init(&s.tasks)
	return s, nil
}

// Insert adds a new [Task] with the given identifier, priority, and insertion
// timestamp to the scheduler. Timestamps are expected, but not required, to be
// non-decreasing across calls. Identifiers should be unique among queued
// tasks; duplicates are not detected.
//
// Insert returns [ErrInvalidArgument], leaving the scheduler unchanged, if the
// task's aging-adjusted priority cannot be represented.
func (s *Scheduler[T]) Insert(id T, priority, timestamp int64) error {
	coarse, ok := coarsePriority(priority, timestamp, s.interval)
	if !ok {
		s.logger.Warn("rejected insert",
			zap.Any("id", id),
			zap.Int64("priority", priority),
			zap.Int64("timestamp", timestamp),
		)
		return fmt.Errorf("%w: priority %d at timestamp %d is out of range", ErrInvalidArgument, priority, timestamp)
	}

	task := &Task[T]{
		ID:         id,
		Priority:   priority,
		InsertedAt: timestamp,
		coarse:     coarse,
		remainder:  floorMod(timestamp, s.interval),
		interval:   s.interval,
		seqNo:      s.seqNo,
		index:      -1,
	}

	s.seqNo++
	heap.Push(&s.tasks, task)

	s.logger.Debug("insert",
		zap.Any("id", id),
		zap.Int64("priority", priority),
		zap.Int64("timestamp", timestamp),
		zap.Int64("coarse", coarse),
		zap.Int64("seq", task.seqNo),
	)

	if s.metrics != nil {
		s.metrics.OnInsert(task)
	}

	return nil
}

// ExtractNext removes and returns the identifier of the task with the highest
// effective priority at time now. If the scheduler has no tasks, ExtractNext
// returns the zero value and false.
func (s *Scheduler[T]) ExtractNext(now int64) (T, bool) {
	if len(s.tasks) == 0 {
		var zero T
		return zero, false
	}

	group := s.tasks.popGroup()
	task := s.best(group, now)
	s.tasks.pushAll(group, task)

	s.logger.Debug("extract",
		zap.Any("id", task.ID),
		zap.Int64("now", now),
		zap.Int64("coarse", task.coarse),
		zap.Int64("seq", task.seqNo),
		zap.Int("group", len(group)),
	)

	if s.metrics != nil {
		s.metrics.OnExtract(task, now, len(group))
	}

	return task.ID, true
}

// Peek returns the identifier ExtractNext would return at time now, without
// removing it. If the scheduler has no tasks, Peek returns the zero value and
// false.
func (s *Scheduler[T]) Peek(now int64) (T, bool) {
	if len(s.tasks) == 0 {
		var zero T
		return zero, false
	}

	group := s.tasks.popGroup()
	task := s.best(group, now)
	s.tasks.pushAll(group, nil)

	return task.ID, true
}

// best returns the task within a coarse priority group that ranks highest at
// time now.
func (s *Scheduler[T]) best(group []*Task[T], now int64) *Task[T] {
	r := floorMod(now, s.interval)

	best := group[0]
	for _, task := range group[1:] {
		if task.outranks(best, r) {
			best = task
		}
	}
	return best
}

// Drain returns an iterator that extracts tasks at time now until the
// scheduler is empty or iteration stops. Every identifier yielded has been
// removed from the scheduler.
func (s *Scheduler[T]) Drain(now int64) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			id, ok := s.ExtractNext(now)
			if !ok {
				return
			}

			if !yield(id) {
				return
			}
		}
	}
}

// Remove cancels the earliest inserted task with the given identifier,
// reporting whether one was queued. This is useful for withdrawing a [Task]
// that is no longer needed before it is extracted.
func (s *Scheduler[T]) Remove(id T) bool {
	var task *Task[T]
	for _, t := range s.tasks {
		if t.ID == id && (task == nil || t.seqNo < task.seqNo) {
			task = t
		}
	}
	if task == nil {
		return false
	}

	heap.Remove(&s.tasks, task.index)

	s.logger.Debug("remove",
		zap.Any("id", id),
		zap.Int64("seq", task.seqNo),
	)

	if s.metrics != nil {
		s.metrics.OnRemove(task)
	}

	return true
}

// Len returns the number of tasks currently scheduled.
func (s *Scheduler[T]) Len() int {
	return len(s.tasks)
}

// AgingInterval returns the interval the scheduler was created with.
func (s *Scheduler[T]) AgingInterval() int64 {
	return s.interval
}
