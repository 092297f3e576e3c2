// Package agingsched implements a priority-based task scheduler in which
// waiting tasks age, so that low-priority tasks are not starved by a
// continuous stream of higher-priority arrivals.
//
// Time is supplied by the caller as an integer timestamp on every insert and
// extract; the scheduler never reads a clock. Each task is ordered by a coarse
// priority computed once at insertion:
//
//	coarse = priority - floor(timestamp / interval)
//
// so a task inserted one aging interval earlier than another ranks as if its
// priority were one higher. Tasks sharing the highest coarse priority are
// compared on extraction using their position within the aging interval
// relative to the query time, and then in FIFO order. Extraction only examines
// that group, never the whole queue.
package agingsched
