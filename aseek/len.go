package aseek

import (
	"io"

	"github.com/streamtools/seekext/seekiface"
)

// lenState enumerates the steps of an in-flight length query. Each awaiting
// state is a suspension point; a failed request moves the machine straight to
// stateDone with the error recorded.
type lenState uint8

const (
	stateAwaitingPosition lenState = iota
	stateAwaitingEndSeek
	stateAwaitingRestoreSeek
	stateDone
)

// LenQuery is an in-flight computation of the total length of a stream which
// restores the cursor to where it was before the query began.
//
// The query first captures the current position, then seeks to the end of
// the stream (the resulting offset is the length), then seeks back to the
// captured position unless the cursor was already at the end. Only the
// captured position has to survive between suspensions.
//
// NOTE: If any step fails the cursor position is undefined; callers which
// care must re-establish it with an explicit seek before further use.
type LenQuery struct {
	seeker seekiface.PollSeeker
	state  lenState

	posQuery *PositionQuery
	position uint64

	length uint64
	err    error
}

// StreamLen begins a length query for the given stream. Poll the returned
// query to completion.
func StreamLen(s seekiface.PollSeeker) *LenQuery {
	return &LenQuery{seeker: s, posQuery: StreamPosition(s)}
}

// Poll implements Query, driving the machine through as many steps as
// complete without suspending. A not-ready report leaves the machine in its
// current state so the next poll resumes at the same step rather than
// restarting; a completed step is never re-issued.
func (q *LenQuery) Poll() (uint64, error) {
	for {
		switch q.state {
		case stateAwaitingPosition:
			position, err := q.posQuery.Poll()
			if err != nil {
				return 0, q.suspendOrFail(err)
			}

			q.position = position
			q.state = stateAwaitingEndSeek
		case stateAwaitingEndSeek:
			length, err := q.seeker.PollSeek(0, io.SeekEnd)
			if err != nil {
				return 0, q.suspendOrFail(err)
			}

			q.length = uint64(length)

			// The cursor is already at the end of the stream, seeking back to the captured position would be a
			// request with no effect; skip it.
			if q.position == q.length {
				q.state = stateDone
			} else {
				q.state = stateAwaitingRestoreSeek
			}
		case stateAwaitingRestoreSeek:
			if _, err := q.seeker.PollSeek(int64(q.position), io.SeekStart); err != nil {
				return 0, q.suspendOrFail(err)
			}

			q.state = stateDone
		case stateDone:
			return q.length, q.err
		}
	}
}

// suspendOrFail distinguishes suspension from failure: a not-ready report is
// passed through without touching the machine state, anything else is
// recorded as the terminal outcome of the query.
func (q *LenQuery) suspendOrFail(err error) error {
	if seekiface.IsNotReady(err) {
		return err
	}

	q.state = stateDone
	q.length = 0
	q.err = err

	return err
}
