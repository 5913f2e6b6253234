package aseek

import (
	"io"

	"github.com/streamtools/seekext/seekiface"
)

// PositionQuery is an in-flight computation of the current offset from the
// start of a stream. It has a single suspension point, the zero-delta seek
// relative to the current position.
type PositionQuery struct {
	seeker seekiface.PollSeeker

	done     bool
	position uint64
	err      error
}

// StreamPosition begins a query for the current offset of the given stream,
// measured from its start. Poll the returned query to completion. The
// operation is read-only; the zero-delta request does not move the cursor.
func StreamPosition(s seekiface.PollSeeker) *PositionQuery {
	return &PositionQuery{seeker: s}
}

// Poll implements Query. Any error the capability reports is returned
// unchanged.
func (q *PositionQuery) Poll() (uint64, error) {
	if q.done {
		return q.position, q.err
	}

	position, err := q.seeker.PollSeek(0, io.SeekCurrent)
	if seekiface.IsNotReady(err) {
		return 0, err
	}

	q.done = true

	if err != nil {
		q.err = err
		return 0, err
	}

	q.position = uint64(position)

	return q.position, nil
}
