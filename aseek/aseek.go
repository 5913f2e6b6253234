// Package aseek implements the non-blocking equivalents of the seekutil
// operations on top of the seekiface.PollSeeker capability.
//
// Each operation is exposed as an in-flight query value which is polled to
// completion. A query exclusively borrows its capability for its whole
// lifetime: no other request may be issued on the same capability while the
// query is outstanding, otherwise the position-preservation guarantee of
// StreamLen does not hold. Abandoning an unfinished query performs no
// rollback and leaves the cursor wherever the last completed request put it.
package aseek

import (
	"io"
	"runtime"

	"github.com/streamtools/seekext/seekiface"
)

// Query is the common surface of the in-flight computations in this package.
type Query interface {
	// Poll drives the computation as far as it can go without blocking. It
	// returns seekiface.ErrNotReady while the computation is suspended, in
	// which case it must be called again later and resumes where it left
	// off. Once the computation has completed, Poll keeps returning the
	// same outcome without issuing further seek requests.
	Poll() (uint64, error)
}

// Resolve polls the given query until it completes, yielding the processor
// between polls. This turns any query into its blocking equivalent and is
// only sensible when readiness is driven by another goroutine; with a
// capability that never reports not-ready it returns after a single poll.
func Resolve(q Query) (uint64, error) {
	for {
		value, err := q.Poll()
		if seekiface.IsNotReady(err) {
			runtime.Gosched()
			continue
		}

		return value, err
	}
}

// FromSeeker adapts a blocking io.Seeker into a seekiface.PollSeeker whose
// requests always complete synchronously and never report not-ready.
func FromSeeker(s io.Seeker) seekiface.PollSeeker {
	return seekerAdapter{s: s}
}

type seekerAdapter struct {
	s io.Seeker
}

func (a seekerAdapter) PollSeek(offset int64, whence int) (int64, error) {
	return a.s.Seek(offset, whence)
}
