// Package seekiface defines the interfaces consumed by the seek convenience
// operations in this module. The blocking capability is the standard
// io.Seeker; this package adds its non-blocking counterpart.
package seekiface

import (
	"errors"
	"io"
)

// ErrNotReady is reported by PollSeek when the seek request has been accepted
// but has not completed yet. The caller must poll the same request again once
// the underlying stream signals readiness; until then no other request may be
// issued on the same capability.
var ErrNotReady = errors.New("seek request not ready")

// IsNotReady returns a boolean indicating whether the given error is a not-ready report rather than a failure.
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// PollSeeker is the non-blocking counterpart to io.Seeker.
//
// PollSeek attempts to move the cursor to an offset interpreted according to
// whence (io.SeekStart, io.SeekCurrent or io.SeekEnd) and returns the
// resulting absolute offset. When the request cannot complete without
// blocking it returns ErrNotReady and the cursor is unchanged; any other
// non-nil error means the request failed terminally.
//
// NOTE: A blocking io.Seeker is trivially a PollSeeker which never reports
// ErrNotReady, see the adapter in the aseek package.
type PollSeeker interface {
	PollSeek(offset int64, whence int) (int64, error)
}

// ReadPollSeeker is a composition of the reader/poll seeker interfaces.
type ReadPollSeeker interface {
	io.Reader
	PollSeeker
}

// ReadWritePollSeeker is a composition of the reader/writer/poll seeker
// interfaces.
type ReadWritePollSeeker interface {
	io.Reader
	io.Writer
	PollSeeker
}
