// Package seektest provides seekable stream stubs for testing the seek
// convenience operations. The stubs record the seek traffic they receive so
// tests can assert on the exact requests a query issued.
package seektest

import (
	"fmt"
	"io"

	"github.com/streamtools/seekext/seekiface"
)

var (
	_ io.Seeker            = (*Stream)(nil)
	_ seekiface.PollSeeker = (*Stream)(nil)
)

// Seek records a single seek request issued against a Stream.
type Seek struct {
	Offset int64
	Whence int
}

// Stream is an in-memory stream of zero bytes implementing both io.Seeker
// and seekiface.PollSeeker. The configuration fields must not be modified
// once the stream is in use.
type Stream struct {
	// NotReadyPerSeek is the number of times each seek request reports
	// seekiface.ErrNotReady before completing. Only PollSeek honors it.
	NotReadyPerSeek int

	// FailOn fails the nth issued seek request (starting at one) with
	// FailErr. Zero disables failure injection.
	FailOn  int
	FailErr error

	size     int64
	position int64

	notReady  int
	pollCalls int
	requests  []Seek
}

// NewStream creates a stream of the given number of zero bytes positioned at
// its start.
func NewStream(size int64) *Stream {
	return &Stream{size: size}
}

// Seek implements io.Seeker.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	return s.seek(offset, whence)
}

// PollSeek implements seekiface.PollSeeker, reporting not-ready
// NotReadyPerSeek times before letting each request complete.
func (s *Stream) PollSeek(offset int64, whence int) (int64, error) {
	s.pollCalls++

	if s.notReady < s.NotReadyPerSeek {
		s.notReady++
		return 0, seekiface.ErrNotReady
	}

	s.notReady = 0

	return s.seek(offset, whence)
}

// Position returns the current cursor position.
func (s *Stream) Position() int64 {
	return s.position
}

// Requests returns the seek requests issued so far, in order. Not-ready
// reports are not requests; a request suspended and then re-polled appears
// once.
func (s *Stream) Requests() []Seek {
	return s.requests
}

// PollCalls returns the raw number of PollSeek calls including those which
// reported not-ready.
func (s *Stream) PollCalls() int {
	return s.pollCalls
}

func (s *Stream) seek(offset int64, whence int) (int64, error) {
	s.requests = append(s.requests, Seek{Offset: offset, Whence: whence})

	if s.FailOn != 0 && len(s.requests) == s.FailOn {
		return 0, s.FailErr
	}

	var absolute int64

	switch whence {
	case io.SeekStart:
		absolute = offset
	case io.SeekCurrent:
		absolute = s.position + offset
	case io.SeekEnd:
		absolute = s.size + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}

	if absolute < 0 {
		return 0, fmt.Errorf("negative position %d", absolute)
	}

	s.position = absolute

	return absolute, nil
}
