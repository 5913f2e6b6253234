// Package seekutil adds convenience operations to types implementing
// io.Seeker. See the aseek package for the non-blocking equivalents.
package seekutil

import "io"

// StreamPosition returns the current offset from the start of the stream.
//
// This is equivalent to s.Seek(0, io.SeekCurrent); the request is issued even
// though it does not move the cursor, so any error the seeker would report is
// reported here unchanged.
func StreamPosition(s io.Seeker) (uint64, error) {
	position, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	return uint64(position), nil
}

// StreamLen returns the length of the stream in bytes using three seek
// requests at most. On success the cursor is back where it was before the
// call; on error the cursor position is undefined and callers which care must
// re-establish it with an explicit seek.
//
// NOTE: Callers which want the length of many streams and do not care about
// the cursor afterwards can issue s.Seek(0, io.SeekEnd) themselves, its
// return value is also the stream length.
func StreamLen(s io.Seeker) (uint64, error) {
	position, err := StreamPosition(s)
	if err != nil {
		return 0, err
	}

	length, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	// Avoid a third seek when the cursor was already at the end of the stream; the comparison is far cheaper than a
	// seek request which may touch the underlying device.
	if position == uint64(length) {
		return uint64(length), nil
	}

	if _, err := s.Seek(int64(position), io.SeekStart); err != nil {
		return 0, err
	}

	return uint64(length), nil
}
