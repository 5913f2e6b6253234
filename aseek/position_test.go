package aseek

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamtools/seekext/seekiface"
	"github.com/streamtools/seekext/seektest"
)

func TestStreamPosition(t *testing.T) {
	stream := seektest.NewStream(15)

	_, err := stream.Seek(7, io.SeekStart)
	require.NoError(t, err)

	_, err = stream.Seek(2, io.SeekCurrent)
	require.NoError(t, err)

	position, err := StreamPosition(stream).Poll()
	require.NoError(t, err)
	require.Equal(t, uint64(9), position)

	// The query is read-only, a second one must see the same offset.
	position, err = StreamPosition(stream).Poll()
	require.NoError(t, err)
	require.Equal(t, uint64(9), position)
}

func TestStreamPositionResumes(t *testing.T) {
	stream := seektest.NewStream(15)
	stream.NotReadyPerSeek = 2

	query := StreamPosition(stream)

	for i := 0; i < 2; i++ {
		_, err := query.Poll()
		require.ErrorIs(t, err, seekiface.ErrNotReady)
	}

	position, err := query.Poll()
	require.NoError(t, err)
	require.Equal(t, uint64(0), position)

	// Two not-ready reports and one completion, but only a single seek request.
	require.Equal(t, 3, stream.PollCalls())
	require.Len(t, stream.Requests(), 1)
}

func TestStreamPositionCompletedQueryIssuesNoRequests(t *testing.T) {
	stream := seektest.NewStream(15)

	query := StreamPosition(stream)

	position, err := query.Poll()
	require.NoError(t, err)
	require.Equal(t, uint64(0), position)

	position, err = query.Poll()
	require.NoError(t, err)
	require.Equal(t, uint64(0), position)

	require.Equal(t, 1, stream.PollCalls())
}

func TestStreamPositionError(t *testing.T) {
	testErr := errors.New("test")

	seeker := &seektest.MockSeeker{}
	seeker.On("PollSeek", int64(0), io.SeekCurrent).Return(int64(0), testErr).Once()

	query := StreamPosition(seeker)

	_, err := query.Poll()
	require.Equal(t, testErr, err)

	// The outcome is cached, re-polling must not hit the capability again.
	_, err = query.Poll()
	require.Equal(t, testErr, err)

	seeker.AssertExpectations(t)
	seeker.AssertNumberOfCalls(t, "PollSeek", 1)
}
