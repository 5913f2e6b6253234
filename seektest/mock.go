package seektest

import (
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/streamtools/seekext/seekiface"
)

var (
	_ io.Seeker            = (*MockSeeker)(nil)
	_ seekiface.PollSeeker = (*MockSeeker)(nil)
)

// MockSeeker is a 'testify' backed mock implementing both io.Seeker and
// seekiface.PollSeeker, for tests which need full control over the outcome
// of each seek request.
type MockSeeker struct {
	mock.Mock
}

func (m *MockSeeker) Seek(offset int64, whence int) (int64, error) {
	args := m.Called(offset, whence)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeeker) PollSeek(offset int64, whence int) (int64, error) {
	args := m.Called(offset, whence)
	return args.Get(0).(int64), args.Error(1)
}
