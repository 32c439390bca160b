package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	mu    sync.Mutex
	items []int
	fail  error
	room  int
}

// push takes at most room items while fail is set, then reports fail.
func (s *sink) push(items ...int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(items)
	if s.fail != nil {
		n = min(n, s.room)
	}
	s.items = append(s.items, items[:n]...)
	s.room -= n
	if n < len(items) {
		return n, s.fail
	}
	return n, nil
}

func (s *sink) got() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.items...)
}

func TestPushAll(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2)
	p.AddMessages(3)
	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2, 3}, s.got())
	assert.Zero(t, p.Len())

	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2, 3}, s.got())
}

func TestPushAllKeepsBufferOnError(t *testing.T) {
	boom := errors.New("boom")
	s := &sink{fail: boom}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2)

	assert.ErrorIs(t, p.PushAll(), boom)
	assert.Equal(t, 2, p.Len())

	s.fail = nil
	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2}, s.got())
}

func TestPushAllDropsPushedPrefix(t *testing.T) {
	boom := errors.New("boom")
	s := &sink{fail: boom, room: 2}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2, 3, 4)

	assert.ErrorIs(t, p.PushAll(), boom)
	assert.Equal(t, []int{1, 2}, s.got())
	assert.Equal(t, 2, p.Len())

	s.fail = nil
	require.NoError(t, p.PushAll())
	assert.Equal(t, []int{1, 2, 3, 4}, s.got())
	assert.Zero(t, p.Len())
}

func TestStartPushesPeriodically(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[int](5*time.Millisecond))
	p.Start()
	p.Start()
	p.AddMessages(7)

	assert.Eventually(t, func() bool { return len(s.got()) == 1 }, time.Second, time.Millisecond)

	p.AddMessages(8)
	require.NoError(t, p.Stop())
	assert.Equal(t, []int{7, 8}, s.got())
	require.NoError(t, p.Stop())
}

func TestErrorHandler(t *testing.T) {
	boom := errors.New("boom")
	errs := make(chan error, 16)
	p := NewPusher(
		WithPushLogic((&sink{fail: boom}).push),
		WithPushInterval[int](time.Millisecond),
		WithErrorHandler[int](func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	p.AddMessages(1)
	p.Start()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("error handler not called")
	}
	assert.ErrorIs(t, p.Stop(), boom)
}
