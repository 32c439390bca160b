package pusher

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// PushLogic pushes a batch and reports how many messages, from the front, went out.
type PushLogic[T any] func(...T) (pushed int, err error)

// Pusher buffers messages and hands them to PushLogic in batches, every PushInterval
// once started and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      PushLogic[T]
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	running        atomic.Bool
	done           chan struct{}
	stopped        chan struct{}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(messages ...T) (int, error) { return len(messages), nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffer. On failure the messages that were not pushed stay
// buffered for the next try.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	pushed, err := p.PushLogic(p.MessagesBuffer...)
	pushed = min(max(pushed, 0), len(p.MessagesBuffer))
	p.MessagesBuffer = slices.Clone(p.MessagesBuffer[pushed:])
	if len(p.MessagesBuffer) == 0 {
		p.MessagesBuffer = nil
	}
	return err
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	if !p.running.CompareAndSwap(false, true) {
		return
	}

	p.done = make(chan struct{})
	p.stopped = make(chan struct{})
	threading.GoSafe(func() {
		defer close(p.stopped)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-p.done:
				return
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			}
		}
	})
}

// Stop ends the periodic loop and pushes whatever is still buffered.
func (p *Pusher[T]) Stop() error {
	if p.running.CompareAndSwap(true, false) {
		close(p.done)
		<-p.stopped
	}
	return p.PushAll()
}
