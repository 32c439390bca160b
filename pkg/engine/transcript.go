package engine

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/HuXin0817/doots/pkg/models/message"
	"github.com/HuXin0817/doots/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/logx"
)

// Transcript streams move and game records to a writer in the background. It is
// safe to share between games. Records that arrive after Close are dropped.
type Transcript struct {
	pusher *pusher.Pusher[any]
	enc    message.Encoder
	closer io.Closer
	mu     sync.RWMutex
	closed bool
}

func NewTranscript(w io.Writer, format string, flushInterval time.Duration) (*Transcript, error) {
	enc, err := message.NewEncoder(format, w)
	if err != nil {
		return nil, err
	}

	t := &Transcript{enc: enc}
	t.pusher = pusher.NewPusher(
		pusher.WithPushInterval[any](flushInterval),
		pusher.WithPushLogic(func(records ...any) (int, error) {
			for i, record := range records {
				if err := t.enc.Encode(record); err != nil {
					return i, err
				}
			}
			return len(records), nil
		}),
		pusher.WithErrorHandler[any](func(err error) {
			logx.Errorf("transcript: %v", err)
		}),
	)
	t.pusher.Start()
	return t, nil
}

// OpenTranscript creates (or truncates) the file at path and writes to it.
func OpenTranscript(path, format string, flushInterval time.Duration) (*Transcript, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	t, err := NewTranscript(f, format, flushInterval)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	t.closer = f
	return t, nil
}

func (t *Transcript) Record(records ...any) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		logx.Errorf("transcript: closed, dropping %d records", len(records))
		return
	}
	t.pusher.AddMessages(records...)
}

// Close flushes pending records and releases the writer. Only the first call
// does anything.
func (t *Transcript) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	var be errorx.BatchError
	be.Add(t.pusher.Stop())
	be.Add(t.enc.Close())
	if t.closer != nil {
		be.Add(t.closer.Close())
	}
	return be.Err()
}
