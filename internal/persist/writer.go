package persist

import (
	"sync"

	"go.uber.org/zap"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/store"
)

// Writer saves entry snapshots in the background. Save never blocks on the
// backend: when writes fall behind, only the newest snapshot is kept.
type Writer struct {
	kv     store.KV
	key    string
	logger *zap.Logger

	mu      sync.Mutex
	pending []byte
	lastErr error
	closed  bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// NewWriter starts the background goroutine. Close must be called to flush
// and stop it.
func NewWriter(kv store.KV, key string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Writer{
		kv:     kv,
		key:    key,
		logger: logger,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w
}

// Save queues entries for writing. It has the signature of a state.Listener.
func (w *Writer) Save(entries []model.Entry) {
	b, err := Encode(entries)
	if err != nil {
		w.logger.Error("encode entries", zap.Error(err))
		return
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("save after close dropped", zap.Int("entries", len(entries)))
		return
	}
	w.pending = b
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.quit:
			w.flush()
			return
		}
	}
}

func (w *Writer) flush() {
	w.mu.Lock()
	b := w.pending
	w.pending = nil
	w.mu.Unlock()
	if b == nil {
		return
	}

	err := w.kv.Put(w.key, b)
	if err != nil {
		w.logger.Error("persist entries", zap.String("key", w.key), zap.Error(err))
	} else {
		w.logger.Debug("persisted entries", zap.String("key", w.key), zap.Int("bytes", len(b)))
	}

	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
}

// Close writes any queued snapshot, stops the goroutine and returns the
// error of the last write attempt. It does not close the store.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return w.err()
	}
	w.closed = true
	w.mu.Unlock()

	close(w.quit)
	<-w.done
	return w.err()
}

func (w *Writer) err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}
