package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/weverton790458597/DashBoard/internal/config"
	"github.com/weverton790458597/DashBoard/internal/ledger"
)

var ErrWriterClosed = errors.New("storage: writer already committed or rolled back")

// Storage holds the dashboard session state in memory. Readers get a
// snapshot; a single Writer at a time works on a private copy that is
// swapped in on Commit.
type Storage struct {
	mu        sync.RWMutex
	state     ledger.State
	writeLock chan struct{}
}

// NewStorage creates the session state, seeded with the demo records when
// the config asks for it.
func NewStorage(env *config.Config) *Storage {
	var state ledger.State
	if env.SeedMockData {
		state = ledger.NewSeededState(time.Now(), env.InitialBalance, env.ExchangeRate)
	} else {
		state = ledger.NewState(env.InitialBalance, env.ExchangeRate)
	}
	return NewStorageFromState(state)
}

func NewStorageFromState(state ledger.State) *Storage {
	return &Storage{
		state:     state.Clone(),
		writeLock: make(chan struct{}, 1),
	}
}

// Read returns a consistent snapshot of the current state.
func (s *Storage) Read() *Reader {
	s.mu.RLock()
	snapshot := s.state.Clone()
	s.mu.RUnlock()
	return NewReader(&snapshot)
}

// Write waits for exclusive write access. The returned Writer must be
// committed or rolled back.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeLock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	working := s.state.Clone()
	s.mu.RUnlock()
	return newWriter(s, working), nil
}

func (s *Storage) commit(next ledger.State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

func (s *Storage) release() {
	<-s.writeLock
}
