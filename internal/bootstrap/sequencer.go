package bootstrap

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Dhanuzh/feurboot/internal/display"
	"github.com/Dhanuzh/feurboot/internal/locale"
	"github.com/Dhanuzh/feurboot/internal/log"
)

// State is the loading sequencer state.
type State string

const (
	StateIdle         State = "idle"
	StateInitializing State = "initializing"
	StateRunning      State = "running"
	StateHandedOff    State = "handed_off"
	StateFailed       State = "failed"
)

// AppRunner runs the application once the engine is up.
type AppRunner interface {
	RunApp(ctx context.Context) error
}

// EngineInitializer brings the engine up.
type EngineInitializer interface {
	InitializeEngine(ctx context.Context) (AppRunner, error)
}

// InitializerFunc adapts a function to EngineInitializer.
type InitializerFunc func(ctx context.Context) (AppRunner, error)

func (f InitializerFunc) InitializeEngine(ctx context.Context) (AppRunner, error) { return f(ctx) }

// RunnerFunc adapts a function to AppRunner.
type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) RunApp(ctx context.Context) error { return f(ctx) }

var (
	// ErrAlreadyStarted is returned by a second Run on the same Sequencer.
	ErrAlreadyStarted = errors.New("loading sequence already started")
	// ErrNoRunner means the initializer returned neither a runner nor an error.
	ErrNoRunner = errors.New("engine initializer returned no app runner")
)

// Sequencer drives the status text around engine bring-up:
// idle -> initializing -> running -> handed_off. It runs once.
type Sequencer struct {
	mu       sync.Mutex
	state    State
	onChange func(State)

	status       *display.Slot
	locale       locale.Locale
	readyTimeout time.Duration
	logger       *log.Logger
}

// NewSequencer creates a Sequencer writing to status in locale l.
func NewSequencer(status *display.Slot, l locale.Locale, logger *log.Logger) *Sequencer {
	return &Sequencer{
		state:  StateIdle,
		status: status,
		locale: l,
		logger: log.Or(logger),
	}
}

// SetReadyTimeout bounds InitializeEngine. Zero, the default, leaves it unbounded.
func (s *Sequencer) SetReadyTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readyTimeout = d
}

// OnChange registers a callback for state changes.
func (s *Sequencer) OnChange(callback func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// State returns the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Sequencer) set(st State) {
	s.mu.Lock()
	s.state = st
	cb := s.onChange
	s.mu.Unlock()
	if cb != nil {
		cb(st)
	}
}

func (s *Sequencer) begin() bool {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return false
	}
	s.state = StateInitializing
	cb := s.onChange
	s.mu.Unlock()
	if cb != nil {
		cb(StateInitializing)
	}
	return true
}

// Run sets the initApp text, waits for the engine, sets the runningApp text
// and waits for the app. Engine errors are returned as-is.
func (s *Sequencer) Run(ctx context.Context, eng EngineInitializer) error {
	if !s.begin() {
		return ErrAlreadyStarted
	}

	s.status.Set(locale.MustLookup(s.locale, locale.InitApp))

	runner, err := s.initialize(ctx, eng)
	if err != nil {
		s.set(StateFailed)
		return err
	}
	if runner == nil {
		s.set(StateFailed)
		return ErrNoRunner
	}

	s.set(StateRunning)
	s.status.Set(locale.MustLookup(s.locale, locale.RunningApp))

	if err := runner.RunApp(ctx); err != nil {
		s.set(StateFailed)
		return err
	}
	s.set(StateHandedOff)
	return nil
}

func (s *Sequencer) initialize(ctx context.Context, eng EngineInitializer) (AppRunner, error) {
	s.mu.Lock()
	timeout := s.readyTimeout
	s.mu.Unlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	start := time.Now()
	runner, err := eng.InitializeEngine(ctx)
	s.logger.Debug("engine initialize returned", "elapsed", time.Since(start), "err", err)
	return runner, err
}
