package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhanuzh/feurboot/internal/display"
	"github.com/Dhanuzh/feurboot/internal/locale"
	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/storage"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

func quietLogger() *log.Logger { return log.New(&bytes.Buffer{}) }

func enText(k locale.Key) string { return locale.MustLookup(locale.EN, k) }

func TestSequencerTransitionsInOrder(t *testing.T) {
	page := display.NewPage(display.LoadingMessage)
	slot := display.Bind(page, display.LoadingMessage, quietLogger())
	seq := NewSequencer(slot, locale.EN, quietLogger())

	var states []State
	seq.OnChange(func(s State) { states = append(states, s) })

	entered := make(chan struct{})
	release := make(chan struct{})
	ran := false
	eng := InitializerFunc(func(ctx context.Context) (AppRunner, error) {
		close(entered)
		<-release
		return RunnerFunc(func(ctx context.Context) error {
			ran = true
			return nil
		}), nil
	})

	done := make(chan error, 1)
	go func() { done <- seq.Run(context.Background(), eng) }()

	<-entered
	// While the engine is still initializing only initApp is visible.
	assert.Equal(t, []string{enText(locale.InitApp)}, page.Node(display.LoadingMessage).History())
	assert.Equal(t, StateInitializing, seq.State())

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, []string{enText(locale.InitApp)}, page.Node(display.LoadingMessage).History())

	close(release)
	require.NoError(t, <-done)

	assert.True(t, ran)
	assert.Equal(t, []string{enText(locale.InitApp), enText(locale.RunningApp)}, page.Node(display.LoadingMessage).History())
	assert.Equal(t, []State{StateInitializing, StateRunning, StateHandedOff}, states)
	assert.Equal(t, StateHandedOff, seq.State())
}

func TestSequencerInitializeErrorPropagates(t *testing.T) {
	page := display.NewPage(display.LoadingMessage)
	seq := NewSequencer(display.Bind(page, display.LoadingMessage, quietLogger()), locale.FR, quietLogger())

	boom := errors.New("engine exploded")
	err := seq.Run(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
		return nil, boom
	}))

	assert.Same(t, boom, err)
	assert.Equal(t, []string{locale.MustLookup(locale.FR, locale.InitApp)}, page.Node(display.LoadingMessage).History())
	assert.Equal(t, StateFailed, seq.State())
}

func TestSequencerRunAppErrorPropagates(t *testing.T) {
	page := display.NewPage(display.LoadingMessage)
	seq := NewSequencer(display.Bind(page, display.LoadingMessage, quietLogger()), locale.EN, quietLogger())

	boom := errors.New("app crashed")
	err := seq.Run(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
		return RunnerFunc(func(context.Context) error { return boom }), nil
	}))

	assert.Same(t, boom, err)
	assert.Equal(t, enText(locale.RunningApp), page.Node(display.LoadingMessage).Text())
	assert.Equal(t, StateFailed, seq.State())
}

func TestSequencerNilRunner(t *testing.T) {
	seq := NewSequencer(nil, locale.EN, quietLogger())
	err := seq.Run(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
		return nil, nil
	}))
	assert.ErrorIs(t, err, ErrNoRunner)
}

func TestSequencerRunsOnce(t *testing.T) {
	seq := NewSequencer(nil, locale.EN, quietLogger())
	eng := InitializerFunc(func(context.Context) (AppRunner, error) {
		return RunnerFunc(func(context.Context) error { return nil }), nil
	})

	require.NoError(t, seq.Run(context.Background(), eng))
	assert.ErrorIs(t, seq.Run(context.Background(), eng), ErrAlreadyStarted)
}

func TestSequencerMissingElement(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	seq := NewSequencer(display.Bind(display.NewPage(), display.LoadingMessage, logger), locale.EN, logger)

	err := seq.Run(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
		return RunnerFunc(func(context.Context) error { return nil }), nil
	}))
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "could not find element")
}

func TestSequencerReadyTimeout(t *testing.T) {
	seq := NewSequencer(nil, locale.EN, quietLogger())
	seq.SetReadyTimeout(20 * time.Millisecond)

	err := seq.Run(context.Background(), InitializerFunc(func(ctx context.Context) (AppRunner, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSequencerOnChangeConcurrentSafe(t *testing.T) {
	seq := NewSequencer(nil, locale.EN, quietLogger())
	var mu sync.Mutex
	seen := 0
	seq.OnChange(func(State) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = seq.Run(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
				return RunnerFunc(func(context.Context) error { return nil }), nil
			}))
		}(i)
	}
	wg.Wait()

	started := 0
	for _, err := range errs {
		if err == nil {
			started++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyStarted)
		}
	}
	assert.Equal(t, 1, started)
	assert.Equal(t, 3, seen)
}

func TestNewWritesInitialTexts(t *testing.T) {
	page := display.NewPage(display.AppMessage, display.LoadingMessage)
	store := storage.NewMemory(map[string]string{storage.KeyLocale: `"fr"`})

	b := New(Options{Store: store, Document: page, Logger: quietLogger()})

	assert.Equal(t, locale.FR, b.Locale())
	assert.NotEmpty(t, b.ID())
	assert.Equal(t, locale.MustLookup(locale.FR, locale.Message), page.Node(display.AppMessage).Text())
	assert.Equal(t, locale.MustLookup(locale.FR, locale.Loading), page.Node(display.LoadingMessage).Text())
	assert.Equal(t, 1, store.Reads(storage.KeyLocale))
	assert.Equal(t, StateIdle, b.Sequencer().State())
}

func TestFullBootstrapSequence(t *testing.T) {
	page := display.NewPage(display.AppMessage, display.LoadingMessage)
	scope := theme.NewScope()
	store := storage.NewMemory(map[string]string{
		storage.KeyThemePreferences: `"{\"theme_mode\":true}"`,
	})

	b := New(Options{
		Store:      store,
		Document:   page,
		Surface:    scope,
		SystemDark: theme.Forced(false),
		Logger:     quietLogger(),
	})

	res := b.ApplyTheme()
	assert.Equal(t, theme.Dark, res.Mode)
	assert.Equal(t, "#1B191E", scope.Background())

	err := b.HandleLoading(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
		return RunnerFunc(func(context.Context) error { return nil }), nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		enText(locale.Loading),
		enText(locale.InitApp),
		enText(locale.RunningApp),
	}, page.Node(display.LoadingMessage).History())
	assert.Equal(t, 1, store.Reads(storage.KeyThemePreferences))
	assert.Equal(t, 1, store.Reads(storage.KeyLocale))
}

func TestBootstrapWithoutElementsOrSurface(t *testing.T) {
	var buf bytes.Buffer
	b := New(Options{
		Store:  storage.NewMemory(map[string]string{storage.KeyThemePreferences: `{bad`}),
		Logger: log.New(&buf),
	})

	var res theme.Resolution
	assert.NotPanics(t, func() { res = b.ApplyTheme() })
	assert.Equal(t, theme.Light, res.Mode)

	err := b.HandleLoading(context.Background(), InitializerFunc(func(context.Context) (AppRunner, error) {
		return RunnerFunc(func(context.Context) error { return nil }), nil
	}))
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), display.AppMessage)
	assert.Contains(t, buf.String(), display.LoadingMessage)
}
