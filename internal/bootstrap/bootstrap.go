// Package bootstrap runs the work done before the application engine takes
// over: locale texts, theme, and the loading handshake with the engine.
package bootstrap

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Dhanuzh/feurboot/internal/display"
	"github.com/Dhanuzh/feurboot/internal/locale"
	"github.com/Dhanuzh/feurboot/internal/log"
	"github.com/Dhanuzh/feurboot/internal/storage"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

// Options are the collaborators a Bootstrap is built from. Everything is
// optional; missing collaborators degrade to empty storage, an empty page,
// no surface and a light system signal.
type Options struct {
	Store      storage.Store
	Document   display.Document
	Surface    theme.Surface
	SystemDark func() bool

	FollowSystemLocale bool
	SystemLocales      func() ([]string, error)

	// ReadyTimeout bounds engine bring-up. Zero means unbounded.
	ReadyTimeout time.Duration

	Logger *log.Logger
}

// Bootstrap is one bootstrap run.
type Bootstrap struct {
	id     string
	locale locale.Locale
	opts   Options
	logger *log.Logger

	message *display.Slot
	loading *display.Slot
	seq     *Sequencer
}

// New performs the load-time steps: it reads the locale once, binds the
// message and loading elements, and writes the initial texts.
func New(opts Options) *Bootstrap {
	id := uuid.NewString()
	logger := log.Or(opts.Logger).With("run", id[:8])

	detector := &locale.Detector{
		Store:        opts.Store,
		FollowSystem: opts.FollowSystemLocale,
		System:       opts.SystemLocales,
		Logger:       logger,
	}
	l := detector.Current()

	b := &Bootstrap{
		id:      id,
		locale:  l,
		opts:    opts,
		logger:  logger,
		message: display.Bind(opts.Document, display.AppMessage, logger),
		loading: display.Bind(opts.Document, display.LoadingMessage, logger),
	}
	b.message.Set(locale.MustLookup(l, locale.Message))
	b.loading.Set(locale.MustLookup(l, locale.Loading))

	b.seq = NewSequencer(b.loading, l, logger)
	b.seq.SetReadyTimeout(opts.ReadyTimeout)

	logger.Debug("bootstrap prepared", "locale", l)
	return b
}

// ID is the run id used in diagnostics.
func (b *Bootstrap) ID() string { return b.id }

// Locale is the active locale for this run.
func (b *Bootstrap) Locale() locale.Locale { return b.locale }

// Sequencer exposes the loading sequencer, mainly to observe its state.
func (b *Bootstrap) Sequencer() *Sequencer { return b.seq }

// ApplyTheme resolves the stored preference and applies the palette. It
// never fails.
func (b *Bootstrap) ApplyTheme() theme.Resolution {
	r := theme.NewResolver(b.opts.Store, b.opts.SystemDark, b.logger)
	res := r.Resolve()
	theme.Apply(b.opts.Surface, res.Mode)
	return res
}

// HandleLoading runs the loading sequencer against eng. Engine failures are
// returned unmodified.
func (b *Bootstrap) HandleLoading(ctx context.Context, eng EngineInitializer) error {
	return b.seq.Run(ctx, eng)
}
