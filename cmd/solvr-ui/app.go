package main

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/fcavalcantirj/solvr-ui/internal/config"
	"github.com/fcavalcantirj/solvr-ui/internal/errors"
	"github.com/fcavalcantirj/solvr-ui/pkg/api"
	"github.com/fcavalcantirj/solvr-ui/pkg/eventloop"
	"github.com/fcavalcantirj/solvr-ui/pkg/toast"
	"github.com/fcavalcantirj/solvr-ui/pkg/toggle"
)

// app bundles the runtime every command needs: config, logger, API
// client and the event loop controllers dispatch onto.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	client *api.Client
	loop   *eventloop.Loop

	// failed flips when any optimistic mutation was reverted; commands
	// use it to choose the exit code since controllers do not return
	// errors from Toggle.
	failed atomic.Bool
}

// newApp loads the configuration and assembles the runtime.
func newApp() (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	key, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	a.logger = newLogger(cfg.Log)

	clientOpts := []api.ClientOption{
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.TimeoutDuration()),
		api.WithMaxRetries(cfg.API.MaxRetries),
		api.WithLogger(a.logger),
	}
	if cfg.Metrics.Enabled {
		clientOpts = append(clientOpts,
			api.WithMetrics(api.NewClientMetrics(api.WithNamespace(cfg.Metrics.Namespace))))
	}
	a.client = api.NewClient(key, clientOpts...)

	a.loop = eventloop.New(eventloop.WithLogger(a.logger))
	return a, nil
}

func (a *app) close() {
	a.loop.Close()
}

// notifier prints transient mutation notices the way the web client
// would toast them, and records failures for the exit code.
func (a *app) notifier() toast.Notifier {
	return toast.NotifierFunc(func(level toast.Level, message string) {
		if level == toast.LevelError {
			a.failed.Store(true)
		}
		warn("%s", message)
	})
}

// toggleOptions are the controller options every command shares.
func (a *app) toggleOptions() toggle.Options {
	opts := toggle.Options{
		Notifier: a.notifier(),
		Logger:   a.logger,
	}
	if a.cfg.Metrics.Enabled {
		opts.Metrics = toggle.NewMetrics(toggle.WithNamespace(a.cfg.Metrics.Namespace))
	}
	return opts
}

// await polls cond until it holds or the configured timeout passes.
func (a *app) await(cond func() bool) bool {
	deadline := time.Now().Add(a.cfg.TimeoutDuration())
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// settle waits for the controller's in-flight mutation to resolve and
// reports whether it succeeded.
func (a *app) settle(busy func() bool) error {
	// The toggle was dispatched; a barrier makes sure it ran before the
	// busy flag is consulted.
	a.loop.Sync(func() {})

	if !a.await(func() bool { return !busy() }) {
		return errors.New("E301").WithDetail("The mutation did not settle before the timeout")
	}
	if a.failed.Load() {
		return errors.New("E301").WithDetail("The mutation was rejected and rolled back")
	}
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// parseIdentity validates a CLI (type, id) pair.
func parseIdentity(entityType, id string) (api.Identity, error) {
	if entityType != api.EntityAgent && entityType != api.EntityHuman {
		return api.Identity{}, errors.New("E201").
			WithDetail("Entity type must be agent or human, got " + entityType)
	}
	if id == "" {
		return api.Identity{}, errors.New("E201").
			WithDetail("Entity id must not be empty")
	}
	return api.Identity{Type: entityType, ID: id}, nil
}
