package app

import (
	"log/slog"

	"github.com/thenoetrevino/tiles/internal/events"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient  events.EventPublisher
	logger       *slog.Logger
	system       *projectservice.System
	storeOptions []store.Option
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSystem replaces the OS collaborators (process spawner, file opener,
// clipboard)
func WithSystem(system projectservice.System) Option {
	return func(cfg *appConfig) {
		cfg.system = &system
	}
}

// WithStoreOptions passes options through to the project store
func WithStoreOptions(opts ...store.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOptions = append(cfg.storeOptions, opts...)
	}
}
