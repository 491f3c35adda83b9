package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/contentdb/internal/config"
	"github.com/zeusync/contentdb/internal/core/events/bus"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/core/registry"
	"github.com/zeusync/contentdb/internal/core/storage/file"
	"github.com/zeusync/contentdb/pkg/encoding"
	"golang.org/x/text/language"
)

// App bundles everything the content tools need.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Events   bus.EventBus
	Registry *registry.Registry
	Store    *file.Store
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideEventBus,
	ProvideRegistry,
	ProvideCodec,
	ProvideStore,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.New(level), nil
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

func ProvideRegistry(cfg *config.Config, logger *log.Logger, events bus.EventBus) (*registry.Registry, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, err
	}
	return registry.New(
		registry.WithLogger(logger.With(log.String("component", "registry"))),
		registry.WithEventBus(events),
		registry.WithLocale(tag),
	), nil
}

func ProvideCodec(cfg *config.Config) (encoding.Codec, error) {
	return encoding.ByName(cfg.Format)
}

func ProvideStore(cfg *config.Config, codec encoding.Codec, logger *log.Logger) *file.Store {
	return file.New(cfg.ContentDir, codec, logger.With(log.String("component", "store")))
}
