package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-config-resolver/internal/adapter"
	"github.com/MKhiriev/go-config-resolver/internal/cache"
	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/fallback"
	"github.com/MKhiriev/go-config-resolver/internal/handler"
	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/loader"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/provider"
	"github.com/MKhiriev/go-config-resolver/internal/resolver"
	"github.com/MKhiriev/go-config-resolver/internal/server"
	"github.com/MKhiriev/go-config-resolver/internal/service"
	"github.com/MKhiriev/go-config-resolver/internal/store"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/workers"
	"github.com/MKhiriev/go-config-resolver/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("config-resolver", cfg.Resolver.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// key transformation
	var transformerOpts []keytransform.Option
	if cfg.Resolver.MappingsFile != "" {
		mappings, err := keytransform.LoadMappings(cfg.Resolver.MappingsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading key mappings")
		}
		transformerOpts = append(transformerOpts, keytransform.WithMappings(mappings))
	}
	transformer := keytransform.New(cfg.Resolver.EnvPrefix, transformerOpts...)

	env := utils.NewOSEnvironment()
	directPatterns, err := loader.CompilePatterns(cfg.Resolver.DirectEnvPatterns)
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling direct environment patterns")
	}

	layeredCache := cache.New(
		cache.WithEnvironment(env),
		cache.WithRelevancePatterns(cache.DefaultRelevancePatterns(transformer.Prefix(), directPatterns...)...),
		cache.WithLayerConfig(cache.LayerRemote, layerConfig(cache.LayerRemote, cfg.Cache.RemoteTTL, cfg.Cache.RemoteMaxEntries)),
		cache.WithLayerConfig(cache.LayerEnvVars, layerConfig(cache.LayerEnvVars, cfg.Cache.EnvVarsTTL, cfg.Cache.EnvVarsMaxEntries)),
		cache.WithLayerConfig(cache.LayerEnvFiles, layerConfig(cache.LayerEnvFiles, cfg.Cache.EnvFilesTTL, cfg.Cache.EnvFilesMaxEntries)),
		cache.WithLayerConfig(cache.LayerMerged, layerConfig(cache.LayerMerged, cfg.Cache.MergedTTL, cfg.Cache.MergedMaxEntries)),
		cache.WithSweepInterval(cfg.Cache.SweepInterval),
		cache.WithLogger(log.WithComponent("cache")),
	)

	registry := provider.NewRegistry(cfg.Resolver.RootDir, cfg.Resolver.AppsDir, env, transformer, log.WithComponent("registry"))
	if _, err = registry.Discover(); err != nil {
		log.Warn().Err(err).Msg("app discovery failed, continuing with environment apps")
	}

	// remote configuration service
	remoteClient, err := adapter.NewHTTPRemoteConfigClient(cfg.Remote, log.WithComponent("remote"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote configuration client")
	}
	secrets := adapter.NewSecretResolver(adapter.NewHTTPSecretClient(cfg.Remote, log.WithComponent("vault")), cfg.Remote.SecretTTL, log.WithComponent("secrets"))
	defer secrets.Close()

	loaders := []loader.Loader{
		loader.Cached(loader.NewRemoteLoader(remoteClient, secrets, cfg.Remote.Label, log), layeredCache, log),
		loader.Cached(loader.NewRootEnvFileLoader(cfg.Resolver.RootDir, transformer, registry.Known, log), layeredCache, log),
		loader.Cached(loader.NewAppEnvFileLoader(cfg.Resolver.RootDir, cfg.Resolver.AppsDir, transformer, log), layeredCache, log),
		loader.Cached(loader.NewGenericEnvLoader(env, transformer, registry.Known), layeredCache, log),
		loader.Cached(loader.NewAppEnvLoader(env, transformer, registry.Known), layeredCache, log),
		loader.Cached(loader.NewProcessEnvLoader(env, transformer, directPatterns), layeredCache, log),
	}

	keyResolver := resolver.New(transformer,
		resolver.WithFuzzyThreshold(cfg.Resolver.FuzzyThreshold),
		resolver.WithPartialThreshold(cfg.Resolver.PartialThreshold),
	)

	storages, err := store.NewStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()
	defer layeredCache.Destroy()

	providerOpts := []provider.Option{
		provider.WithRegistry(registry),
		provider.WithTransformer(transformer),
		provider.WithResolver(keyResolver),
		provider.WithLogger(log.WithComponent("provider")),
	}
	if storages.SnapshotRepository != nil {
		providerOpts = append(providerOpts, provider.WithSnapshotRecorder(storages.SnapshotRepository))
	}
	resolutionProvider := provider.New(cfg.Resolver, loaders, layeredCache, env, providerOpts...)

	fallbackSystem := fallback.New(transformer, keyResolver, env, cfg.Resolver.Defaults, registry.Known,
		log.WithComponent("fallback"), fallback.WithDirectPatterns(directPatterns))

	services, err := service.NewServices(service.Dependencies{
		Provider:  resolutionProvider,
		Fallback:  fallbackSystem,
		Resolver:  keyResolver,
		Storages:  storages,
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// background workers
	var watcher workers.Worker
	if cfg.Cache.WatchFiles {
		w, err := loader.NewWatcher(cfg.Resolver.RootDir, cfg.Resolver.AppsDir, func(appID string) {
			refresh(resolutionProvider, registry, appID, log)
		}, log.WithComponent("watcher"))
		if err != nil {
			log.Error().Err(err).Msg("env file watching disabled")
		} else {
			watcher = w
		}
	}
	background := workers.New(layeredCache, watcher)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		background.Run(ctx)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
	stop()
	wg.Wait()
}

// refresh invalidates what an env file change affects. An empty appID or an
// app not yet known triggers a full refresh, which re-runs discovery.
func refresh(p *provider.Provider, registry *provider.Registry, appID string, log *logger.Logger) {
	if appID == "" || !registry.Contains(appID) {
		if err := p.RefreshAllConfigurations(); err != nil {
			log.Error().Err(err).Msg("error refreshing configurations")
		}
		return
	}

	n, err := p.RefreshAppConfiguration(appID)
	if err != nil {
		log.Error().Err(err).Str("app_id", appID).Msg("error refreshing configuration")
		return
	}
	log.Info().Str("app_id", appID).Int("invalidated", n).Msg("configuration refreshed")
}

// layerConfig overrides the built-in settings of layer with configured
// non-zero values.
func layerConfig(layer cache.Layer, ttl time.Duration, maxEntries int) cache.LayerConfig {
	lc := cache.DefaultLayerConfigs()[layer]
	if ttl > 0 {
		lc.TTL = ttl
	}
	if maxEntries > 0 {
		lc.MaxEntries = maxEntries
	}
	return lc
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
