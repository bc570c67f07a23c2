package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/sportsline-dashboard/internal/config"
	"github.com/riskibarqy/sportsline-dashboard/internal/display"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	cacherepo "github.com/riskibarqy/sportsline-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sportsline-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sportsline-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sportsline-dashboard/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/sportsline-dashboard/internal/platform/cache"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsline-dashboard/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	seasons season.Repository
	squads  squad.Repository
	players player.Repository
	stats   playerstats.Repository
	games   game.Repository
}

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup releases the database pool and is safe to call more than once.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CacheEnabled {
		repos = withCache(repos, basecache.NewStore(cfg.CacheTTL))
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	catalog := league.DefaultCatalog()
	handler := httpapi.NewHandler(
		usecase.NewLeagueService(catalog),
		usecase.NewRosterService(catalog, repos.seasons, repos.squads),
		usecase.NewProfileService(catalog, repos.players, repos.squads, repos.stats, logger),
		usecase.NewGameService(catalog, repos.games, cfg.LatestResultsWorkers),
		display.NewFormatter(display.ParseLocale(cfg.DisplayLocale), cfg.DisplayTimezone),
		buildPhotoResolver(cfg, logger),
		logger,
	)

	var metrics *httpapi.Metrics
	if cfg.MetricsEnabled {
		metrics = httpapi.NewMetrics()
	}
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
		Metrics:            metrics,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeDB, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(), error) {
	if cfg.DBDisabled {
		logger.Warn("database disabled, serving in-memory seed data")
		store := memory.NewStore(memory.SeedDataset(time.Now()))
		return repositories{
			seasons: memory.NewSeasonRepository(store),
			squads:  memory.NewSquadRepository(store),
			players: memory.NewPlayerRepository(store),
			stats:   memory.NewPlayerStatsRepository(store),
			games:   memory.NewGameRepository(store),
		}, func() {}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	var once sync.Once
	closeDB := func() {
		once.Do(func() {
			if err := db.Close(); err != nil {
				logger.Error("close database", "error", err)
			}
		})
	}

	logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
	return repositories{
		seasons: postgres.NewSeasonRepository(db),
		squads:  postgres.NewSquadRepository(db),
		players: postgres.NewPlayerRepository(db),
		stats:   postgres.NewPlayerStatsRepository(db),
		games:   postgres.NewGameRepository(db),
	}, closeDB, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("database url cannot be empty when DB_DISABLED=false")
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", redactDBURL(cfg.DBURL), err)
	}
	otelsql.ReportDBStatsMetrics(db.DB)

	return db, nil
}

func withCache(repos repositories, store *basecache.Store) repositories {
	return repositories{
		seasons: cacherepo.NewSeasonRepository(repos.seasons, store),
		squads:  cacherepo.NewSquadRepository(repos.squads, store),
		players: cacherepo.NewPlayerRepository(repos.players, store),
		stats:   cacherepo.NewPlayerStatsRepository(repos.stats, store),
		games:   cacherepo.NewGameRepository(repos.games, store),
	}
}

func buildPhotoResolver(cfg config.Config, logger *logging.Logger) *display.PhotoResolver {
	if !cfg.PhotoProbeEnabled {
		return display.NewPhotoResolver(nil, 0, logger)
	}

	breakerCfg := resilience.DefaultCircuitBreakerConfig()
	breakerCfg.Enabled = cfg.PhotoCircuitEnabled
	if cfg.PhotoCircuitFailures > 0 {
		breakerCfg.FailureThreshold = cfg.PhotoCircuitFailures
	}
	if cfg.PhotoCircuitOpenTimeout > 0 {
		breakerCfg.OpenTimeout = cfg.PhotoCircuitOpenTimeout
	}

	prober := display.NewHTTPPhotoProber(cfg.PhotoProbeTimeout, breakerCfg)
	prober.OnBreakerStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("photo probe circuit changed", "from", string(from), "to", string(to))
	})
	return display.NewPhotoResolver(prober, cfg.PhotoProbeCacheTTL, logger)
}
