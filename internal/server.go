package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/repstats/internal/analytics"
	"github.com/2beens/repstats/internal/config"
	"github.com/2beens/repstats/internal/db"
	"github.com/2beens/repstats/internal/middleware"
	"github.com/2beens/repstats/internal/telemetry/metrics"
	"github.com/2beens/repstats/internal/telemetry/tracing"
	"github.com/2beens/repstats/internal/workoutlog"
	"github.com/2beens/repstats/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiSecret         string // required for all mutating requests
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	enricher *workoutlog.Enricher

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	ApiSecret               string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("repstats", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "repstats-backend", rdb)
	if err != nil {
		return nil, err
	}

	mapping, err := workoutlog.LoadMapping(params.Config.ExerciseMappingPath)
	if err != nil {
		return nil, fmt.Errorf("load exercise mapping: %w", err)
	}

	return &Server{
		config:      params.Config,
		apiSecret:   params.ApiSecret,
		versionInfo: params.VersionInfo,
		dbPool:      dbPool,
		enricher:    workoutlog.NewEnricher(mapping),
		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("repstats-router"))

	entriesRepo := workoutlog.NewRepo(s.dbPool)
	analyzer := analytics.NewAnalyzer(entriesRepo)
	resultsCache := analytics.NewResultsCache(s.redisClient)
	refresher := analytics.NewRefresher(analyzer, resultsCache, s.metricsManager)

	entriesHandler := workoutlog.NewHandler(entriesRepo, s.enricher, refresher, s.metricsManager)
	r.HandleFunc("/entries", entriesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-entries")
	r.HandleFunc("/entries", entriesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-entry")
	r.HandleFunc("/entries/count", entriesHandler.HandleCount).Methods("GET", "OPTIONS").Name("count-entries")
	r.HandleFunc("/entries/{id}", entriesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-entry")
	r.HandleFunc("/exercises", entriesHandler.HandleDistinctExercises).Methods("GET", "OPTIONS").Name("list-exercises")

	// rate limit the CSV import to prevent abuse
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	importRouter := r.PathPrefix("/entries/import").Subrouter()
	importRouter.HandleFunc("", entriesHandler.HandleImport).Methods("POST", "OPTIONS").Name("import-entries")
	importRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"entries-import",
		s.config.ImportRateLimitAllowedPerMin,
		s.metricsManager,
	))

	analyticsHandler := analytics.NewHandler(analyzer, resultsCache, refresher)
	r.HandleFunc("/analytics/rest", analyticsHandler.HandleRestIntervals).Methods("GET", "OPTIONS").Name("rest-intervals")
	r.HandleFunc("/analytics/performance", analyticsHandler.HandlePerformance).Methods("GET", "OPTIONS").Name("performance-series")
	r.HandleFunc("/analytics/overview", analyticsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("overview")
	r.HandleFunc("/analytics/refresh", analyticsHandler.HandleRefresh).Methods("POST", "OPTIONS").Name("refresh-analytics")

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
