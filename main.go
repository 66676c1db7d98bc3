package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/IliaW/cloak-api/config"
	docs "github.com/IliaW/cloak-api/docs"
	"github.com/IliaW/cloak-api/handler"
	cacheClient "github.com/IliaW/cloak-api/internal/cache"
	"github.com/IliaW/cloak-api/internal/cloak"
	"github.com/IliaW/cloak-api/internal/mlscore"
	"github.com/IliaW/cloak-api/internal/persistence"
	"github.com/IliaW/cloak-api/internal/store"
	"github.com/IliaW/cloak-api/internal/telemetry"
	"github.com/IliaW/cloak-api/internal/turnstile"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	cfg          *config.Config
	fpCache      cacheClient.FingerprintCache
	db           *sql.DB
	domainRepo   persistence.DomainStorage
	campaignRepo persistence.CampaignStorage
	linkRepo     persistence.LinkStorage
	snapshots    *store.SnapshotStore
	httpClient   *http.Client
	metrics      *telemetry.MetricsProvider
)

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg = config.MustLoad()
	setupLogger()
	metrics = telemetry.SetupMetrics(context.Background(), cfg)
	defer metrics.Close()
	db = setupDatabase()
	defer closeDatabase()
	domainRepo = persistence.NewDomainRepository(db)
	campaignRepo = persistence.NewCampaignRepository(db)
	linkRepo = persistence.NewLinkRepository(db)
	snapshots = store.NewSnapshotStore(domainRepo, campaignRepo, linkRepo)
	if err := snapshots.Refresh(); err != nil {
		slog.Error("failed to load initial configuration snapshot.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	fpCache = cacheClient.NewMemcachedClient(cfg.CacheSettings)
	defer fpCache.Close()
	httpClient = setupHttpClient()
	slog.Info("starting application on port "+cfg.Port, slog.String("env", cfg.Env))

	port := fmt.Sprintf(":%v", cfg.Port)
	srv := &http.Server{
		Addr:    port,
		Handler: httpServer().Handler(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			slog.Error("listen:", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("stopping server...")
	ctxT, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctxT)
	if errors.Is(err, context.DeadlineExceeded) {
		slog.Error("shutdown timeout exceeded")
		os.Exit(1)
	}
	slog.Info("server stopped.")
}

func httpServer() *gin.Engine {
	setupGinMod()
	r := gin.New()
	r.UseH2C = true
	r.Use(gin.Recovery())
	r.Use(setCORS())
	r.Use(limitBodySize())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{SkipPaths: []string{"/ping", "/swagger"}}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	resolver := cloak.NewResolver(snapshots, cfg.CloakSettings.MlBotThreshold)
	scorer := mlscore.NewHttpScorer(cfg.ScorerSettings, httpClient)
	verifier := turnstile.NewClient(cfg.TurnstileSettings, httpClient)

	cloakHandler := handler.NewCloakHandler(cfg, snapshots, resolver, fpCache, scorer, verifier, metrics.ApiMetrics)
	campaignHandler := handler.NewCampaignHandler(campaignRepo, domainRepo, snapshots, metrics.ApiMetrics)
	domainHandler := handler.NewDomainHandler(domainRepo, snapshots, metrics.ApiMetrics)
	linkHandler := handler.NewLinkHandler(linkRepo, snapshots, metrics.ApiMetrics)
	simHandler := handler.NewSimulationHandler(cloak.NewSimulator(resolver), metrics.ApiMetrics)

	public := r.Group(cfg.RoutesUrlPath)
	public.POST("/route_decision/route", cloakHandler.RouteDecision)
	public.POST("/worker-logic/validate-for-worker", cloakHandler.ValidateForWorker)
	public.POST("/turnstile/validate", cloakHandler.ValidateTurnstile)
	public.POST("/admin/simulate_request", simHandler.Simulate)

	protected := r.Group(cfg.RoutesUrlPath)
	protected.Use(bearerTokenCheck())
	protected.POST("/api/v1/cloaking/decide-cloak", cloakHandler.DecideCloak)
	protected.POST("/api/v1/cloaking/campaigns", campaignHandler.Create)
	protected.GET("/api/v1/cloaking/campaigns/:domain", campaignHandler.ListByDomain)
	protected.PUT("/api/v1/cloaking/campaigns/:domain/:path", campaignHandler.Update)
	protected.DELETE("/api/v1/cloaking/campaigns/:domain/:path", campaignHandler.Delete)
	protected.POST("/update-domain-config", domainHandler.Upsert)
	protected.GET("/get-domain-configs", domainHandler.GetAll)
	protected.DELETE("/delete-domain-config/:domain", domainHandler.Delete)
	protected.POST("/links", linkHandler.Create)
	protected.GET("/links", linkHandler.List)
	protected.GET("/links/:link_id/filters", linkHandler.GetFilters)
	protected.PUT("/links/:link_id/filters", linkHandler.UpdateFilters)

	docs.SwaggerInfo.Title = fmt.Sprintf("Cloak API (%s)", cfg.ServiceName)
	docs.SwaggerInfo.Description = "This API decides which page variant to serve per request and manages cloaking configuration."
	docs.SwaggerInfo.Version = cfg.Version
	docs.SwaggerInfo.BasePath = cfg.RoutesUrlPath
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound,
			gin.H{"message": fmt.Sprintf("no route found for %s %s", c.Request.Method, c.Request.URL)})
	})

	return r
}

func setCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { //allow all origins and echoes back the caller domain
			return true
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-Forwarded-For",
			"X-CSRF-Token", "X-Max"},
		AllowCredentials: true,
		MaxAge:           cfg.CorsMaxAgeHours,
	})
}

func limitBodySize() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBodySize*1024*1024)
	}
}

func bearerTokenCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			return
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header must be a Bearer token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.AuthSettings.JwtSecret), nil
		}, jwt.WithIssuer(cfg.AuthSettings.Issuer), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token subject is missing"})
			return
		}
		c.Set("subject", sub)

		c.Next()
	}
}

func setupLogger() *slog.Logger {
	envLogLevel := strings.ToLower(cfg.LogLevel)
	var slogLevel slog.Level
	err := slogLevel.UnmarshalText([]byte(envLogLevel))
	if err != nil {
		log.Printf("encountenred log level: '%s'. The package does not support custom log levels", envLogLevel)
		slogLevel = slog.LevelDebug
	}
	log.Printf("slog level overwritten to '%v'", slogLevel)
	slog.SetLogLoggerLevel(slogLevel)

	replaceAttrs := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			source := a.Value.Any().(*slog.Source)
			source.File = filepath.Base(source.File)
		}
		return a
	}

	var logger *slog.Logger
	if strings.ToLower(cfg.LogType) == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource:   true,
			Level:       slogLevel,
			ReplaceAttr: replaceAttrs}))
	} else {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			AddSource:   true,
			Level:       slogLevel,
			ReplaceAttr: replaceAttrs,
			NoColor: func() bool {
				if cfg.Env == "local" {
					return false
				}
				return true
			}()}))
	}

	slog.SetDefault(logger)
	logger.Debug("debug messages are enabled.")

	return logger
}

func setupGinMod() {
	env := strings.ToLower(cfg.Env)
	if env == "dev" || env == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}

func setupDatabase() *sql.DB {
	slog.Info("connecting to the database...")
	connStr := fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		cfg.DbSettings.User,
		cfg.DbSettings.Password,
		cfg.DbSettings.Host,
		cfg.DbSettings.Port,
		cfg.DbSettings.Name,
	)
	database, err := sql.Open("postgres", connStr)
	if err != nil {
		slog.Error("failed to establish database connection.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	database.SetConnMaxLifetime(cfg.DbSettings.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.DbSettings.MaxOpenConns)
	database.SetMaxIdleConns(cfg.DbSettings.MaxIdleConns)

	maxRetry := 6
	for i := 1; i <= maxRetry; i++ {
		slog.Info("ping the database.", slog.String("attempt", fmt.Sprintf("%d/%d", i, maxRetry)))
		pingErr := database.Ping()
		if pingErr != nil {
			slog.Error("not responding.", slog.String("err", pingErr.Error()))
			if i == maxRetry {
				slog.Error("failed to establish database connection.")
				os.Exit(1)
			}
			slog.Info(fmt.Sprintf("wait %d seconds", 5*i))
			time.Sleep(time.Duration(5*i) * time.Second)
		} else {
			break
		}
	}
	slog.Info("connected to the database!")

	return database
}

func closeDatabase() {
	slog.Info("closing database connection.")
	err := db.Close()
	if err != nil {
		slog.Error("failed to close database connection.", slog.String("err", err.Error()))
	}
}

func setupHttpClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        cfg.HttpClientSettings.MaxIdleConnections,
		MaxIdleConnsPerHost: cfg.HttpClientSettings.MaxIdleConnectionsPerHost,
		MaxConnsPerHost:     cfg.HttpClientSettings.MaxConnectionsPerHost,
		IdleConnTimeout:     cfg.HttpClientSettings.IdleConnectionTimeout,
		TLSHandshakeTimeout: cfg.HttpClientSettings.TlsHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   cfg.HttpClientSettings.DialTimeout,
			KeepAlive: cfg.HttpClientSettings.DialKeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.HttpClientSettings.TlsInsecureSkipVerify,
		},
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.HttpClientSettings.RequestTimeout,
	}
}
