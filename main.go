package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/oyenscilik/cms-admin/src/apiclient"
	"github.com/oyenscilik/cms-admin/src/cache"
	"github.com/oyenscilik/cms-admin/src/config"
	"github.com/oyenscilik/cms-admin/src/gateway"
	"github.com/oyenscilik/cms-admin/src/handlers"
	"github.com/oyenscilik/cms-admin/src/logging"
	"github.com/oyenscilik/cms-admin/src/middleware"
	"github.com/oyenscilik/cms-admin/src/models"
	"github.com/oyenscilik/cms-admin/src/session"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env if present; real env vars take precedence
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("api_base_url", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Session store: a single operator console, so one process-wide session
	// persisted to disk. A restart picks the login back up.
	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to resolve session file path")
		}
	}
	sessions, err := session.NewFileStore(sessionPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session store")
	}
	log.Info().Str("path", sessionPath).Msg("session store ready")

	client := apiclient.New(cfg.APIBaseURL, sessions)

	// Gateways
	authGW := gateway.NewAuthGateway(client)
	adminsGW := gateway.NewAdminUsersGateway(client)
	lettersGW := gateway.NewLettersGateway(client)
	numbersGW := gateway.NewNumbersGateway(client)
	animalsGW := gateway.NewAnimalsGateway(client)
	statsGW := gateway.NewStatsGateway(client)

	// A restored session may hold a token the API has since expired. Validate
	// it up front; a 401 tears the session down and the first page load lands
	// on the login screen instead of a broken dashboard.
	if sessions.IsAuthenticated() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if user, err := authGW.Me(ctx); err != nil {
				log.Warn().Err(err).Msg("restored session validation failed")
			} else {
				log.Info().Str("email", user.Email).Msg("restored session validated")
			}
		}()
	}

	// Cache entries, one per resource list plus the stat queries
	lettersQ := cache.NewQuery(models.KeyLetters, lettersGW.List)
	numbersQ := cache.NewQuery(models.KeyNumbers, numbersGW.List)
	animalsQ := cache.NewQuery(models.KeyAnimals, animalsGW.List)
	adminsQ := cache.NewQuery(models.KeyAdmins, adminsGW.List)
	statsQ := cache.NewQuery(models.KeyStats, func(ctx context.Context) (models.DashboardStats, error) {
		s, err := statsGW.Dashboard(ctx)
		if err != nil {
			return models.DashboardStats{}, err
		}
		return *s, nil
	})
	activityQ := cache.NewQuery(models.KeyActivity, statsGW.RecentActivity)
	learnersQ := cache.NewQuery(models.KeyLearners, statsGW.TopLearners)

	caches := cache.NewRegistry()
	caches.Register(lettersQ.Key(), lettersQ)
	caches.Register(numbersQ.Key(), numbersQ)
	caches.Register(animalsQ.Key(), animalsQ)
	caches.Register(adminsQ.Key(), adminsQ)

	// The stat figures go stale on their own, not through mutations, so they
	// refresh on a timer instead of registry invalidation.
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	statsQ.AutoRefresh(refreshCtx, cfg.StatsRefresh)
	activityQ.AutoRefresh(refreshCtx, cfg.StatsRefresh)
	learnersQ.AutoRefresh(refreshCtx, cfg.StatsRefresh)

	flashes := handlers.NewFlashes(cfg.CookieSecret)

	// Handlers
	authHandler := handlers.NewAuthHandler(authGW, sessions, flashes)
	dashboardHandler := handlers.NewDashboardHandler(lettersQ, numbersQ, animalsQ, adminsQ, statsQ, activityQ, learnersQ, flashes)
	lettersHandler := handlers.NewLettersHandler(lettersGW, lettersQ, caches, flashes)
	numbersHandler := handlers.NewNumbersHandler(numbersGW, numbersQ, caches, flashes)
	animalsHandler := handlers.NewAnimalsHandler(animalsGW, animalsQ, caches, flashes)
	adminsHandler := handlers.NewAdminsHandler(adminsGW, adminsQ, caches, flashes)
	healthHandler := handlers.NewHealthHandler(client)

	// Create Gin router
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(gin.Recovery())

	if cfg.AllowedOrigins != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.AllowedOrigins},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	tmpl, err := template.ParseGlob(cfg.TemplatesPath + "/*.tmpl")
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.TemplatesPath).Msg("failed to parse templates")
	}
	router.SetHTMLTemplate(tmpl)

	setupRoutes(router, sessions, authHandler, dashboardHandler, lettersHandler, numbersHandler, animalsHandler, adminsHandler, healthHandler)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	sessions session.Store,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	lettersHandler *handlers.LettersHandler,
	numbersHandler *handlers.NumbersHandler,
	animalsHandler *handlers.AnimalsHandler,
	adminsHandler *handlers.AdminsHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.GET("/", func(c *gin.Context) {
		if sessions.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
	})

	router.GET("/healthz", healthHandler.HandleHealth)

	// Login attempts are throttled per IP
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login",
		middleware.NewLoginRateLimitMiddleware(middleware.RateLimitConfig{
			RequestsPerMinute: 5,
			Burst:             3,
		}),
		authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	// Everything under /dashboard requires an active session
	dash := router.Group("/dashboard")
	dash.Use(middleware.RequireAuth(sessions))
	{
		dash.GET("", dashboardHandler.Show)

		dash.GET("/letters", lettersHandler.Show)
		dash.POST("/letters", lettersHandler.Create)
		dash.POST("/letters/:id/update", lettersHandler.Update)
		dash.POST("/letters/:id/delete", lettersHandler.Delete)

		dash.GET("/numbers", numbersHandler.Show)
		dash.POST("/numbers", numbersHandler.Create)
		dash.POST("/numbers/:id/update", numbersHandler.Update)
		dash.POST("/numbers/:id/delete", numbersHandler.Delete)

		dash.GET("/animals", animalsHandler.Show)
		dash.POST("/animals", animalsHandler.Create)
		dash.POST("/animals/:id/update", animalsHandler.Update)
		dash.POST("/animals/:id/delete", animalsHandler.Delete)

		dash.GET("/admins", adminsHandler.Show)
		dash.POST("/admins", adminsHandler.Create)
		dash.POST("/admins/:id/update", adminsHandler.Update)
		dash.POST("/admins/:id/delete", adminsHandler.Delete)
	}
}
