package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/sessions"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-expense-manager/docs"
	"github.com/sbilibin2017/gw-expense-manager/internal/facades"
	"github.com/sbilibin2017/gw-expense-manager/internal/handlers"
	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-manager/internal/repositories"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-expense-manager API
// @version 1.0.0
// @description Expense management backend: accounts, verification, transactions, contact and admin dashboard
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds every setting of the service.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogFile     string
	ClientURL   string
	CORSOrigin  string
	SwaggerHost string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey    string
	JWTExp          time.Duration
	VerificationExp time.Duration
	ResetExp        time.Duration
	OTPExp          time.Duration
	OTPTombstone    time.Duration
	BcryptCost      int

	BrevoAPIKey   string
	BrevoBaseURL  string
	EmailFrom     string
	EmailFromName string
	SupportEmail  string

	Fast2SMSAPIKey  string
	Fast2SMSBaseURL string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	SessionSecret      string
	SessionSecure      bool

	AuthRateLimit int
}

// parseConfig loads environment variables from a file and returns the
// service configuration. Variables already set in the environment win.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFile = getEnv("APP_LOG_FILE", "")
	cfg.ClientURL = strings.TrimRight(getEnv("CLIENT_URL", "http://localhost:3000"), "/")
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.ClientURL)
	cfg.SwaggerHost = getEnv("SWAGGER_HOST", cfg.AppHost+":"+cfg.AppPort)

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// Kafka config, no brokers disables publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// Tokens and codes
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = getSeconds("JWT_EXP_SECOND", "86400")
	cfg.VerificationExp = getSeconds("VERIFICATION_EXP_SECOND", "86400")
	cfg.ResetExp = getSeconds("RESET_EXP_SECOND", "3600")
	cfg.OTPExp = getSeconds("OTP_EXP_SECOND", "600")
	cfg.OTPTombstone = getSeconds("OTP_TOMBSTONE_SECOND", "60")
	cfg.BcryptCost = getInt("BCRYPT_COST", "10")

	// Providers
	cfg.BrevoAPIKey = getEnv("BREVO_API_KEY", "")
	cfg.BrevoBaseURL = getEnv("BREVO_BASE_URL", "https://api.brevo.com")
	cfg.EmailFrom = getEnv("EMAIL_FROM", "no-reply@localhost")
	cfg.EmailFromName = getEnv("EMAIL_FROM_NAME", "Expense Management System")
	cfg.SupportEmail = getEnv("SUPPORT_EMAIL", cfg.EmailFrom)
	cfg.Fast2SMSAPIKey = getEnv("FAST2SMS_API_KEY", "")
	cfg.Fast2SMSBaseURL = getEnv("FAST2SMS_BASE_URL", "https://www.fast2sms.com")
	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	cfg.GoogleCallbackURL = getEnv("GOOGLE_CALLBACK_URL", "http://localhost:8080/api/v1/users/auth/google/callback")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "my_super_secret_session_key_32b!")
	cfg.SessionSecure = strings.HasPrefix(cfg.ClientURL, "https://")

	cfg.AuthRateLimit = getInt("AUTH_RATE_LIMIT", "20")

	return cfg, err
}

// newSessionStore returns the cookie store holding the OAuth state.
// Cookies are Secure when the client is served over https.
func newSessionStore(cfg config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   cfg.SessionSecure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// run initializes the logger, storage, providers and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithVerificationExpiration(cfg.VerificationExp),
		jwt.WithResetExpiration(cfg.ResetExp),
	)

	// Providers
	mailer := facades.NewBrevoMailFacade(cfg.BrevoBaseURL, cfg.BrevoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	sms := facades.NewFast2SMSFacade(cfg.Fast2SMSBaseURL, cfg.Fast2SMSAPIKey)
	google := facades.NewGoogleOAuthFacade(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)

	sessionStore := newSessionStore(cfg)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	accountReadRepo := repositories.NewAccountReadRepository(db, txGetter)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, txGetter)
	verificationRepo := repositories.NewVerificationTokenRepository(db, txGetter)
	otpRepo := repositories.NewOTPRepository(rdb, cfg.OTPExp, cfg.OTPTombstone)
	phoneRepo := repositories.NewPhoneBindingRepository(db, txGetter)
	transactionReadRepo := repositories.NewTransactionReadRepository(db, txGetter)
	transactionWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	contactRepo := repositories.NewContactRepository(db)
	adminReadRepo := repositories.NewAdminReadRepository(db)
	adminWriteRepo := repositories.NewAdminWriteRepository(db)

	// Initialize services
	svcCfg := services.Config{
		ClientURL:    cfg.ClientURL,
		SupportEmail: cfg.SupportEmail,
		BcryptCost:   cfg.BcryptCost,
	}
	authService := services.NewAuthService(accountReadRepo, accountWriteRepo, verificationRepo, tokens, tokens, mailer, svcCfg)
	passwordService := services.NewPasswordService(accountReadRepo, accountWriteRepo, tokens, mailer, svcCfg)
	otpService := services.NewOTPService(accountReadRepo, accountWriteRepo, otpRepo, phoneRepo, mailer, sms, svcCfg)
	profileService := services.NewProfileService(accountReadRepo, accountWriteRepo)
	transactionService := services.NewTransactionService(transactionWriteRepo, transactionReadRepo, kafkaWriter)
	contactService := services.NewContactService(contactRepo, mailer, svcCfg)
	adminService := services.NewAdminService(adminReadRepo, adminWriteRepo, tokens, mailer, svcCfg)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	tx := middlewares.TxMiddleware(db)
	auth := middlewares.AuthMiddleware(tokens)
	limit := httprate.LimitByIP(cfg.AuthRateLimit, time.Minute)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			// Public routes
			r.Group(func(r chi.Router) {
				r.Use(limit)
				r.With(tx).Post("/register", handlers.NewRegisterHandler(authService))
				r.With(tx).Post("/login", handlers.NewLoginHandler(authService))
				r.Post("/send-otp-email", handlers.NewSendEmailOTPHandler(otpService))
				r.Post("/verify-otp-email/{publicId}", handlers.NewVerifyEmailOTPHandler(otpService))
				r.Post("/send-reset-password-email", handlers.NewSendResetEmailHandler(passwordService))
				r.With(tx).Post("/reset-password/{publicId}/{token}", handlers.NewResetPasswordHandler(passwordService))
				r.Post("/send-otp-phone", handlers.NewSendPhoneOTPHandler(otpService))
				r.Post("/verify-otp-phone", handlers.NewVerifyPhoneOTPHandler(otpService))
			})
			r.With(tx).Get("/email-verification/{publicId}/{token}", handlers.NewVerifyEmailHandler(authService))
			r.Get("/auth/google", handlers.NewGoogleLoginHandler(google, sessionStore))
			r.Get("/auth/google/callback", handlers.NewGoogleCallbackHandler(google, authService, sessionStore, cfg.ClientURL))

			// Protected routes with JWT middleware
			r.Group(func(r chi.Router) {
				r.Use(auth, middlewares.RequireRole(jwt.RoleUser))
				r.Get("/logged-user", handlers.NewLoggedUserHandler(profileService))
				r.With(tx).Post("/update-user-profile", handlers.NewUpdateProfileHandler(profileService))
				r.With(tx).Post("/change-password", handlers.NewChangePasswordHandler(passwordService))
				r.With(limit).Post("/send-phone-otp-profile", handlers.NewSendProfilePhoneOTPHandler(otpService))
				r.With(tx).Post("/verify-phone-otp-profile", handlers.NewVerifyProfilePhoneOTPHandler(otpService))
				r.With(limit).Post("/send-secondary-email-otp", handlers.NewSendSecondaryEmailOTPHandler(otpService))
				r.Post("/verify-secondary-email-otp", handlers.NewVerifySecondaryEmailOTPHandler(otpService))
				r.Post("/remove-secondary-email", handlers.NewRemoveSecondaryEmailHandler(profileService))
			})
		})

		r.Route("/transections", func(r chi.Router) {
			r.Use(auth, middlewares.RequireRole(jwt.RoleUser))
			r.Post("/get-transection", handlers.NewListTransactionsHandler(transactionService))
			r.Get("/get-transection/{id}", handlers.NewGetTransactionHandler(transactionService))
			r.Post("/add-transection", handlers.NewAddTransactionHandler(transactionService))
			r.Post("/edit-transection/{id}", handlers.NewEditTransactionHandler(transactionService))
			r.Post("/delete-transection/{id}", handlers.NewDeleteTransactionHandler(transactionService))
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(limit).Post("/contact-us-message", handlers.NewContactHandler(contactService))
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(limit).Post("/request-access", handlers.NewAdminRequestAccessHandler(adminService))
			r.With(limit).Post("/login", handlers.NewAdminLoginHandler(adminService))
			r.Group(func(r chi.Router) {
				r.Use(auth, middlewares.RequireRole(jwt.RoleAdmin))
				r.Post("/dashboard", handlers.NewAdminDashboardHandler(adminService))
				r.Post("/profile", handlers.NewAdminProfileHandler(adminService))
				r.Put("/update-phone", handlers.NewAdminUpdatePhoneHandler(adminService))
				r.Put("/deactivate", handlers.NewAdminDeactivateHandler(adminService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.SwaggerHost)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
