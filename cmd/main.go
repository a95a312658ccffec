package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/readleaf/readleaf-server/internal/handlers"
	"github.com/readleaf/readleaf-server/internal/jwt"
	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/middlewares"
	"github.com/readleaf/readleaf-server/internal/repositories"
	"github.com/readleaf/readleaf-server/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/readleaf/readleaf-server/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title readleaf API
// @version 1.0.0
// @description Backend service for users, a book catalog and per-user reading lists
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoDB,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoDB,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExp,
	); err != nil {
		fmt.Fprintf(os.Stderr, "application stopped with error: %v\n", err)
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, MongoDB, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "readleaf")

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "reading-list-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB, Kafka, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURI)
	connectCtx, cancelConnect := context.WithTimeout(ctx, 10*time.Second)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	db := client.Database(mongoDB)

	// Initialize Kafka writer when a broker is configured
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db)
	listReadRepo := repositories.NewReadingListReadRepository(db)
	listWriteRepo := repositories.NewReadingListWriteRepository(db)

	// Ensure indexes
	if err := userWriteRepo.EnsureIndexes(connectCtx); err != nil {
		return fmt.Errorf("failed to ensure user indexes: %w", err)
	}
	if err := bookWriteRepo.EnsureIndexes(connectCtx); err != nil {
		return fmt.Errorf("failed to ensure book indexes: %w", err)
	}
	if err := listWriteRepo.EnsureIndexes(connectCtx); err != nil {
		return fmt.Errorf("failed to ensure reading list indexes: %w", err)
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo)
	listService := services.NewReadingListService(listReadRepo, listWriteRepo, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	saveBookHandler := handlers.NewSaveBookHandler(bookService)
	getBooksHandler := handlers.NewGetBooksHandler(bookService)
	getBookHandler := handlers.NewGetBookHandler(bookService)
	saveListHandler := handlers.NewSaveReadingListHandler(listService)
	getListHandler := handlers.NewGetReadingListHandler(listService)
	updateListHandler := handlers.NewUpdateReadingListHandler(listService)
	deleteListHandler := handlers.NewDeleteReadingListHandler(listService)
	deleteBookHandler := handlers.NewDeleteBookFromReadingListHandler(listService)

	authMiddleware := middlewares.AuthMiddleware(tokens)
	tokenCheckMiddleware := middlewares.TokenCheckMiddleware(tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.NotFound(handlers.NotFoundHandler)

	// Public routes
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
	})

	// Book routes
	r.Route("/api/books", func(r chi.Router) {
		r.With(authMiddleware).Post("/saveBooks", saveBookHandler)
		r.With(authMiddleware).Get("/getAllBooks", getBooksHandler)
		r.With(tokenCheckMiddleware).Get("/getBookById/{id}", getBookHandler)
	})

	// Reading list routes
	r.Route("/api/readingList", func(r chi.Router) {
		r.Use(tokenCheckMiddleware)
		r.Post("/saveReadingList", saveListHandler)
		r.Get("/getReadingListbyId", getListHandler)
		r.Post("/updateReadingList", updateListHandler)
		r.Post("/deleteReadingList", deleteListHandler)
		r.Post("/deleteBookFromReadingList", deleteBookHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
