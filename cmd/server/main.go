package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asakaida/monban/internal/handlers"
	infracache "github.com/asakaida/monban/internal/infrastructure/cache"
	"github.com/asakaida/monban/internal/infrastructure/config"
	"github.com/asakaida/monban/internal/infrastructure/database"
	"github.com/asakaida/monban/internal/infrastructure/metrics"
	"github.com/asakaida/monban/internal/repositories/postgres"
	"github.com/asakaida/monban/internal/services/catalog"
	"github.com/asakaida/monban/internal/services/resolver"
	"github.com/asakaida/monban/pkg/cache/memorycache"
	pb "github.com/asakaida/monban/proto/monban/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const (
	defaultEnv  = "dev"
	defaultPort = "50052"
)

func main() {
	// Get environment from ENV variable or use default
	env := os.Getenv("ENV")
	if env == "" {
		env = defaultEnv
	}

	// Get port from PORT variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	// Initialize configuration
	if err := config.InitConfig(env); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pg.Close()

	log.Printf("Connected to database: %s@%s:%d/%s",
		cfg.Database.User,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database)

	// Initialize repositories
	groupRepo := postgres.NewPostgresGroupRepository(pg.DB)
	ruleRepo := postgres.NewPostgresRuleRepository(pg.DB)
	assetRepo := postgres.NewPostgresAssetRepository(pg.DB)

	// Initialize services
	actionCatalog := catalog.New()
	resolverService := resolver.NewResolver(groupRepo, ruleRepo, assetRepo, cfg.Resolver.SuperAdminAction)

	collector := metrics.NewCollector()
	exporter := metrics.NewPrometheusExporter(collector)

	// Matrix resolution with optional revision-keyed result caching
	var matrixService *resolver.Matrix
	var revisionManager *infracache.RevisionManager
	if cfg.Cache.Enabled {
		matrixCache, err := memorycache.New(&memorycache.Config{
			MaxSizeBytes:  cfg.Cache.MaxMemoryBytes,
			DefaultTTL:    time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
			EnableMetrics: cfg.Cache.Metrics,
		})
		if err != nil {
			log.Fatalf("Failed to create matrix cache: %v", err)
		}
		defer matrixCache.Close()
		collector.SetCache(matrixCache)

		revisionTTL := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
		revisionManager = infracache.NewRevisionManager(pg.DB, cfg.Database.ConnectionString(), revisionTTL)
		if err := revisionManager.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start revision manager: %v", err)
		}
		defer revisionManager.Stop()

		matrixService = resolver.NewMatrixWithCache(
			resolverService,
			actionCatalog,
			matrixCache,
			revisionManager,
			time.Duration(cfg.Cache.TTLMinutes)*time.Minute,
		)
		log.Printf("Matrix cache enabled: %d bytes, TTL %dm", cfg.Cache.MaxMemoryBytes, cfg.Cache.TTLMinutes)
	} else {
		matrixService = resolver.NewMatrix(resolverService, actionCatalog)
	}

	// Initialize the Access handler
	accessHandler := handlers.NewAccessHandler(
		resolverService,
		matrixService,
		actionCatalog,
		groupRepo,
		ruleRepo,
		assetRepo,
	)

	// Create gRPC server with metrics interceptor
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(metrics.UnaryServerInterceptor(collector, exporter)),
	)
	pb.RegisterAccessServer(grpcServer, accessHandler)

	// Register reflection service (for grpcurl, etc.)
	reflection.Register(grpcServer)

	// Serve Prometheus metrics over HTTP
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	// Refresh exporter gauges periodically
	gaugeTicker := time.NewTicker(10 * time.Second)
	defer gaugeTicker.Stop()
	go func() {
		for range gaugeTicker.C {
			exporter.Update()
		}
	}()

	// Start listening
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	log.Printf("gRPC server listening on :%s (metrics on :%d)", port, cfg.Server.MetricsPort)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			serverErrors <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
		log.Println("Initiating graceful shutdown...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Channel to notify when graceful stop completes
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		// Wait for graceful stop or timeout
		select {
		case <-stopped:
			log.Println("Server stopped gracefully")
		case <-shutdownCtx.Done():
			log.Println("Shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		}

		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error stopping metrics server: %v", err)
		}

		if revisionManager != nil {
			if err := revisionManager.Stop(); err != nil {
				log.Printf("Error stopping revision manager: %v", err)
			}
		}

		// Close database connection
		if err := pg.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}

		log.Println("Shutdown complete")
	}
}
