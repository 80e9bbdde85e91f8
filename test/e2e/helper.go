package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asakaida/monban/internal/handlers"
	"github.com/asakaida/monban/internal/infrastructure/config"
	"github.com/asakaida/monban/internal/infrastructure/database"
	"github.com/asakaida/monban/internal/repositories/postgres"
	"github.com/asakaida/monban/internal/services/catalog"
	"github.com/asakaida/monban/internal/services/resolver"
	pb "github.com/asakaida/monban/proto/monban/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// E2ETestServer represents an E2E test server
type E2ETestServer struct {
	Server       *grpc.Server
	AccessClient pb.AccessClient
	Conn         *grpc.ClientConn
	DB           *sql.DB
	Listener     *bufconn.Listener
	cancel       context.CancelFunc
}

// SetupE2ETest sets up an E2E test environment: a test database with
// migrations applied and the Access service served over bufconn.
func SetupE2ETest(t *testing.T) *E2ETestServer {
	t.Helper()

	// Initialize config for test environment
	config.InitConfig("test")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Connect to test database
	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations (use absolute path)
	projectRoot, err := findProjectRoot()
	if err != nil {
		t.Fatalf("failed to find project root: %v", err)
	}
	migrationsPath := projectRoot + "/internal/infrastructure/database/migrations/postgres"
	if err := pg.RunMigrations(migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Clean up existing data
	cleanupDatabase(t, pg.DB)

	// Initialize repositories
	groupRepo := postgres.NewPostgresGroupRepository(pg.DB)
	ruleRepo := postgres.NewPostgresRuleRepository(pg.DB)
	assetRepo := postgres.NewPostgresAssetRepository(pg.DB)

	// Initialize services
	actionCatalog := catalog.New()
	resolverService := resolver.NewResolver(groupRepo, ruleRepo, assetRepo, cfg.Resolver.SuperAdminAction)
	matrixService := resolver.NewMatrix(resolverService, actionCatalog)

	accessHandler := handlers.NewAccessHandler(
		resolverService,
		matrixService,
		actionCatalog,
		groupRepo,
		ruleRepo,
		assetRepo,
	)

	// Create in-memory gRPC server with bufconn
	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	pb.RegisterAccessServer(server, accessHandler)

	// Start server in background
	_, cancel := context.WithCancel(context.Background())
	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	// Create client connection
	bufDialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	conn, err := grpc.NewClient(
		"passthrough://bufconn",
		grpc.WithContextDialer(bufDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cancel()
		t.Fatalf("failed to create client connection: %v", err)
	}

	return &E2ETestServer{
		Server:       server,
		AccessClient: pb.NewAccessClient(conn),
		Conn:         conn,
		DB:           pg.DB,
		Listener:     listener,
		cancel:       cancel,
	}
}

// Teardown cleans up the E2E test environment
func (e *E2ETestServer) Teardown(t *testing.T) {
	t.Helper()

	if e.Conn != nil {
		e.Conn.Close()
	}
	if e.Server != nil {
		e.Server.Stop()
	}
	if e.Listener != nil {
		e.Listener.Close()
	}
	if e.cancel != nil {
		e.cancel()
	}
	if e.DB != nil {
		cleanupDatabase(t, e.DB)
		e.DB.Close()
	}
}

// cleanupDatabase removes all data from the test database except the
// seeded global root asset
func cleanupDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Delete in correct order due to foreign key constraints
	cleanups := []string{
		"DELETE FROM rules",
		"DELETE FROM rule_revisions",
		"DELETE FROM assets WHERE name <> 'root'",
		"DELETE FROM user_groups",
	}
	for _, stmt := range cleanups {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Logf("warning: cleanup %q failed: %v", stmt, err)
		}
	}
}

// MustInsertGroup inserts a user group and returns its id
func (e *E2ETestServer) MustInsertGroup(t *testing.T, title string, parentID int64, depth int) int64 {
	t.Helper()

	var parent sql.NullInt64
	if parentID > 0 {
		parent = sql.NullInt64{Int64: parentID, Valid: true}
	}

	var id int64
	err := e.DB.QueryRow(
		`INSERT INTO user_groups (title, parent_id, depth) VALUES ($1, $2, $3) RETURNING id`,
		title, parent, depth,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert group %q: %v", title, err)
	}
	return id
}

// MustInsertAsset inserts an asset and returns its id
func (e *E2ETestServer) MustInsertAsset(t *testing.T, name, title string, parentID int64) int64 {
	t.Helper()

	var parent sql.NullInt64
	if parentID > 0 {
		parent = sql.NullInt64{Int64: parentID, Valid: true}
	}

	var id int64
	err := e.DB.QueryRow(
		`INSERT INTO assets (name, title, parent_id) VALUES ($1, $2, $3) RETURNING id`,
		name, title, parent,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert asset %q: %v", name, err)
	}
	return id
}

// RootAssetID returns the id of the seeded global root asset
func (e *E2ETestServer) RootAssetID(t *testing.T) int64 {
	t.Helper()

	var id int64
	if err := e.DB.QueryRow(`SELECT id FROM assets WHERE name = 'root'`).Scan(&id); err != nil {
		t.Fatalf("failed to look up root asset: %v", err)
	}
	return id
}

// findProjectRoot walks up from the working directory until go.mod is found
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
