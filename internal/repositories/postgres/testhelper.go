package postgres

import (
	"database/sql"
	"testing"

	"github.com/asakaida/monban/internal/infrastructure/config"
	"github.com/asakaida/monban/internal/infrastructure/database"
	_ "github.com/lib/pq"
)

// SetupTestDB creates a test database connection and runs migrations
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Initialize test config
	if err := config.InitConfig("test"); err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := pg.RunMigrations("../../../internal/infrastructure/database/migrations/postgres"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return pg.DB
}

// CleanupTestDB closes the database connection and cleans up test data.
// The seeded global root asset survives cleanup; everything else goes.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	cleanups := []string{
		"DELETE FROM rules",
		"DELETE FROM rule_revisions",
		"DELETE FROM assets WHERE name <> 'root'",
		"DELETE FROM user_groups",
	}
	for _, stmt := range cleanups {
		if _, err := db.Exec(stmt); err != nil {
			t.Logf("Warning: cleanup %q failed: %v", stmt, err)
		}
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// insertTestGroup inserts a user group and returns its id.
// parentID 0 means the group is a root.
func insertTestGroup(t *testing.T, db *sql.DB, title string, parentID int64, depth int) int64 {
	t.Helper()

	var parent sql.NullInt64
	if parentID > 0 {
		parent = sql.NullInt64{Int64: parentID, Valid: true}
	}

	var id int64
	err := db.QueryRow(
		`INSERT INTO user_groups (title, parent_id, depth) VALUES ($1, $2, $3) RETURNING id`,
		title, parent, depth,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert group %q: %v", title, err)
	}
	return id
}

// insertTestAsset inserts an asset and returns its id.
// parentID 0 means the asset has no parent.
func insertTestAsset(t *testing.T, db *sql.DB, name, title string, parentID int64) int64 {
	t.Helper()

	var parent sql.NullInt64
	if parentID > 0 {
		parent = sql.NullInt64{Int64: parentID, Valid: true}
	}

	var id int64
	err := db.QueryRow(
		`INSERT INTO assets (name, title, parent_id) VALUES ($1, $2, $3) RETURNING id`,
		name, title, parent,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert asset %q: %v", name, err)
	}
	return id
}

// rootAssetID returns the id of the seeded global root asset
func rootAssetID(t *testing.T, db *sql.DB) int64 {
	t.Helper()

	var id int64
	if err := db.QueryRow(`SELECT id FROM assets WHERE name = 'root'`).Scan(&id); err != nil {
		t.Fatalf("Failed to look up root asset: %v", err)
	}
	return id
}

// countRevisions returns the number of rows in rule_revisions
func countRevisions(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM rule_revisions`).Scan(&n); err != nil {
		t.Fatalf("Failed to count revisions: %v", err)
	}
	return n
}
