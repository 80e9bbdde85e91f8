package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/asakaida/monban/internal/repositories/postgres"
	"github.com/lib/pq"
)

// RevisionProvider provides the current rules revision for cache keys.
// Cached resolution results keyed by revision become unreachable the moment
// a rule write bumps it, which is the whole invalidation strategy.
type RevisionProvider interface {
	Current(ctx context.Context) (string, error)
}

// RevisionManager tracks the rules revision across distributed instances.
// It uses PostgreSQL LISTEN/NOTIFY for instant invalidation when rules
// change, with a TTL-based refresh from the database as fallback.
type RevisionManager struct {
	mu          sync.RWMutex
	current     string
	db          *sql.DB
	refreshTTL  time.Duration
	lastRefresh time.Time
	listener    *pq.Listener
	connStr     string
	stopCh      chan struct{}
	stopped     bool
}

// NewRevisionManager creates a new RevisionManager.
// connStr is the PostgreSQL connection string for LISTEN/NOTIFY.
// refreshTTL is the fallback interval for refreshing the revision from DB.
func NewRevisionManager(db *sql.DB, connStr string, refreshTTL time.Duration) *RevisionManager {
	return &RevisionManager{
		db:         db,
		connStr:    connStr,
		refreshTTL: refreshTTL,
		stopCh:     make(chan struct{}),
	}
}

// Start fetches the initial revision and starts the LISTEN/NOTIFY listener
func (m *RevisionManager) Start(ctx context.Context) error {
	revision, err := m.fetchLatestRevision(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch initial revision: %w", err)
	}

	m.mu.Lock()
	m.current = revision
	m.lastRefresh = time.Now()
	m.mu.Unlock()

	if err := m.startListener(); err != nil {
		return fmt.Errorf("failed to start listener: %w", err)
	}

	return nil
}

// Stop stops the RevisionManager and cleans up resources
func (m *RevisionManager) Stop() error {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	m.stopped = true
	close(m.stopCh)
	m.mu.Unlock()

	if m.listener != nil {
		return m.listener.Close()
	}
	return nil
}

// Current returns the current rules revision.
// If the cached value is stale (older than refreshTTL), it refreshes from
// the database.
func (m *RevisionManager) Current(ctx context.Context) (string, error) {
	m.mu.RLock()
	revision := m.current
	needsRefresh := time.Since(m.lastRefresh) > m.refreshTTL
	m.mu.RUnlock()

	// If db is nil (testing mode), just return the stored revision
	if m.db == nil {
		return revision, nil
	}

	if needsRefresh || revision == "" {
		return m.refreshFromDB(ctx)
	}

	return revision, nil
}

// SetRevision manually sets the current revision.
// This is primarily used for testing.
func (m *RevisionManager) SetRevision(revision string) {
	m.mu.Lock()
	m.current = revision
	m.lastRefresh = time.Now()
	m.mu.Unlock()
}

// refreshFromDB fetches the latest revision from the database and caches it
func (m *RevisionManager) refreshFromDB(ctx context.Context) (string, error) {
	revision, err := m.fetchLatestRevision(ctx)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.current = revision
	m.lastRefresh = time.Now()
	m.mu.Unlock()

	return revision, nil
}

// fetchLatestRevision fetches the newest rule revision id from the database
func (m *RevisionManager) fetchLatestRevision(ctx context.Context) (string, error) {
	var revision string
	err := m.db.QueryRowContext(ctx, `
		SELECT id::text
		FROM rule_revisions
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&revision)

	if err == sql.ErrNoRows {
		// No rule writes yet, return empty revision
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest revision: %w", err)
	}

	return revision, nil
}

// startListener starts the PostgreSQL LISTEN/NOTIFY listener
func (m *RevisionManager) startListener() error {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			// Log error but don't fail - we have TTL fallback
			fmt.Printf("RevisionManager listener error: %v\n", err)
		}
	}

	m.listener = pq.NewListener(m.connStr, 10*time.Second, time.Minute, reportProblem)

	if err := m.listener.Listen(postgres.RevisionChannel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", postgres.RevisionChannel, err)
	}

	go m.handleNotifications()

	return nil
}

// handleNotifications processes incoming NOTIFY events
func (m *RevisionManager) handleNotifications() {
	for {
		select {
		case <-m.stopCh:
			return
		case notification := <-m.listener.Notify:
			if notification == nil {
				// Connection lost, listener will reconnect automatically
				continue
			}

			// The payload is the new revision id
			m.mu.Lock()
			m.current = notification.Extra
			m.lastRefresh = time.Now()
			m.mu.Unlock()
		case <-time.After(90 * time.Second):
			// Periodic ping to keep connection alive
			go func() {
				if err := m.listener.Ping(); err != nil {
					fmt.Printf("RevisionManager ping error: %v\n", err)
				}
			}()
		}
	}
}
