package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/repositories"
)

// PostgresGroupRepository implements GroupRepository using PostgreSQL
type PostgresGroupRepository struct {
	db *sql.DB
}

// NewPostgresGroupRepository creates a new PostgreSQL group repository
func NewPostgresGroupRepository(db *sql.DB) repositories.GroupRepository {
	return &PostgresGroupRepository{db: db}
}

// ListGroups returns all groups in tree order (parents before children).
// Ordering by (depth, id) keeps every parent ahead of its children without
// requiring a nested-set encoding.
func (r *PostgresGroupRepository) ListGroups(ctx context.Context) ([]*entities.Group, error) {
	query := `
		SELECT id, title, COALESCE(parent_id, 0), depth
		FROM user_groups
		ORDER BY depth ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*entities.Group
	for rows.Next() {
		g := &entities.Group{}
		if err := rows.Scan(&g.ID, &g.Title, &g.ParentID, &g.Depth); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}
