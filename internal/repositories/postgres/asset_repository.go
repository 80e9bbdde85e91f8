package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/repositories"
)

// PostgresAssetRepository implements AssetRepository using PostgreSQL
type PostgresAssetRepository struct {
	db *sql.DB
}

// NewPostgresAssetRepository creates a new PostgreSQL asset repository
func NewPostgresAssetRepository(db *sql.DB) repositories.AssetRepository {
	return &PostgresAssetRepository{db: db}
}

// AncestryChain returns the asset ids from the root down to assetID, root first.
// The walk is bounded by the asset count so a corrupted parent chain surfaces
// as TreeIntegrityError instead of looping forever.
func (r *PostgresAssetRepository) AncestryChain(ctx context.Context, assetID int64) ([]int64, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count assets: %w", err)
	}

	// Walk leaf-first. The first lookup doubles as the existence check.
	chain := make([]int64, 0, 4)
	current := assetID
	for {
		var parentID sql.NullInt64
		err := r.db.QueryRowContext(ctx,
			`SELECT parent_id FROM assets WHERE id = $1`, current,
		).Scan(&parentID)
		if err == sql.ErrNoRows {
			if current == assetID {
				return nil, &entities.NotFoundError{Kind: "asset", ID: assetID}
			}
			return nil, &entities.TreeIntegrityError{Kind: "asset", Detail: "unknown parent asset"}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read asset %d: %w", current, err)
		}

		chain = append(chain, current)
		if len(chain) > total {
			return nil, &entities.TreeIntegrityError{Kind: "asset", Detail: "cycle in parent chain"}
		}
		if !parentID.Valid {
			break
		}
		current = parentID.Int64
	}

	// Reverse to root-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// FindByName resolves an asset id from its unique name
func (r *PostgresAssetRepository) FindByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM assets WHERE name = $1`, name,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, &entities.NotFoundError{Kind: "asset", Name: name}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find asset by name: %w", err)
	}
	return id, nil
}
