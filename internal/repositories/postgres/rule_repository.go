package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/repositories"
)

// RevisionChannel is the LISTEN/NOTIFY channel used to announce rule writes
const RevisionChannel = "monban_rules_changed"

// PostgresRuleRepository implements RuleRepository using PostgreSQL
type PostgresRuleRepository struct {
	db *sql.DB
}

// NewPostgresRuleRepository creates a new PostgreSQL rule repository
func NewPostgresRuleRepository(db *sql.DB) repositories.RuleRepository {
	return &PostgresRuleRepository{db: db}
}

// LoadRuleSet returns the rules stored for an asset.
// An asset with no rows yields an empty RuleSet; unknown assets are not an
// error here, the resolver treats them the same as unconfigured ones.
func (r *PostgresRuleRepository) LoadRuleSet(ctx context.Context, assetID int64) (*entities.RuleSet, error) {
	query := `
		SELECT action, group_id, allow
		FROM rules
		WHERE asset_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules for asset %d: %w", assetID, err)
	}
	defer rows.Close()

	ruleSet := entities.NewRuleSet(assetID)
	for rows.Next() {
		var action string
		var groupID int64
		var allow bool
		if err := rows.Scan(&action, &groupID, &allow); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rule := entities.RuleDeny
		if allow {
			rule = entities.RuleAllow
		}
		ruleSet.Set(action, groupID, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rules: %w", err)
	}

	return ruleSet, nil
}

// SaveRuleSet replaces the stored rules for the rule set's asset.
// The delete, the inserts, the revision bump and the NOTIFY all happen in one
// transaction, so readers never observe a half-written rule set and caches
// are invalidated atomically with the write.
func (r *PostgresRuleRepository) SaveRuleSet(ctx context.Context, ruleSet *entities.RuleSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rules WHERE asset_id = $1`, ruleSet.AssetID,
	); err != nil {
		return fmt.Errorf("failed to clear rules for asset %d: %w", ruleSet.AssetID, err)
	}

	now := time.Now()
	for _, entry := range ruleSet.Entries() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO rules (asset_id, action, group_id, allow, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, ruleSet.AssetID, entry.Action, entry.GroupID, entry.Rule == entities.RuleAllow, now)
		if err != nil {
			return fmt.Errorf("failed to insert rule (%s, %d): %w", entry.Action, entry.GroupID, err)
		}
	}

	var revision int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO rule_revisions (created_at) VALUES ($1) RETURNING id
	`, now).Scan(&revision); err != nil {
		return fmt.Errorf("failed to bump rules revision: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`SELECT pg_notify($1, $2)`, RevisionChannel, fmt.Sprintf("%d", revision),
	); err != nil {
		return fmt.Errorf("failed to notify rule change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
