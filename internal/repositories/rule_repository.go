package repositories

import (
	"context"

	"github.com/asakaida/monban/internal/entities"
)

// RuleRepository defines access to persisted rule sets
type RuleRepository interface {
	// LoadRuleSet returns the rules stored for an asset.
	// An asset with no stored rules yields an empty RuleSet, not an error:
	// absence of rules is a normal condition for new and unconfigured assets.
	LoadRuleSet(ctx context.Context, assetID int64) (*entities.RuleSet, error)

	// SaveRuleSet replaces the stored rules for the rule set's asset in a
	// single transaction and bumps the rules revision, so cached resolution
	// results are invalidated atomically with the write.
	SaveRuleSet(ctx context.Context, ruleSet *entities.RuleSet) error
}
