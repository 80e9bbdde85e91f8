package resolver

import (
	"context"
	"fmt"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/repositories"
)

// ResolverInterface defines the interface for permission resolution
type ResolverInterface interface {
	Resolve(ctx context.Context, groupID int64, action string, assetID int64) (*entities.Resolution, error)
	SuperAdminAction() string
}

// Resolver computes the effective permission for (group, action, asset)
// triples by walking the asset ancestry chain and the group ancestry chain
// and combining explicit and inherited rules under fixed precedence.
type Resolver struct {
	groupRepo  repositories.GroupRepository
	ruleRepo   repositories.RuleRepository
	assetRepo  repositories.AssetRepository
	superAdmin string
}

// NewResolver creates a new Resolver.
// superAdminAction is the action whose Allow grant is irrevocable at
// descendant scopes; empty means entities.SuperAdminAction.
func NewResolver(
	groupRepo repositories.GroupRepository,
	ruleRepo repositories.RuleRepository,
	assetRepo repositories.AssetRepository,
	superAdminAction string,
) *Resolver {
	if superAdminAction == "" {
		superAdminAction = entities.SuperAdminAction
	}
	return &Resolver{
		groupRepo:  groupRepo,
		ruleRepo:   ruleRepo,
		assetRepo:  assetRepo,
		superAdmin: superAdminAction,
	}
}

// SuperAdminAction returns the configured super admin action name
func (r *Resolver) SuperAdminAction() string {
	return r.superAdmin
}

// Resolve computes the effective permission for one (group, action, asset)
// cell. Returns NotFoundError for unknown group or asset ids; absence of
// rules anywhere in the ancestry is not an error, it resolves to Deny.
func (r *Resolver) Resolve(ctx context.Context, groupID int64, action string, assetID int64) (*entities.Resolution, error) {
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}

	tree, err := r.loadTree(ctx)
	if err != nil {
		return nil, err
	}

	chain, err := r.loadChain(ctx, assetID)
	if err != nil {
		return nil, err
	}

	res, err := r.resolveCell(tree, chain, groupID, action)
	if err != nil {
		return nil, err
	}

	group, err := tree.Get(groupID)
	if err != nil {
		return nil, err
	}
	res.HasParentGroup = !group.IsRoot()
	res.HasOwningComponent = len(chain) > 1

	return res, nil
}

// loadTree loads the group hierarchy and validates its integrity
func (r *Resolver) loadTree(ctx context.Context) (*entities.GroupTree, error) {
	groups, err := r.groupRepo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	tree, err := entities.NewGroupTree(groups)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// loadChain loads the rule sets along the asset ancestry chain, root first,
// ending with the target asset. Every asset contributes a rule set; assets
// without stored rules contribute an empty one.
func (r *Resolver) loadChain(ctx context.Context, assetID int64) ([]*entities.RuleSet, error) {
	ids, err := r.assetRepo.AncestryChain(ctx, assetID)
	if err != nil {
		return nil, err
	}

	chain := make([]*entities.RuleSet, 0, len(ids))
	for _, id := range ids {
		rs, err := r.ruleRepo.LoadRuleSet(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules for asset %d: %w", id, err)
		}
		chain = append(chain, rs)
	}
	return chain, nil
}

// resolveCell runs the resolution algorithm against already-loaded data.
// chain is ordered root first, with the target asset last.
//
// The inherited decision is found by a two-dimensional walk: ancestor assets
// are scanned nearest first, and within each asset the group path is scanned
// nearest group first. The target asset itself participates in the walk for
// ancestor groups; only its (target group) cell is the explicit rule. More
// specific scopes therefore always beat more general ones.
//
// The super admin action is the exception. An Allow found at any scope voids
// every Deny stored nearer to the target, so a grant established at an
// ancestor stays in force at all descendants regardless of intermediate
// rules. A Deny with no Allow above it inherits normally.
func (r *Resolver) resolveCell(tree *entities.GroupTree, chain []*entities.RuleSet, groupID int64, action string) (*entities.Resolution, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("empty asset chain")
	}

	path, err := tree.PathOf(groupID)
	if err != nil {
		return nil, err
	}

	target := chain[len(chain)-1]
	explicit := target.DecisionFor(action, groupID)

	superAdmin := action == r.superAdmin

	var inherited *entities.Rule
scan:
	for ai := len(chain) - 1; ai >= 0; ai-- {
		for gi := len(path) - 1; gi >= 0; gi-- {
			if ai == len(chain)-1 && gi == len(path)-1 {
				// The target cell itself is the explicit rule, not inheritance.
				continue
			}
			d := chain[ai].DecisionFor(action, path[gi].ID)
			if d == entities.RuleNotSet {
				continue
			}
			switch {
			case !superAdmin:
				// Ordinary actions: the nearest decision stands.
				decision := d
				inherited = &decision
				break scan
			case d == entities.RuleAllow:
				// A super admin Allow at this scope or above voids any
				// nearer Deny: once established, the grant cannot be shadowed
				// by an intermediate scope.
				decision := entities.RuleAllow
				inherited = &decision
				break scan
			case inherited == nil:
				// Nearest Deny; stands only if no Allow exists above it.
				decision := d
				inherited = &decision
			}
		}
	}

	res := &entities.Resolution{
		GroupID:   groupID,
		Action:    action,
		AssetID:   target.AssetID,
		Explicit:  explicit,
		Inherited: inherited,
	}

	switch {
	case superAdmin && inherited != nil && *inherited == entities.RuleAllow:
		// Super admin grants are irrevocable downstream: an inherited Allow
		// cannot be overridden to Deny by a more specific scope, even by an
		// explicit Deny on the target asset.
		res.Effective = entities.RuleAllow
		res.Locked = true
	case explicit != entities.RuleNotSet:
		// An asset's own explicit rule wins over inheritance.
		res.Effective = explicit
	case inherited != nil:
		res.Effective = *inherited
	default:
		// Default deny: no rule anywhere in the ancestry.
		res.Effective = entities.RuleDeny
	}

	// An explicit Allow contradicting an inherited Deny is flagged, not
	// resolved away; the explicit rule still wins.
	res.Conflict = explicit == entities.RuleAllow && inherited != nil && *inherited == entities.RuleDeny

	return res, nil
}
