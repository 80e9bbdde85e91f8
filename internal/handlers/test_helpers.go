package handlers

import (
	"context"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/services/resolver"
)

// === Mock services and repositories for handler tests ===

type mockResolver struct {
	resolveFunc func(ctx context.Context, groupID int64, action string, assetID int64) (*entities.Resolution, error)
	superAdmin  string
}

func (m *mockResolver) SuperAdminAction() string {
	if m.superAdmin != "" {
		return m.superAdmin
	}
	return entities.SuperAdminAction
}

func (m *mockResolver) Resolve(ctx context.Context, groupID int64, action string, assetID int64) (*entities.Resolution, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, groupID, action, assetID)
	}
	return &entities.Resolution{
		GroupID:   groupID,
		Action:    action,
		AssetID:   assetID,
		Effective: entities.RuleDeny,
	}, nil
}

type mockMatrix struct {
	resolveMatrixFunc func(ctx context.Context, req *resolver.MatrixRequest) (*resolver.MatrixResult, error)
}

func (m *mockMatrix) ResolveMatrix(ctx context.Context, req *resolver.MatrixRequest) (*resolver.MatrixResult, error) {
	if m.resolveMatrixFunc != nil {
		return m.resolveMatrixFunc(ctx, req)
	}
	return &resolver.MatrixResult{AssetID: req.AssetID}, nil
}

type mockGroupRepo struct {
	listGroupsFunc func(ctx context.Context) ([]*entities.Group, error)
}

func (m *mockGroupRepo) ListGroups(ctx context.Context) ([]*entities.Group, error) {
	if m.listGroupsFunc != nil {
		return m.listGroupsFunc(ctx)
	}
	return []*entities.Group{
		{ID: 1, Title: "Public", ParentID: 0, Depth: 0},
		{ID: 2, Title: "Registered", ParentID: 1, Depth: 1},
	}, nil
}

type mockRuleRepo struct {
	loadRuleSetFunc func(ctx context.Context, assetID int64) (*entities.RuleSet, error)
	saveRuleSetFunc func(ctx context.Context, ruleSet *entities.RuleSet) error
}

func (m *mockRuleRepo) LoadRuleSet(ctx context.Context, assetID int64) (*entities.RuleSet, error) {
	if m.loadRuleSetFunc != nil {
		return m.loadRuleSetFunc(ctx, assetID)
	}
	return entities.NewRuleSet(assetID), nil
}

func (m *mockRuleRepo) SaveRuleSet(ctx context.Context, ruleSet *entities.RuleSet) error {
	if m.saveRuleSetFunc != nil {
		return m.saveRuleSetFunc(ctx, ruleSet)
	}
	return nil
}

type mockAssetRepo struct {
	ancestryChainFunc func(ctx context.Context, assetID int64) ([]int64, error)
	findByNameFunc    func(ctx context.Context, name string) (int64, error)
}

func (m *mockAssetRepo) AncestryChain(ctx context.Context, assetID int64) ([]int64, error) {
	if m.ancestryChainFunc != nil {
		return m.ancestryChainFunc(ctx, assetID)
	}
	return []int64{1, assetID}, nil
}

func (m *mockAssetRepo) FindByName(ctx context.Context, name string) (int64, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(ctx, name)
	}
	return 0, &entities.NotFoundError{Kind: "asset", Name: name}
}
