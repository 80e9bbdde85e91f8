package resolver

import (
	"context"

	"github.com/asakaida/monban/internal/entities"
)

// mockGroupRepository serves a fixed group listing
type mockGroupRepository struct {
	groups []*entities.Group
	err    error
}

func (m *mockGroupRepository) ListGroups(ctx context.Context) ([]*entities.Group, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.groups, nil
}

// mockRuleRepository serves rule sets from an in-memory map
type mockRuleRepository struct {
	ruleSets map[int64]*entities.RuleSet
	saved    []*entities.RuleSet
}

func newMockRuleRepository() *mockRuleRepository {
	return &mockRuleRepository{ruleSets: make(map[int64]*entities.RuleSet)}
}

func (m *mockRuleRepository) set(assetID int64, action string, groupID int64, rule entities.Rule) {
	rs, ok := m.ruleSets[assetID]
	if !ok {
		rs = entities.NewRuleSet(assetID)
		m.ruleSets[assetID] = rs
	}
	rs.Set(action, groupID, rule)
}

func (m *mockRuleRepository) LoadRuleSet(ctx context.Context, assetID int64) (*entities.RuleSet, error) {
	if rs, ok := m.ruleSets[assetID]; ok {
		return rs, nil
	}
	return entities.NewRuleSet(assetID), nil
}

func (m *mockRuleRepository) SaveRuleSet(ctx context.Context, ruleSet *entities.RuleSet) error {
	m.ruleSets[ruleSet.AssetID] = ruleSet
	m.saved = append(m.saved, ruleSet)
	return nil
}

// mockAssetRepository serves an asset hierarchy from a parent map
type mockAssetRepository struct {
	parents map[int64]int64 // asset id -> parent id (0 = root)
	names   map[string]int64
}

func (m *mockAssetRepository) AncestryChain(ctx context.Context, assetID int64) ([]int64, error) {
	if _, ok := m.parents[assetID]; !ok {
		return nil, &entities.NotFoundError{Kind: "asset", ID: assetID}
	}

	var chain []int64
	current := assetID
	for {
		chain = append(chain, current)
		if len(chain) > len(m.parents) {
			return nil, &entities.TreeIntegrityError{Kind: "asset", Detail: "cycle in parent chain"}
		}
		parent := m.parents[current]
		if parent == 0 {
			break
		}
		current = parent
	}

	// Reverse to root-first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

func (m *mockAssetRepository) FindByName(ctx context.Context, name string) (int64, error) {
	if id, ok := m.names[name]; ok {
		return id, nil
	}
	return 0, &entities.NotFoundError{Kind: "asset", Name: name}
}

// mockRevisionProvider serves a fixed revision
type mockRevisionProvider struct {
	revision string
	err      error
}

func (m *mockRevisionProvider) Current(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.revision, nil
}

// Standard fixture: groups Public(1) -> Registered(2) -> Author(3);
// assets global(1) -> component(2) -> article(3).
const (
	groupPublic     = int64(1)
	groupRegistered = int64(2)
	groupAuthor     = int64(3)

	assetGlobal    = int64(1)
	assetComponent = int64(2)
	assetArticle   = int64(3)
)

func testGroupRepo() *mockGroupRepository {
	return &mockGroupRepository{groups: []*entities.Group{
		{ID: groupPublic, Title: "Public", ParentID: 0, Depth: 0},
		{ID: groupRegistered, Title: "Registered", ParentID: groupPublic, Depth: 1},
		{ID: groupAuthor, Title: "Author", ParentID: groupRegistered, Depth: 2},
	}}
}

func testAssetRepo() *mockAssetRepository {
	return &mockAssetRepository{
		parents: map[int64]int64{
			assetGlobal:    0,
			assetComponent: assetGlobal,
			assetArticle:   assetComponent,
		},
		names: map[string]int64{
			"root":        assetGlobal,
			"com_content": assetComponent,
		},
	}
}

func testResolver(ruleRepo *mockRuleRepository) *Resolver {
	return NewResolver(testGroupRepo(), ruleRepo, testAssetRepo(), "")
}
