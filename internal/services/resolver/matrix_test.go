package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/services/catalog"
	"github.com/asakaida/monban/pkg/cache/memorycache"
)

func testMatrix(ruleRepo *mockRuleRepository) *Matrix {
	return NewMatrix(testResolver(ruleRepo), catalog.New())
}

func findCell(t *testing.T, result *MatrixResult, groupID int64, action string) *MatrixCell {
	t.Helper()
	for _, c := range result.Cells {
		if c.GroupID == groupID && c.Action == action {
			return c
		}
	}
	t.Fatalf("cell (%d, %s) not found", groupID, action)
	return nil
}

func TestMatrix_ResolveMatrix_FullGrid(t *testing.T) {
	ruleRepo := newMockRuleRepository()
	ruleRepo.set(assetGlobal, "core.edit", groupPublic, entities.RuleDeny)
	m := testMatrix(ruleRepo)

	result, err := m.ResolveMatrix(context.Background(), &MatrixRequest{
		AssetID:      assetArticle,
		ResourceKind: "com_content",
	})
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}

	// 3 groups x 6 base actions.
	if len(result.Cells) != 18 {
		t.Fatalf("ResolveMatrix() returned %d cells, want 18", len(result.Cells))
	}
	if result.TotalGroups != 3 {
		t.Errorf("TotalGroups = %d, want 3", result.TotalGroups)
	}

	// The deny at the global root cascades through groups and assets.
	cell := findCell(t, result, groupAuthor, "core.edit")
	if cell.Effective != entities.RuleDeny {
		t.Errorf("Effective = %v, want RuleDeny", cell.Effective)
	}
	if cell.Category != CategoryNotAllowed {
		t.Errorf("Category = %v, want CategoryNotAllowed", cell.Category)
	}

	// Unconfigured cells default to deny.
	cell = findCell(t, result, groupRegistered, "core.delete")
	if cell.Effective != entities.RuleDeny {
		t.Errorf("Effective = %v, want RuleDeny (default deny)", cell.Effective)
	}
}

func TestMatrix_ResolveMatrix_SuperAdminLocked(t *testing.T) {
	ruleRepo := newMockRuleRepository()
	ruleRepo.set(assetGlobal, "core.admin", groupRegistered, entities.RuleAllow)
	ruleRepo.set(assetComponent, "core.admin", groupRegistered, entities.RuleDeny)
	m := testMatrix(ruleRepo)

	result, err := m.ResolveMatrix(context.Background(), &MatrixRequest{
		AssetID:      assetComponent,
		ResourceKind: "com_content",
	})
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}

	cell := findCell(t, result, groupRegistered, "core.admin")
	if cell.Effective != entities.RuleAllow {
		t.Errorf("Effective = %v, want RuleAllow", cell.Effective)
	}
	if cell.Category != CategoryAllowedLocked {
		t.Errorf("Category = %v, want CategoryAllowedLocked", cell.Category)
	}
	if !cell.Locked {
		t.Error("Locked = false, want true")
	}
}

func TestMatrix_ResolveMatrix_CalculatedSettingGate(t *testing.T) {
	m := testMatrix(newMockRuleRepository())

	// On the bare global root the root group has no calculated setting.
	result, err := m.ResolveMatrix(context.Background(), &MatrixRequest{
		AssetID:      assetGlobal,
		ResourceKind: "",
	})
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}

	if cell := findCell(t, result, groupPublic, "core.edit"); cell.HasCalculatedSetting {
		t.Error("root group at global root: HasCalculatedSetting = true, want false")
	}
	if cell := findCell(t, result, groupRegistered, "core.edit"); !cell.HasCalculatedSetting {
		t.Error("child group at global root: HasCalculatedSetting = false, want true")
	}

	// On a component asset even the root group has one.
	result, err = m.ResolveMatrix(context.Background(), &MatrixRequest{
		AssetID:      assetComponent,
		ResourceKind: "com_content",
	})
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}
	if cell := findCell(t, result, groupPublic, "core.edit"); !cell.HasCalculatedSetting {
		t.Error("root group on component asset: HasCalculatedSetting = false, want true")
	}
}

func TestMatrix_ResolveMatrix_Pagination(t *testing.T) {
	m := testMatrix(newMockRuleRepository())

	tests := []struct {
		name         string
		offset       int
		limit        int
		wantGroupIDs []int64
	}{
		{name: "first page", offset: 0, limit: 2, wantGroupIDs: []int64{groupPublic, groupRegistered}},
		{name: "second page", offset: 2, limit: 2, wantGroupIDs: []int64{groupAuthor}},
		{name: "offset beyond end", offset: 5, limit: 2, wantGroupIDs: nil},
		{name: "no limit", offset: 0, limit: 0, wantGroupIDs: []int64{groupPublic, groupRegistered, groupAuthor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := m.ResolveMatrix(context.Background(), &MatrixRequest{
				AssetID:      assetGlobal,
				ResourceKind: "",
				Offset:       tt.offset,
				Limit:        tt.limit,
			})
			if err != nil {
				t.Fatalf("ResolveMatrix() error = %v", err)
			}

			if result.TotalGroups != 3 {
				t.Errorf("TotalGroups = %d, want 3", result.TotalGroups)
			}

			seen := make(map[int64]bool)
			var order []int64
			for _, c := range result.Cells {
				if !seen[c.GroupID] {
					seen[c.GroupID] = true
					order = append(order, c.GroupID)
				}
			}
			if len(order) != len(tt.wantGroupIDs) {
				t.Fatalf("got %d groups, want %d", len(order), len(tt.wantGroupIDs))
			}
			for i, id := range order {
				if id != tt.wantGroupIDs[i] {
					t.Errorf("group[%d] = %d, want %d", i, id, tt.wantGroupIDs[i])
				}
			}
		})
	}
}

func TestMatrix_ResolveMatrix_InvalidRequest(t *testing.T) {
	m := testMatrix(newMockRuleRepository())

	tests := []struct {
		name string
		req  *MatrixRequest
	}{
		{name: "nil request", req: nil},
		{name: "missing asset id", req: &MatrixRequest{}},
		{name: "negative offset", req: &MatrixRequest{AssetID: 1, Offset: -1}},
		{name: "negative limit", req: &MatrixRequest{AssetID: 1, Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ResolveMatrix(context.Background(), tt.req); err == nil {
				t.Error("ResolveMatrix() expected error")
			}
		})
	}
}

func TestMatrix_ResolveMatrix_CacheHit(t *testing.T) {
	ruleRepo := newMockRuleRepository()
	ruleRepo.set(assetGlobal, "core.edit", groupPublic, entities.RuleAllow)

	c, err := memorycache.New(&memorycache.Config{
		MaxSizeBytes: 1024 * 1024,
		DefaultTTL:   time.Minute,
	})
	if err != nil {
		t.Fatalf("memorycache.New() error = %v", err)
	}
	revisions := &mockRevisionProvider{revision: "7"}
	m := NewMatrixWithCache(testResolver(ruleRepo), catalog.New(), c, revisions, time.Minute)

	req := &MatrixRequest{AssetID: assetArticle, ResourceKind: "com_content"}

	first, err := m.ResolveMatrix(context.Background(), req)
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}

	// Mutate the underlying store without bumping the revision: the cached
	// grid must still be served.
	ruleRepo.set(assetGlobal, "core.edit", groupPublic, entities.RuleDeny)

	second, err := m.ResolveMatrix(context.Background(), req)
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}
	if findCell(t, second, groupPublic, "core.edit").Effective != entities.RuleAllow {
		t.Error("expected cached grid to be served while revision is unchanged")
	}
	if first != second {
		t.Error("expected the identical cached result pointer")
	}

	// Bumping the revision invalidates the cached grid.
	revisions.revision = "8"
	third, err := m.ResolveMatrix(context.Background(), req)
	if err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}
	if findCell(t, third, groupPublic, "core.edit").Effective != entities.RuleDeny {
		t.Error("expected a fresh grid after revision bump")
	}
}

func TestMatrix_ResolveMatrix_RevisionErrorSkipsCache(t *testing.T) {
	ruleRepo := newMockRuleRepository()
	c, err := memorycache.New(&memorycache.Config{MaxSizeBytes: 1024 * 1024, DefaultTTL: time.Minute})
	if err != nil {
		t.Fatalf("memorycache.New() error = %v", err)
	}
	revisions := &mockRevisionProvider{err: context.DeadlineExceeded}
	m := NewMatrixWithCache(testResolver(ruleRepo), catalog.New(), c, revisions, time.Minute)

	// Resolution must succeed even when the revision source fails.
	if _, err := m.ResolveMatrix(context.Background(), &MatrixRequest{AssetID: assetGlobal}); err != nil {
		t.Fatalf("ResolveMatrix() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("cache Len() = %d, want 0 when revision source fails", c.Len())
	}
}
