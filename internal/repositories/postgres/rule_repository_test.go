package postgres

import (
	"context"
	"testing"

	"github.com/asakaida/monban/internal/entities"
)

func TestRuleRepository_LoadRuleSet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewPostgresRuleRepository(db)
	ctx := context.Background()

	t.Run("正常系: ルール未設定の資産は空のルールセット", func(t *testing.T) {
		rootID := rootAssetID(t, db)

		ruleSet, err := repo.LoadRuleSet(ctx, rootID)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !ruleSet.IsEmpty() {
			t.Errorf("Expected empty rule set, got %d entries", ruleSet.Len())
		}
		if ruleSet.AssetID != rootID {
			t.Errorf("Expected asset id %d, got %d", rootID, ruleSet.AssetID)
		}
	})

	t.Run("正常系: 存在しない資産でもエラーにならない", func(t *testing.T) {
		ruleSet, err := repo.LoadRuleSet(ctx, 999999)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !ruleSet.IsEmpty() {
			t.Errorf("Expected empty rule set, got %d entries", ruleSet.Len())
		}
	})
}

func TestRuleRepository_SaveRuleSet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewPostgresRuleRepository(db)
	ctx := context.Background()

	t.Run("正常系: 保存したルールセットを再取得できる", func(t *testing.T) {
		rootID := rootAssetID(t, db)
		componentID := insertTestAsset(t, db, "com_content", "Content", rootID)
		publicID := insertTestGroup(t, db, "Public", 0, 0)
		registeredID := insertTestGroup(t, db, "Registered", publicID, 1)

		ruleSet := entities.NewRuleSet(componentID)
		ruleSet.Set("core.edit", registeredID, entities.RuleAllow)
		ruleSet.Set("core.admin", publicID, entities.RuleDeny)

		if err := repo.SaveRuleSet(ctx, ruleSet); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		loaded, err := repo.LoadRuleSet(ctx, componentID)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if loaded.Len() != 2 {
			t.Fatalf("Expected 2 entries, got %d", loaded.Len())
		}
		if got := loaded.DecisionFor("core.edit", registeredID); got != entities.RuleAllow {
			t.Errorf("Expected allow, got %v", got)
		}
		if got := loaded.DecisionFor("core.admin", publicID); got != entities.RuleDeny {
			t.Errorf("Expected deny, got %v", got)
		}
	})

	t.Run("正常系: 保存は既存ルールを完全に置き換える", func(t *testing.T) {
		rootID := rootAssetID(t, db)
		componentID := insertTestAsset(t, db, "com_menus", "Menus", rootID)
		publicID := insertTestGroup(t, db, "Guests", 0, 0)

		first := entities.NewRuleSet(componentID)
		first.Set("core.edit", publicID, entities.RuleAllow)
		first.Set("core.delete", publicID, entities.RuleAllow)
		if err := repo.SaveRuleSet(ctx, first); err != nil {
			t.Fatalf("Failed to save first rule set: %v", err)
		}

		second := entities.NewRuleSet(componentID)
		second.Set("core.edit", publicID, entities.RuleDeny)
		if err := repo.SaveRuleSet(ctx, second); err != nil {
			t.Fatalf("Failed to save second rule set: %v", err)
		}

		loaded, err := repo.LoadRuleSet(ctx, componentID)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if loaded.Len() != 1 {
			t.Fatalf("Expected 1 entry after replace, got %d", loaded.Len())
		}
		if got := loaded.DecisionFor("core.delete", publicID); got != entities.RuleNotSet {
			t.Errorf("Expected dropped rule to be not_set, got %v", got)
		}
	})

	t.Run("正常系: 保存のたびにリビジョンが増える", func(t *testing.T) {
		rootID := rootAssetID(t, db)
		before := countRevisions(t, db)

		empty := entities.NewRuleSet(rootID)
		if err := repo.SaveRuleSet(ctx, empty); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		after := countRevisions(t, db)
		if after != before+1 {
			t.Errorf("Expected %d revisions, got %d", before+1, after)
		}
	})
}
