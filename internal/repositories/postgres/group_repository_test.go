package postgres

import (
	"context"
	"testing"
)

func TestGroupRepository_ListGroups(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewPostgresGroupRepository(db)
	ctx := context.Background()

	t.Run("正常系: グループ一覧取得成功", func(t *testing.T) {
		publicID := insertTestGroup(t, db, "Public", 0, 0)
		registeredID := insertTestGroup(t, db, "Registered", publicID, 1)
		authorID := insertTestGroup(t, db, "Author", registeredID, 2)

		groups, err := repo.ListGroups(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(groups) != 3 {
			t.Fatalf("Expected 3 groups, got %d", len(groups))
		}

		// Parents come before children (depth order).
		if groups[0].ID != publicID || groups[1].ID != registeredID || groups[2].ID != authorID {
			t.Errorf("Expected order [%d %d %d], got [%d %d %d]",
				publicID, registeredID, authorID,
				groups[0].ID, groups[1].ID, groups[2].ID)
		}

		if groups[0].ParentID != 0 {
			t.Errorf("Expected root parent_id 0, got %d", groups[0].ParentID)
		}
		if groups[1].ParentID != publicID {
			t.Errorf("Expected parent_id %d, got %d", publicID, groups[1].ParentID)
		}
		if groups[2].Depth != 2 {
			t.Errorf("Expected depth 2, got %d", groups[2].Depth)
		}
	})
}

func TestGroupRepository_ListGroups_Empty(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewPostgresGroupRepository(db)
	ctx := context.Background()

	t.Run("正常系: グループが存在しない場合は空リスト", func(t *testing.T) {
		groups, err := repo.ListGroups(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(groups) != 0 {
			t.Errorf("Expected 0 groups, got %d", len(groups))
		}
	})
}
