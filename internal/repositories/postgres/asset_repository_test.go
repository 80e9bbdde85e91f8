package postgres

import (
	"context"
	"testing"

	"github.com/asakaida/monban/internal/entities"
)

func TestAssetRepository_AncestryChain(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewPostgresAssetRepository(db)
	ctx := context.Background()

	t.Run("正常系: ルートから対象までの祖先チェーン取得", func(t *testing.T) {
		rootID := rootAssetID(t, db)
		componentID := insertTestAsset(t, db, "com_content", "Content", rootID)
		articleID := insertTestAsset(t, db, "com_content.article.1", "First Article", componentID)

		chain, err := repo.AncestryChain(ctx, articleID)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(chain) != 3 {
			t.Fatalf("Expected chain of 3, got %d", len(chain))
		}
		if chain[0] != rootID || chain[1] != componentID || chain[2] != articleID {
			t.Errorf("Expected chain [%d %d %d], got %v", rootID, componentID, articleID, chain)
		}
	})

	t.Run("正常系: ルート資産のチェーンは自分自身のみ", func(t *testing.T) {
		rootID := rootAssetID(t, db)

		chain, err := repo.AncestryChain(ctx, rootID)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if len(chain) != 1 || chain[0] != rootID {
			t.Errorf("Expected chain [%d], got %v", rootID, chain)
		}
	})

	t.Run("異常系: 存在しない資産はNotFoundError", func(t *testing.T) {
		_, err := repo.AncestryChain(ctx, 999999)
		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if !entities.IsNotFound(err) {
			t.Errorf("Expected NotFoundError, got: %v", err)
		}
	})
}

func TestAssetRepository_FindByName(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := NewPostgresAssetRepository(db)
	ctx := context.Background()

	t.Run("正常系: 名前から資産ID取得成功", func(t *testing.T) {
		rootID := rootAssetID(t, db)
		componentID := insertTestAsset(t, db, "com_banners", "Banners", rootID)

		id, err := repo.FindByName(ctx, "com_banners")
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if id != componentID {
			t.Errorf("Expected id %d, got %d", componentID, id)
		}
	})

	t.Run("異常系: 存在しない名前はNotFoundError", func(t *testing.T) {
		_, err := repo.FindByName(ctx, "com_missing")
		if err == nil {
			t.Fatal("Expected error, got nil")
		}
		if !entities.IsNotFound(err) {
			t.Errorf("Expected NotFoundError, got: %v", err)
		}
	})
}
