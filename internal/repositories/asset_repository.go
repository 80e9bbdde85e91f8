package repositories

import "context"

// AssetRepository defines read access to the asset hierarchy.
// Assets form their own ancestry chain independent of groups
// (global configuration -> component -> item).
type AssetRepository interface {
	// AncestryChain returns the asset ids from the root down to assetID,
	// inclusive, root first. Returns NotFoundError for an unknown asset and
	// TreeIntegrityError when the parent walk does not terminate.
	AncestryChain(ctx context.Context, assetID int64) ([]int64, error)

	// FindByName resolves an asset id from its unique name
	// (e.g. "com_content"). Returns NotFoundError when no asset has the name.
	FindByName(ctx context.Context, name string) (int64, error)
}
