package resolver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/asakaida/monban/internal/entities"
	infracache "github.com/asakaida/monban/internal/infrastructure/cache"
	"github.com/asakaida/monban/internal/services/catalog"
	"github.com/asakaida/monban/pkg/cache"
)

// MatrixInterface defines the interface for whole-grid resolution
type MatrixInterface interface {
	ResolveMatrix(ctx context.Context, req *MatrixRequest) (*MatrixResult, error)
}

// MatrixRequest contains the parameters for resolving a full permission grid
type MatrixRequest struct {
	AssetID      int64  // Target asset
	ResourceKind string // Resource kind for the action catalog (e.g. "com_content")
	Offset       int    // First group (in tree order) to include
	Limit        int    // Maximum number of groups to include (0 = all)
}

// MatrixCell is one resolved (group, action) cell of the grid.
// This is the entire contract presentation layers need.
type MatrixCell struct {
	GroupID    int64
	GroupTitle string
	GroupDepth int
	Action     string

	Explicit  entities.Rule
	Inherited *entities.Rule
	Effective entities.Rule
	Category  Category
	Conflict  bool
	Locked    bool

	// HasCalculatedSetting is false for cells with nothing above them to
	// inherit from (root group of the bare global configuration).
	HasCalculatedSetting bool
}

// MatrixResult is the resolved grid for one asset
type MatrixResult struct {
	AssetID     int64
	TotalGroups int // Group count before pagination
	Cells       []*MatrixCell
}

// Matrix resolves every (group, action) cell for an asset in one pass.
// The asset ancestry chain and the group tree are loaded once and shared
// across all cells, so a full grid costs the same I/O as a single cell.
type Matrix struct {
	resolver  *Resolver
	catalog   *catalog.Catalog
	cache     cache.Cache                 // Optional cache for resolved grids
	revisions infracache.RevisionProvider // Optional revision source for cache consistency
	cacheTTL  time.Duration               // TTL for cached grids
}

// NewMatrix creates a new Matrix without caching
func NewMatrix(resolver *Resolver, catalog *catalog.Catalog) *Matrix {
	return &Matrix{
		resolver: resolver,
		catalog:  catalog,
	}
}

// NewMatrixWithCache creates a new Matrix with caching enabled
func NewMatrixWithCache(
	resolver *Resolver,
	catalog *catalog.Catalog,
	c cache.Cache,
	revisions infracache.RevisionProvider,
	cacheTTL time.Duration,
) *Matrix {
	return &Matrix{
		resolver:  resolver,
		catalog:   catalog,
		cache:     c,
		revisions: revisions,
		cacheTTL:  cacheTTL,
	}
}

// generateCacheKey generates a cache key for the matrix request
func (m *Matrix) generateCacheKey(req *MatrixRequest, revision string) string {
	keyData := fmt.Sprintf("%d:%s:%d:%d:%s",
		req.AssetID,
		req.ResourceKind,
		req.Offset,
		req.Limit,
		revision,
	)
	// Hash the key to keep it short
	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:])
}

// ResolveMatrix resolves the full permission grid for an asset
func (m *Matrix) ResolveMatrix(ctx context.Context, req *MatrixRequest) (*MatrixResult, error) {
	if err := m.validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid matrix request: %w", err)
	}

	useCache := m.cache != nil && m.revisions != nil

	var cacheKey string
	if useCache {
		revision, err := m.revisions.Current(ctx)
		if err != nil {
			// Continue without cache; resolution itself must not fail
			// because the revision source is unavailable.
			useCache = false
		} else {
			cacheKey = m.generateCacheKey(req, revision)
			if cached, found := m.cache.Get(ctx, cacheKey); found {
				if result, ok := cached.(*MatrixResult); ok {
					return result, nil
				}
			}
		}
	}

	tree, err := m.resolver.loadTree(ctx)
	if err != nil {
		return nil, err
	}

	chain, err := m.resolver.loadChain(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}

	// An asset below the root of its chain is owned by a component (or an
	// item within one); only the bare global root stands alone.
	hasOwningComponent := len(chain) > 1

	groups := tree.AllGroups()
	total := len(groups)
	groups = pageGroups(groups, req.Offset, req.Limit)

	actions := m.catalog.Actions(req.ResourceKind)
	superAdmin := m.resolver.SuperAdminAction()

	result := &MatrixResult{
		AssetID:     req.AssetID,
		TotalGroups: total,
		Cells:       make([]*MatrixCell, 0, len(groups)*len(actions)),
	}

	for _, g := range groups {
		hasParentGroup := !g.IsRoot()
		for _, action := range actions {
			res, err := m.resolver.resolveCell(tree, chain, g.ID, action.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell (%d, %s): %w", g.ID, action.Name, err)
			}

			isSuperAdmin := action.Name == superAdmin
			result.Cells = append(result.Cells, &MatrixCell{
				GroupID:              g.ID,
				GroupTitle:           g.Title,
				GroupDepth:           g.Depth,
				Action:               action.Name,
				Explicit:             res.Explicit,
				Inherited:            res.Inherited,
				Effective:            res.Effective,
				Category:             Classify(res, isSuperAdmin, hasParentGroup, hasOwningComponent),
				Conflict:             res.Conflict,
				Locked:               res.Locked,
				HasCalculatedSetting: HasCalculatedSetting(hasParentGroup, hasOwningComponent),
			})
		}
	}

	if useCache && cacheKey != "" {
		_ = m.cache.Set(ctx, cacheKey, result, m.cacheTTL)
	}

	return result, nil
}

// validateRequest validates the matrix request
func (m *Matrix) validateRequest(req *MatrixRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.AssetID <= 0 {
		return fmt.Errorf("asset id is required")
	}
	if req.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if req.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

// pageGroups applies offset/limit pagination over the tree-ordered groups
func pageGroups(groups []*entities.Group, offset, limit int) []*entities.Group {
	if offset >= len(groups) {
		return nil
	}
	groups = groups[offset:]
	if limit > 0 && limit < len(groups) {
		groups = groups[:limit]
	}
	return groups
}
