package repositories

import (
	"context"

	"github.com/asakaida/monban/internal/entities"
)

// GroupRepository defines read access to the user group hierarchy.
// Group management (creating and moving groups) is an external concern.
type GroupRepository interface {
	// ListGroups returns all groups in tree order (parents before children)
	ListGroups(ctx context.Context) ([]*entities.Group, error)
}
