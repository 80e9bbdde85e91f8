package entities

// SuperAdminAction is the well-known action whose Allow grant propagates
// irrevocably to descendant scopes: once granted at an ancestor scope it
// cannot be denied by a more specific asset or group.
const SuperAdminAction = "core.admin"

// Action represents an entry in the action catalog
// Example: name "core.edit", title "Edit"
type Action struct {
	Name        string // Dotted permission key, unique per resource kind
	Title       string // Display title (opaque to the resolver)
	Description string // Display description (opaque to the resolver)
}

// IsSuperAdmin returns true if the action is the super admin action
func (a *Action) IsSuperAdmin() bool {
	return a.Name == SuperAdminAction
}
