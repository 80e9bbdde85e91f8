package resolver

import "github.com/asakaida/monban/internal/entities"

// Category classifies a resolved cell for presentation and audit
type Category int

const (
	// CategoryNotAllowed means the action is denied and editable at this scope
	CategoryNotAllowed Category = iota
	// CategoryAllowed means the action is granted and editable at this scope
	CategoryAllowed
	// CategoryAllowedLocked means a super admin grant inherited from an
	// ancestor scope: allowed, and not changeable here
	CategoryAllowedLocked
	// CategoryNotAllowedLocked means an inherited deny that cannot be
	// overridden at this scope
	CategoryNotAllowedLocked
)

// String returns the category as a string
func (c Category) String() string {
	switch c {
	case CategoryAllowed:
		return "allowed"
	case CategoryAllowedLocked:
		return "allowed_locked"
	case CategoryNotAllowedLocked:
		return "not_allowed_locked"
	default:
		return "not_allowed"
	}
}

// Classify maps a resolution onto its presentation category.
//
// superAdmin marks the cell's action as the super admin action.
// hasParentGroup is false only for the root group. hasOwningComponent is
// false only when the asset is the bare global root, with no owning
// component. The classification encodes a security-sensitive policy: it
// decides who appears permitted to administer the system.
func Classify(res *entities.Resolution, superAdmin, hasParentGroup, hasOwningComponent bool) Category {
	if !superAdmin {
		// Ordinary actions track the effective decision directly; conflicts
		// are carried on the resolution itself.
		if res.Effective == entities.RuleAllow {
			return CategoryAllowed
		}
		return CategoryNotAllowed
	}

	inherited := res.InheritedRule()

	if res.Effective != entities.RuleAllow {
		switch {
		case res.Inherited == nil:
			return CategoryNotAllowed
		case inherited == entities.RuleAllow:
			return CategoryAllowed
		case res.Explicit == entities.RuleDeny:
			// Explicitly denied here; nothing is being overridden.
			return CategoryNotAllowed
		default:
			// Denied by an ancestor scope that this scope cannot override.
			return CategoryNotAllowedLocked
		}
	}

	if hasOwningComponent {
		// A component-scoped asset cannot revoke a super admin grant.
		return CategoryAllowedLocked
	}

	if inherited == entities.RuleDeny {
		// At the bare global root, a higher admin lock still takes
		// precedence over a local allow attempt.
		return CategoryNotAllowedLocked
	}

	// At the true global root the grant remains editable.
	return CategoryAllowed
}

// HasCalculatedSetting reports whether a calculated (inherited) setting
// exists for a cell at all. The root group of the bare global configuration
// has nothing above it to inherit from, so no calculated setting is shown.
func HasCalculatedSetting(hasParentGroup, hasOwningComponent bool) bool {
	return hasParentGroup || hasOwningComponent
}
