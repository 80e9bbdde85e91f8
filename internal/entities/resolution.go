package entities

// Resolution is the effective permission computed for one
// (group, action, asset) cell. It is derived output, never persisted.
type Resolution struct {
	GroupID int64
	Action  string
	AssetID int64

	// Explicit is the rule stored directly on the target asset for the
	// target group (RuleNotSet when absent).
	Explicit Rule

	// Inherited is the nearest ancestor decision found by walking ancestor
	// assets outward and group ancestors upward. nil when no ancestor scope
	// holds a decision at all.
	Inherited *Rule

	// Effective is the final decision: RuleAllow or RuleDeny, never RuleNotSet.
	// Absence of any applicable rule resolves to RuleDeny (default deny).
	Effective Rule

	// Locked is set for the super admin action when an ancestor scope granted
	// Allow: that grant cannot be revoked at this scope.
	Locked bool

	// Conflict is set when the asset's own explicit Allow contradicts an
	// inherited Deny. The explicit rule still wins; the flag is for display
	// and audit.
	Conflict bool

	// HasParentGroup reports whether the group has an ancestor to inherit
	// from. HasOwningComponent reports whether the asset sits below the
	// global root. Together they decide whether a "not set" cell has a
	// calculated value worth showing.
	HasParentGroup     bool
	HasOwningComponent bool
}

// InheritedRule returns the inherited decision, or RuleNotSet when no
// ancestor scope holds one.
func (r *Resolution) InheritedRule() Rule {
	if r.Inherited == nil {
		return RuleNotSet
	}
	return *r.Inherited
}
