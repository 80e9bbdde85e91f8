package entities

import "sort"

// Rule is the tri-state decision stored for an (action, group) pair.
// Absence of an explicit rule is RuleNotSet, never a missing value.
type Rule int

const (
	// RuleNotSet means no explicit decision was stored
	RuleNotSet Rule = iota
	// RuleAllow grants the action
	RuleAllow
	// RuleDeny denies the action
	RuleDeny
)

// String returns the rule as a string
func (r Rule) String() string {
	switch r {
	case RuleAllow:
		return "allow"
	case RuleDeny:
		return "deny"
	default:
		return "not_set"
	}
}

// RuleEntry is one stored decision within a RuleSet
type RuleEntry struct {
	Action  string
	GroupID int64
	Rule    Rule
}

// RuleSet holds the explicit rules attached to a single asset.
// It is sparse: RuleNotSet is never stored, absence of a key IS not-set.
type RuleSet struct {
	AssetID int64
	rules   map[string]map[int64]Rule
}

// NewRuleSet creates an empty RuleSet for an asset
func NewRuleSet(assetID int64) *RuleSet {
	return &RuleSet{
		AssetID: assetID,
		rules:   make(map[string]map[int64]Rule),
	}
}

// DecisionFor returns the stored decision for an (action, group) pair,
// or RuleNotSet if none was stored. O(1).
func (s *RuleSet) DecisionFor(action string, groupID int64) Rule {
	byGroup, ok := s.rules[action]
	if !ok {
		return RuleNotSet
	}
	return byGroup[groupID] // zero value is RuleNotSet
}

// Set stores a decision for an (action, group) pair.
// Setting RuleNotSet removes any stored decision, keeping the set sparse.
func (s *RuleSet) Set(action string, groupID int64, rule Rule) {
	if rule == RuleNotSet {
		if byGroup, ok := s.rules[action]; ok {
			delete(byGroup, groupID)
			if len(byGroup) == 0 {
				delete(s.rules, action)
			}
		}
		return
	}

	byGroup, ok := s.rules[action]
	if !ok {
		byGroup = make(map[int64]Rule)
		s.rules[action] = byGroup
	}
	byGroup[groupID] = rule
}

// Len returns the number of stored decisions
func (s *RuleSet) Len() int {
	n := 0
	for _, byGroup := range s.rules {
		n += len(byGroup)
	}
	return n
}

// IsEmpty returns true if no decisions are stored
func (s *RuleSet) IsEmpty() bool {
	return len(s.rules) == 0
}

// Entries returns all stored decisions ordered by action name, then group id
func (s *RuleSet) Entries() []RuleEntry {
	entries := make([]RuleEntry, 0, s.Len())
	for action, byGroup := range s.rules {
		for groupID, rule := range byGroup {
			entries = append(entries, RuleEntry{Action: action, GroupID: groupID, Rule: rule})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Action != entries[j].Action {
			return entries[i].Action < entries[j].Action
		}
		return entries[i].GroupID < entries[j].GroupID
	})
	return entries
}
