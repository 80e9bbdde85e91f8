package entities

import "testing"

func TestRuleSet_DecisionFor(t *testing.T) {
	rs := NewRuleSet(1)
	rs.Set("core.edit", 2, RuleAllow)
	rs.Set("core.edit", 3, RuleDeny)

	tests := []struct {
		name    string
		action  string
		groupID int64
		want    Rule
	}{
		{name: "stored allow", action: "core.edit", groupID: 2, want: RuleAllow},
		{name: "stored deny", action: "core.edit", groupID: 3, want: RuleDeny},
		{name: "unknown group", action: "core.edit", groupID: 99, want: RuleNotSet},
		{name: "unknown action", action: "core.delete", groupID: 2, want: RuleNotSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rs.DecisionFor(tt.action, tt.groupID); got != tt.want {
				t.Errorf("DecisionFor(%q, %d) = %v, want %v", tt.action, tt.groupID, got, tt.want)
			}
		})
	}
}

func TestRuleSet_Set_NotSetRemoves(t *testing.T) {
	rs := NewRuleSet(1)
	rs.Set("core.edit", 2, RuleAllow)
	if rs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rs.Len())
	}

	// Storing NotSet must delete the key, never store it.
	rs.Set("core.edit", 2, RuleNotSet)
	if rs.Len() != 0 {
		t.Errorf("Len() after unset = %d, want 0", rs.Len())
	}
	if !rs.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if got := rs.DecisionFor("core.edit", 2); got != RuleNotSet {
		t.Errorf("DecisionFor() after unset = %v, want RuleNotSet", got)
	}
}

func TestRuleSet_Set_Overwrite(t *testing.T) {
	rs := NewRuleSet(1)
	rs.Set("core.edit", 2, RuleAllow)
	rs.Set("core.edit", 2, RuleDeny)

	if got := rs.DecisionFor("core.edit", 2); got != RuleDeny {
		t.Errorf("DecisionFor() = %v, want RuleDeny", got)
	}
	if rs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rs.Len())
	}
}

func TestRuleSet_Entries_Ordered(t *testing.T) {
	rs := NewRuleSet(1)
	rs.Set("core.edit", 3, RuleDeny)
	rs.Set("core.admin", 2, RuleAllow)
	rs.Set("core.edit", 2, RuleAllow)

	entries := rs.Entries()
	want := []RuleEntry{
		{Action: "core.admin", GroupID: 2, Rule: RuleAllow},
		{Action: "core.edit", GroupID: 2, Rule: RuleAllow},
		{Action: "core.edit", GroupID: 3, Rule: RuleDeny},
	}
	if len(entries) != len(want) {
		t.Fatalf("Entries() returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("Entries()[%d] = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestRule_String(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{rule: RuleAllow, want: "allow"},
		{rule: RuleDeny, want: "deny"},
		{rule: RuleNotSet, want: "not_set"},
	}
	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("Rule(%d).String() = %q, want %q", tt.rule, got, tt.want)
		}
	}
}
