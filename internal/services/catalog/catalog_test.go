package catalog

import (
	"testing"

	"github.com/asakaida/monban/internal/entities"
)

func TestCatalog_Actions_Base(t *testing.T) {
	c := New()

	actions := c.Actions("com_content")
	wantNames := []string{
		"core.admin",
		"core.manage",
		"core.create",
		"core.delete",
		"core.edit",
		"core.edit.state",
	}
	if len(actions) != len(wantNames) {
		t.Fatalf("Actions() returned %d actions, want %d", len(actions), len(wantNames))
	}
	for i, a := range actions {
		if a.Name != wantNames[i] {
			t.Errorf("Actions()[%d].Name = %q, want %q", i, a.Name, wantNames[i])
		}
	}
}

func TestCatalog_Register(t *testing.T) {
	c := New()

	err := c.Register("com_content",
		&entities.Action{Name: "core.edit.own", Title: "Edit Own"},
	)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	actions := c.Actions("com_content")
	if len(actions) != 7 {
		t.Fatalf("Actions() returned %d actions, want 7", len(actions))
	}
	if actions[6].Name != "core.edit.own" {
		t.Errorf("Actions()[6].Name = %q, want core.edit.own", actions[6].Name)
	}

	// Extensions are scoped to their resource kind.
	if got := c.Actions("com_menus"); len(got) != 6 {
		t.Errorf("Actions(com_menus) returned %d actions, want 6", len(got))
	}
}

func TestCatalog_Register_Duplicate(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		action *entities.Action
	}{
		{name: "duplicate of base action", action: &entities.Action{Name: "core.edit"}},
		{name: "duplicate of super admin action", action: &entities.Action{Name: "core.admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Register("com_content", tt.action); err == nil {
				t.Error("Register() expected error for duplicate action name")
			}
		})
	}

	// Registering the same extension twice must also fail.
	if err := c.Register("com_content", &entities.Action{Name: "core.edit.own"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := c.Register("com_content", &entities.Action{Name: "core.edit.own"}); err == nil {
		t.Error("Register() expected error for repeated extension")
	}
}

func TestCatalog_Register_Invalid(t *testing.T) {
	c := New()

	if err := c.Register("", &entities.Action{Name: "x"}); err == nil {
		t.Error("Register() expected error for empty resource kind")
	}
	if err := c.Register("com_content", &entities.Action{}); err == nil {
		t.Error("Register() expected error for empty action name")
	}
}

func TestCatalog_Get(t *testing.T) {
	c := New()
	c.Register("com_content", &entities.Action{Name: "core.edit.own", Title: "Edit Own"})

	a, err := c.Get("com_content", "core.edit.own")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if a.Title != "Edit Own" {
		t.Errorf("Get().Title = %q, want Edit Own", a.Title)
	}

	if _, err := c.Get("com_content", "core.unknown"); err == nil {
		t.Error("Get() expected error for unknown action")
	}
	if _, err := c.Get("com_menus", "core.edit.own"); err == nil {
		t.Error("Get() expected error for extension of another kind")
	}
}
