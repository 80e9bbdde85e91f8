package e2e

import (
	"context"
	"testing"
	"time"

	pb "github.com/asakaida/monban/proto/monban/v1"
)

// TestScenario_PermissionEditor drives the calls a permission editing UI
// makes: list groups, list actions, read the current rules, write a change,
// and re-render the matrix.
func TestScenario_PermissionEditor(t *testing.T) {
	testServer := SetupE2ETest(t)
	defer testServer.Teardown(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := testServer.AccessClient

	publicID := testServer.MustInsertGroup(t, "Public", 0, 0)
	managerID := testServer.MustInsertGroup(t, "Manager", publicID, 1)
	rootID := testServer.RootAssetID(t)
	componentID := testServer.MustInsertAsset(t, "com_banners", "Banners", rootID)

	// The editor first loads the group tree.
	groupsResp, err := client.ListGroups(ctx, &pb.ListGroupsRequest{})
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groupsResp.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groupsResp.Groups))
	}
	if groupsResp.Groups[0].Id != publicID {
		t.Errorf("expected root group first, got %d", groupsResp.Groups[0].Id)
	}

	// Then the action columns for the component.
	actionsResp, err := client.ListActions(ctx, &pb.ListActionsRequest{ResourceKind: "com_banners"})
	if err != nil {
		t.Fatalf("ListActions failed: %v", err)
	}
	if len(actionsResp.Actions) != 6 {
		t.Fatalf("expected 6 actions, got %d", len(actionsResp.Actions))
	}

	// A fresh component has no explicit rules.
	readResp, err := client.ReadRules(ctx, &pb.ReadRulesRequest{AssetName: "com_banners"})
	if err != nil {
		t.Fatalf("ReadRules failed: %v", err)
	}
	if len(readResp.Entries) != 0 {
		t.Errorf("expected no stored rules, got %d", len(readResp.Entries))
	}

	// The admin grants manage to Manager and saves.
	writeResp, err := client.WriteRules(ctx, &pb.WriteRulesRequest{
		AssetName: "com_banners",
		Entries: []*pb.RuleEntry{
			{Action: "core.manage", GroupId: managerID, Decision: pb.Decision_DECISION_ALLOW},
		},
	})
	if err != nil {
		t.Fatalf("WriteRules failed: %v", err)
	}
	if writeResp.Written != 1 {
		t.Errorf("expected 1 written entry, got %d", writeResp.Written)
	}

	// The re-rendered matrix shows the new setting as an explicit allow.
	matrixResp, err := client.ResolveMatrix(ctx, &pb.ResolveMatrixRequest{
		AssetId:      componentID,
		ResourceKind: "com_banners",
	})
	if err != nil {
		t.Fatalf("ResolveMatrix failed: %v", err)
	}

	for _, cell := range matrixResp.Cells {
		if cell.GroupId != managerID || cell.Action != "core.manage" {
			continue
		}
		if cell.Explicit != pb.Decision_DECISION_ALLOW {
			t.Errorf("expected explicit allow, got %v", cell.Explicit)
		}
		if cell.Category != pb.Category_CATEGORY_ALLOWED {
			t.Errorf("expected ALLOWED category, got %v", cell.Category)
		}
		if !cell.HasCalculatedSetting {
			t.Error("expected a calculated setting on a component asset")
		}
		return
	}
	t.Fatal("expected a (Manager, core.manage) cell in the matrix")
}
