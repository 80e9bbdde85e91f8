package handlers

import (
	"context"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/repositories"
	"github.com/asakaida/monban/internal/services/catalog"
	"github.com/asakaida/monban/internal/services/resolver"
	pb "github.com/asakaida/monban/proto/monban/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AccessHandler handles Access service gRPC requests
type AccessHandler struct {
	pb.UnimplementedAccessServer
	resolver  resolver.ResolverInterface
	matrix    resolver.MatrixInterface
	catalog   *catalog.Catalog
	groupRepo repositories.GroupRepository
	ruleRepo  repositories.RuleRepository
	assetRepo repositories.AssetRepository
}

// NewAccessHandler creates a new AccessHandler
func NewAccessHandler(
	resolverService resolver.ResolverInterface,
	matrixService resolver.MatrixInterface,
	actionCatalog *catalog.Catalog,
	groupRepo repositories.GroupRepository,
	ruleRepo repositories.RuleRepository,
	assetRepo repositories.AssetRepository,
) *AccessHandler {
	return &AccessHandler{
		resolver:  resolverService,
		matrix:    matrixService,
		catalog:   actionCatalog,
		groupRepo: groupRepo,
		ruleRepo:  ruleRepo,
		assetRepo: assetRepo,
	}
}

// resolveAssetID resolves the asset reference of a request: a positive id
// is used as-is, otherwise the name is looked up.
func (h *AccessHandler) resolveAssetID(ctx context.Context, assetID int64, assetName string) (int64, error) {
	if assetID > 0 {
		return assetID, nil
	}
	if assetName == "" {
		return 0, status.Error(codes.InvalidArgument, "asset_id or asset_name is required")
	}
	id, err := h.assetRepo.FindByName(ctx, assetName)
	if err != nil {
		return 0, mapDomainError("failed to resolve asset name", err)
	}
	return id, nil
}

// Resolve handles the Resolve RPC
func (h *AccessHandler) Resolve(ctx context.Context, req *pb.ResolveRequest) (*pb.ResolveResponse, error) {
	if req.GroupId <= 0 {
		return nil, status.Error(codes.InvalidArgument, "group_id is required")
	}
	if req.Action == "" {
		return nil, status.Error(codes.InvalidArgument, "action is required")
	}

	assetID, err := h.resolveAssetID(ctx, req.AssetId, req.AssetName)
	if err != nil {
		return nil, err
	}

	res, err := h.resolver.Resolve(ctx, req.GroupId, req.Action, assetID)
	if err != nil {
		return nil, mapDomainError("resolve failed", err)
	}

	isSuperAdmin := req.Action == h.resolver.SuperAdminAction()
	category := resolver.Classify(res, isSuperAdmin, res.HasParentGroup, res.HasOwningComponent)

	return &pb.ResolveResponse{
		Explicit:  decisionToProto(res.Explicit),
		Inherited: inheritedToProto(res.Inherited),
		Effective: decisionToProto(res.Effective),
		Category:  categoryToProto(category),
		Locked:    res.Locked,
		Conflict:  res.Conflict,
	}, nil
}

// ResolveMatrix handles the ResolveMatrix RPC
func (h *AccessHandler) ResolveMatrix(ctx context.Context, req *pb.ResolveMatrixRequest) (*pb.ResolveMatrixResponse, error) {
	if req.Offset < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset must not be negative")
	}
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}

	assetID, err := h.resolveAssetID(ctx, req.AssetId, req.AssetName)
	if err != nil {
		return nil, err
	}

	result, err := h.matrix.ResolveMatrix(ctx, &resolver.MatrixRequest{
		AssetID:      assetID,
		ResourceKind: req.ResourceKind,
		Offset:       int(req.Offset),
		Limit:        int(req.Limit),
	})
	if err != nil {
		return nil, mapDomainError("resolve matrix failed", err)
	}

	cells := make([]*pb.MatrixCell, 0, len(result.Cells))
	for _, cell := range result.Cells {
		cells = append(cells, matrixCellToProto(cell))
	}

	return &pb.ResolveMatrixResponse{
		AssetId:     result.AssetID,
		TotalGroups: int32(result.TotalGroups),
		Cells:       cells,
	}, nil
}

// ListGroups handles the ListGroups RPC
func (h *AccessHandler) ListGroups(ctx context.Context, req *pb.ListGroupsRequest) (*pb.ListGroupsResponse, error) {
	groups, err := h.groupRepo.ListGroups(ctx)
	if err != nil {
		return nil, mapDomainError("failed to list groups", err)
	}

	// Re-validate through the tree so a corrupt hierarchy is reported
	// instead of returned, and groups come back in tree order.
	tree, err := entities.NewGroupTree(groups)
	if err != nil {
		return nil, mapDomainError("failed to build group tree", err)
	}

	protoGroups := make([]*pb.Group, 0, tree.Len())
	for _, g := range tree.AllGroups() {
		protoGroups = append(protoGroups, &pb.Group{
			Id:       g.ID,
			Title:    g.Title,
			ParentId: g.ParentID,
			Depth:    int32(g.Depth),
		})
	}

	return &pb.ListGroupsResponse{Groups: protoGroups}, nil
}

// ListActions handles the ListActions RPC
func (h *AccessHandler) ListActions(ctx context.Context, req *pb.ListActionsRequest) (*pb.ListActionsResponse, error) {
	actions := h.catalog.Actions(req.ResourceKind)

	protoActions := make([]*pb.Action, 0, len(actions))
	for _, a := range actions {
		protoActions = append(protoActions, &pb.Action{
			Name:        a.Name,
			Title:       a.Title,
			Description: a.Description,
		})
	}

	return &pb.ListActionsResponse{Actions: protoActions}, nil
}

// ReadRules handles the ReadRules RPC
func (h *AccessHandler) ReadRules(ctx context.Context, req *pb.ReadRulesRequest) (*pb.ReadRulesResponse, error) {
	assetID, err := h.resolveAssetID(ctx, req.AssetId, req.AssetName)
	if err != nil {
		return nil, err
	}

	ruleSet, err := h.ruleRepo.LoadRuleSet(ctx, assetID)
	if err != nil {
		return nil, mapDomainError("failed to load rules", err)
	}

	entries := make([]*pb.RuleEntry, 0, ruleSet.Len())
	for _, e := range ruleSet.Entries() {
		entries = append(entries, &pb.RuleEntry{
			Action:   e.Action,
			GroupId:  e.GroupID,
			Decision: decisionToProto(e.Rule),
		})
	}

	return &pb.ReadRulesResponse{AssetId: assetID, Entries: entries}, nil
}

// WriteRules handles the WriteRules RPC
func (h *AccessHandler) WriteRules(ctx context.Context, req *pb.WriteRulesRequest) (*pb.WriteRulesResponse, error) {
	assetID, err := h.resolveAssetID(ctx, req.AssetId, req.AssetName)
	if err != nil {
		return nil, err
	}

	ruleSet := entities.NewRuleSet(assetID)
	for i, entry := range req.Entries {
		if entry.Action == "" {
			return nil, status.Errorf(codes.InvalidArgument, "entry %d: action is required", i)
		}
		if entry.GroupId <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "entry %d: group_id is required", i)
		}
		rule, err := protoToDecision(entry.Decision)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "entry %d: %v", i, err)
		}
		ruleSet.Set(entry.Action, entry.GroupId, rule)
	}

	if err := h.ruleRepo.SaveRuleSet(ctx, ruleSet); err != nil {
		return nil, mapDomainError("failed to save rules", err)
	}

	return &pb.WriteRulesResponse{AssetId: assetID, Written: int64(ruleSet.Len())}, nil
}
