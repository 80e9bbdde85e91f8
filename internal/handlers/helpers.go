package handlers

import (
	"errors"
	"fmt"

	"github.com/asakaida/monban/internal/entities"
	"github.com/asakaida/monban/internal/services/resolver"
	pb "github.com/asakaida/monban/proto/monban/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// === Shared Helper Functions for all handlers ===

// decisionToProto converts a domain rule value to its proto representation
func decisionToProto(rule entities.Rule) pb.Decision {
	switch rule {
	case entities.RuleAllow:
		return pb.Decision_DECISION_ALLOW
	case entities.RuleDeny:
		return pb.Decision_DECISION_DENY
	default:
		return pb.Decision_DECISION_NOT_SET
	}
}

// inheritedToProto converts the optional inherited rule; a missing
// inherited rule maps to DECISION_NOT_SET.
func inheritedToProto(rule *entities.Rule) pb.Decision {
	if rule == nil {
		return pb.Decision_DECISION_NOT_SET
	}
	return decisionToProto(*rule)
}

// protoToDecision converts a proto decision to the domain rule value
func protoToDecision(d pb.Decision) (entities.Rule, error) {
	switch d {
	case pb.Decision_DECISION_NOT_SET:
		return entities.RuleNotSet, nil
	case pb.Decision_DECISION_ALLOW:
		return entities.RuleAllow, nil
	case pb.Decision_DECISION_DENY:
		return entities.RuleDeny, nil
	default:
		return entities.RuleNotSet, fmt.Errorf("unknown decision: %v", d)
	}
}

// categoryToProto converts an editor category to its proto representation
func categoryToProto(c resolver.Category) pb.Category {
	switch c {
	case resolver.CategoryNotAllowed:
		return pb.Category_CATEGORY_NOT_ALLOWED
	case resolver.CategoryAllowed:
		return pb.Category_CATEGORY_ALLOWED
	case resolver.CategoryAllowedLocked:
		return pb.Category_CATEGORY_ALLOWED_LOCKED
	case resolver.CategoryNotAllowedLocked:
		return pb.Category_CATEGORY_NOT_ALLOWED_LOCKED
	default:
		return pb.Category_CATEGORY_UNSPECIFIED
	}
}

// matrixCellToProto converts a resolved matrix cell to its proto representation
func matrixCellToProto(cell *resolver.MatrixCell) *pb.MatrixCell {
	return &pb.MatrixCell{
		GroupId:              cell.GroupID,
		GroupTitle:           cell.GroupTitle,
		GroupDepth:           int32(cell.GroupDepth),
		Action:               cell.Action,
		Explicit:             decisionToProto(cell.Explicit),
		Inherited:            inheritedToProto(cell.Inherited),
		Effective:            decisionToProto(cell.Effective),
		Category:             categoryToProto(cell.Category),
		Conflict:             cell.Conflict,
		Locked:               cell.Locked,
		HasCalculatedSetting: cell.HasCalculatedSetting,
	}
}

// mapDomainError converts a domain error to the matching gRPC status.
// Unknown entities map to NotFound; a corrupt hierarchy maps to
// FailedPrecondition because the store needs repair before the call can
// succeed; everything else is Internal.
func mapDomainError(op string, err error) error {
	var notFound *entities.NotFoundError
	if errors.As(err, &notFound) {
		return status.Errorf(codes.NotFound, "%s: %v", op, notFound)
	}
	var integrity *entities.TreeIntegrityError
	if errors.As(err, &integrity) {
		return status.Errorf(codes.FailedPrecondition, "%s: %v", op, integrity)
	}
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}
