// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: monban/v1/monban.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	Access_Resolve_FullMethodName       = "/monban.v1.Access/Resolve"
	Access_ResolveMatrix_FullMethodName = "/monban.v1.Access/ResolveMatrix"
	Access_ListGroups_FullMethodName    = "/monban.v1.Access/ListGroups"
	Access_ListActions_FullMethodName   = "/monban.v1.Access/ListActions"
	Access_ReadRules_FullMethodName     = "/monban.v1.Access/ReadRules"
	Access_WriteRules_FullMethodName    = "/monban.v1.Access/WriteRules"
)

// AccessClient is the client API for Access service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Access resolves hierarchical permission rules for user groups over an
// asset tree.
type AccessClient interface {
	// Resolve computes the effective decision for a single
	// (group, action, asset) combination.
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error)
	// ResolveMatrix computes the full permission grid for an asset:
	// every group crossed with every action of the asset's resource kind.
	ResolveMatrix(ctx context.Context, in *ResolveMatrixRequest, opts ...grpc.CallOption) (*ResolveMatrixResponse, error)
	// ListGroups returns all user groups in tree order.
	ListGroups(ctx context.Context, in *ListGroupsRequest, opts ...grpc.CallOption) (*ListGroupsResponse, error)
	// ListActions returns the actions registered for a resource kind.
	ListActions(ctx context.Context, in *ListActionsRequest, opts ...grpc.CallOption) (*ListActionsResponse, error)
	// ReadRules returns the explicit rules stored for an asset.
	ReadRules(ctx context.Context, in *ReadRulesRequest, opts ...grpc.CallOption) (*ReadRulesResponse, error)
	// WriteRules replaces the explicit rules stored for an asset.
	WriteRules(ctx context.Context, in *WriteRulesRequest, opts ...grpc.CallOption) (*WriteRulesResponse, error)
}

type accessClient struct {
	cc grpc.ClientConnInterface
}

func NewAccessClient(cc grpc.ClientConnInterface) AccessClient {
	return &accessClient{cc}
}

func (c *accessClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveResponse)
	err := c.cc.Invoke(ctx, Access_Resolve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accessClient) ResolveMatrix(ctx context.Context, in *ResolveMatrixRequest, opts ...grpc.CallOption) (*ResolveMatrixResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveMatrixResponse)
	err := c.cc.Invoke(ctx, Access_ResolveMatrix_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accessClient) ListGroups(ctx context.Context, in *ListGroupsRequest, opts ...grpc.CallOption) (*ListGroupsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListGroupsResponse)
	err := c.cc.Invoke(ctx, Access_ListGroups_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accessClient) ListActions(ctx context.Context, in *ListActionsRequest, opts ...grpc.CallOption) (*ListActionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListActionsResponse)
	err := c.cc.Invoke(ctx, Access_ListActions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accessClient) ReadRules(ctx context.Context, in *ReadRulesRequest, opts ...grpc.CallOption) (*ReadRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReadRulesResponse)
	err := c.cc.Invoke(ctx, Access_ReadRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *accessClient) WriteRules(ctx context.Context, in *WriteRulesRequest, opts ...grpc.CallOption) (*WriteRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WriteRulesResponse)
	err := c.cc.Invoke(ctx, Access_WriteRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AccessServer is the server API for Access service.
// All implementations must embed UnimplementedAccessServer
// for forward compatibility.
//
// Access resolves hierarchical permission rules for user groups over an
// asset tree.
type AccessServer interface {
	// Resolve computes the effective decision for a single
	// (group, action, asset) combination.
	Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error)
	// ResolveMatrix computes the full permission grid for an asset:
	// every group crossed with every action of the asset's resource kind.
	ResolveMatrix(context.Context, *ResolveMatrixRequest) (*ResolveMatrixResponse, error)
	// ListGroups returns all user groups in tree order.
	ListGroups(context.Context, *ListGroupsRequest) (*ListGroupsResponse, error)
	// ListActions returns the actions registered for a resource kind.
	ListActions(context.Context, *ListActionsRequest) (*ListActionsResponse, error)
	// ReadRules returns the explicit rules stored for an asset.
	ReadRules(context.Context, *ReadRulesRequest) (*ReadRulesResponse, error)
	// WriteRules replaces the explicit rules stored for an asset.
	WriteRules(context.Context, *WriteRulesRequest) (*WriteRulesResponse, error)
	mustEmbedUnimplementedAccessServer()
}

// UnimplementedAccessServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAccessServer struct{}

func (UnimplementedAccessServer) Resolve(context.Context, *ResolveRequest) (*ResolveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedAccessServer) ResolveMatrix(context.Context, *ResolveMatrixRequest) (*ResolveMatrixResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveMatrix not implemented")
}
func (UnimplementedAccessServer) ListGroups(context.Context, *ListGroupsRequest) (*ListGroupsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGroups not implemented")
}
func (UnimplementedAccessServer) ListActions(context.Context, *ListActionsRequest) (*ListActionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListActions not implemented")
}
func (UnimplementedAccessServer) ReadRules(context.Context, *ReadRulesRequest) (*ReadRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReadRules not implemented")
}
func (UnimplementedAccessServer) WriteRules(context.Context, *WriteRulesRequest) (*WriteRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WriteRules not implemented")
}
func (UnimplementedAccessServer) mustEmbedUnimplementedAccessServer() {}
func (UnimplementedAccessServer) testEmbeddedByValue()                {}

// UnsafeAccessServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AccessServer will
// result in compilation errors.
type UnsafeAccessServer interface {
	mustEmbedUnimplementedAccessServer()
}

func RegisterAccessServer(s grpc.ServiceRegistrar, srv AccessServer) {
	// If the following call pancis, it indicates UnimplementedAccessServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Access_ServiceDesc, srv)
}

func _Access_Resolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccessServer).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Access_Resolve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccessServer).Resolve(ctx, req.(*ResolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Access_ResolveMatrix_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveMatrixRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccessServer).ResolveMatrix(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Access_ResolveMatrix_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccessServer).ResolveMatrix(ctx, req.(*ResolveMatrixRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Access_ListGroups_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGroupsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccessServer).ListGroups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Access_ListGroups_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccessServer).ListGroups(ctx, req.(*ListGroupsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Access_ListActions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListActionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccessServer).ListActions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Access_ListActions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccessServer).ListActions(ctx, req.(*ListActionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Access_ReadRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReadRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccessServer).ReadRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Access_ReadRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccessServer).ReadRules(ctx, req.(*ReadRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Access_WriteRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WriteRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccessServer).WriteRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Access_WriteRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AccessServer).WriteRules(ctx, req.(*WriteRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Access_ServiceDesc is the grpc.ServiceDesc for Access service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Access_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "monban.v1.Access",
	HandlerType: (*AccessServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Resolve",
			Handler:    _Access_Resolve_Handler,
		},
		{
			MethodName: "ResolveMatrix",
			Handler:    _Access_ResolveMatrix_Handler,
		},
		{
			MethodName: "ListGroups",
			Handler:    _Access_ListGroups_Handler,
		},
		{
			MethodName: "ListActions",
			Handler:    _Access_ListActions_Handler,
		},
		{
			MethodName: "ReadRules",
			Handler:    _Access_ReadRules_Handler,
		},
		{
			MethodName: "WriteRules",
			Handler:    _Access_WriteRules_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "monban/v1/monban.proto",
}
