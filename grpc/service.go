package identigrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/identiberry.v1.IdentityDirectory"

// IdentityDirectoryServer is the server-side interface for the
// identity directory gRPC service.
type IdentityDirectoryServer interface {
	Publish(context.Context, *PublishRequest) (*PublishResponse, error)
	Lookup(context.Context, *LookupRequest) (*LookupResponse, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
}

// RegisterIdentityDirectoryServer registers the IdentityDirectoryServer
// on a gRPC server.
func RegisterIdentityDirectoryServer(s *grpc.Server, srv IdentityDirectoryServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerPublish(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(PublishRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(IdentityDirectoryServer).Publish(ctx, req)
}

func handlerLookup(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(LookupRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(IdentityDirectoryServer).Lookup(ctx, req)
}

func handlerList(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ListRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(IdentityDirectoryServer).List(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the
// identity directory.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*IdentityDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Publish", Handler: handlerPublish},
		{MethodName: "Lookup", Handler: handlerLookup},
		{MethodName: "List", Handler: handlerList},
	},
	Metadata: "github.com/blockberries/identiberry/v1/directory.cram",
}
