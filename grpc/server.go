package identigrpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/blockberries/identiberry"
	"github.com/blockberries/identiberry/keys"
	"github.com/blockberries/identiberry/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ IdentityDirectoryServer = (*GRPCServer)(nil)

// GRPCServer exposes an identity directory over gRPC. Incoming
// identities are validated at this boundary: a malformed message is
// rejected before anything is stored.
type GRPCServer struct {
	dir identiberry.Directory
}

// NewGRPCServer creates a gRPC server wrapping the given directory.
func NewGRPCServer(dir identiberry.Directory) *GRPCServer {
	return &GRPCServer{dir: dir}
}

// Register adds the directory service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterIdentityDirectoryServer(gs, s)
}

// Serve starts the gRPC server on the given listener.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// --- Directory RPCs ---

func (s *GRPCServer) Publish(ctx context.Context, req *PublishRequest) (*PublishResponse, error) {
	identity, err := types.IdentityFromMessage(req.Identity)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	if err := s.dir.Publish(ctx, identity); err != nil {
		return nil, err
	}
	return &PublishResponse{}, nil
}

func (s *GRPCServer) Lookup(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	addr, err := keys.AddressFromBytes(req.AccountAddress)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	identity, err := s.dir.Lookup(ctx, addr)
	if err != nil {
		if errors.Is(err, identiberry.ErrNotFound) {
			return &LookupResponse{}, nil
		}
		return nil, err
	}
	msg := identity.Message()
	return &LookupResponse{Identity: &msg}, nil
}

func (s *GRPCServer) List(ctx context.Context, _ *ListRequest) (*ListResponse, error) {
	identities, err := s.dir.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &ListResponse{Identities: make([]types.ValidatorIdentityMessage, 0, len(identities))}
	for _, identity := range identities {
		resp.Identities = append(resp.Identities, identity.Message())
	}
	return resp, nil
}
