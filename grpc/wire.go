package identigrpc

import "github.com/blockberries/identiberry/types"

// Transport-specific request/response wrappers for the directory
// RPCs. These exist only at the gRPC serialization boundary; the
// identity itself always travels as types.ValidatorIdentityMessage.

// PublishRequest wraps the parameter for Directory.Publish.
type PublishRequest struct {
	Identity types.ValidatorIdentityMessage `cramberry:"1"`
}

// PublishResponse is the (empty) response for Directory.Publish.
type PublishResponse struct{}

// LookupRequest wraps the parameter for Directory.Lookup.
type LookupRequest struct {
	AccountAddress []byte `cramberry:"1"`
}

// LookupResponse wraps the return value of Directory.Lookup. A nil
// Identity means no identity is published for the address.
type LookupResponse struct {
	Identity *types.ValidatorIdentityMessage `cramberry:"1"`
}

// ListRequest is the (empty) request for Directory.List.
type ListRequest struct{}

// ListResponse wraps the return value of Directory.List, ordered by
// account address.
type ListResponse struct {
	Identities []types.ValidatorIdentityMessage `cramberry:"1"`
}
