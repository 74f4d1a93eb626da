package identigrpc

import (
	"context"
	"fmt"

	"github.com/blockberries/identiberry"
	"github.com/blockberries/identiberry/keys"
	"github.com/blockberries/identiberry/types"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ identiberry.Directory = (*Client)(nil)

// Client implements identiberry.Directory against a remote directory
// over gRPC using cramberry serialization. Responses are validated
// on arrival: a remote identity only becomes a typed record if every
// field reconstructs.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote identity directory.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("identiberry client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) Publish(ctx context.Context, identity types.ValidatorIdentity) error {
	req := &PublishRequest{Identity: identity.Message()}
	resp := new(PublishResponse)
	return c.cc.Invoke(ctx, fullMethod("Publish"), req, resp)
}

func (c *Client) Lookup(ctx context.Context, addr keys.AccountAddress) (types.ValidatorIdentity, error) {
	req := &LookupRequest{AccountAddress: addr.Bytes()}
	resp := new(LookupResponse)
	if err := c.cc.Invoke(ctx, fullMethod("Lookup"), req, resp); err != nil {
		return types.ValidatorIdentity{}, err
	}
	if resp.Identity == nil {
		return types.ValidatorIdentity{}, identiberry.ErrNotFound
	}
	identity, err := types.IdentityFromMessage(*resp.Identity)
	if err != nil {
		return types.ValidatorIdentity{}, fmt.Errorf("lookup response: %w", err)
	}
	return identity, nil
}

func (c *Client) List(ctx context.Context) ([]types.ValidatorIdentity, error) {
	req := &ListRequest{}
	resp := new(ListResponse)
	if err := c.cc.Invoke(ctx, fullMethod("List"), req, resp); err != nil {
		return nil, err
	}
	out := make([]types.ValidatorIdentity, 0, len(resp.Identities))
	for i, msg := range resp.Identities {
		identity, err := types.IdentityFromMessage(msg)
		if err != nil {
			return nil, fmt.Errorf("list response entry %d: %w", i, err)
		}
		out = append(out, identity)
	}
	return out, nil
}
