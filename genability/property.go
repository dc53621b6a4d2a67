package genability

import (
	"context"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type PropertyService struct {
	client *Client
}

func (s *PropertyService) GetPropertyKey(ctx context.Context, r *request.GetPropertyKeyRequest) (*types.Response[types.PropertyKey], error) {
	r = orEmpty(r)
	return do[types.PropertyKey](ctx, s.client, getCall(r.Path(), r))
}

func (s *PropertyService) GetPropertyKeys(ctx context.Context, r *request.GetPropertyKeysRequest) (*types.Response[types.PropertyKey], error) {
	r = orEmpty(r)
	return do[types.PropertyKey](ctx, s.client, getCall("public/properties", r))
}
