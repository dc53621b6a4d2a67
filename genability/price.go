package genability

import (
	"context"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type PriceService struct {
	client *Client
}

// GetPrice returns the price of a tariff over a date range together with the
// changes within it.
func (s *PriceService) GetPrice(ctx context.Context, r *request.GetPriceRequest) (*types.Response[types.Price], error) {
	r = orEmpty(r)
	return do[types.Price](ctx, s.client, getCall(r.Path(), r))
}
