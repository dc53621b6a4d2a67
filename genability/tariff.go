package genability

import (
	"context"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type TariffService struct {
	client *Client
}

func (s *TariffService) GetTariff(ctx context.Context, r *request.GetTariffRequest) (*types.Response[types.Tariff], error) {
	r = orEmpty(r)
	return do[types.Tariff](ctx, s.client, getCall(r.Path(), r))
}

func (s *TariffService) GetTariffs(ctx context.Context, r *request.GetTariffsRequest) (*types.Response[types.Tariff], error) {
	r = orEmpty(r)
	return do[types.Tariff](ctx, s.client, getCall("public/tariffs", r))
}
