package request

import (
	"strconv"
	"time"

	"github.com/icodeforyou/genability-go/types/maybe"
	"github.com/shopspring/decimal"
)

type GetPriceRequest struct {
	Base
	MasterTariffID    int64
	FromDateTime      maybe.Maybe[time.Time]
	ToDateTime        maybe.Maybe[time.Time]
	TerritoryID       maybe.Maybe[int64]
	ConsumptionAmount maybe.Maybe[decimal.Decimal]
	DemandAmount      maybe.Maybe[decimal.Decimal]
	AccountID         maybe.Maybe[string]
	ProfileID         maybe.Maybe[string]
}

func (r *GetPriceRequest) Path() string {
	return "public/prices/" + strconv.FormatInt(r.MasterTariffID, 10)
}

func (r *GetPriceRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "fromDateTime", r.FromDateTime)
	p = Add(p, "toDateTime", r.ToDateTime)
	p = Add(p, "territoryId", r.TerritoryID)
	p = Add(p, "consumptionAmount", r.ConsumptionAmount)
	p = Add(p, "demandAmount", r.DemandAmount)
	p = Add(p, "accountId", r.AccountID)
	p = Add(p, "profileId", r.ProfileID)
	return p
}
