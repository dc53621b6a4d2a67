package types

import (
	"time"

	"github.com/icodeforyou/genability-go/isotime"
	"github.com/icodeforyou/genability-go/slice"
	"github.com/shopspring/decimal"
)

const PriceRestType = "Price"

type Price struct {
	MasterTariffID int64            `json:"masterTariffId"`
	TariffName     string           `json:"tariffName,omitempty"`
	Description    string           `json:"description,omitempty"`
	FromDateTime   isotime.DateTime `json:"fromDateTime,omitzero"`
	ToDateTime     isotime.DateTime `json:"toDateTime,omitzero"`
	Currency       string           `json:"currency,omitempty"`
	RateAmount     decimal.Decimal  `json:"rateAmount"`
	PriceChanges   []PriceChange    `json:"priceChanges,omitempty"`
}

// PriceChange is a period during which the rate differs from the price's
// starting RateAmount.
type PriceChange struct {
	Name          string           `json:"name"`
	FromDateTime  isotime.DateTime `json:"fromDateTime"`
	ToDateTime    isotime.DateTime `json:"toDateTime"`
	RateAmount    decimal.Decimal  `json:"rateAmount"`
	RateMeanDelta decimal.Decimal  `json:"rateMeanDelta"`
	Accuracy      *decimal.Decimal `json:"accuracy,omitempty"`
}

// Contains reports whether t falls in [FromDateTime, ToDateTime).
func (pc PriceChange) Contains(t time.Time) bool {
	return !t.Before(pc.FromDateTime.Time) && t.Before(pc.ToDateTime.Time)
}

// RateAt returns the rate in effect at t. Change periods are half open,
// [from, to). Outside every change the price's own RateAmount applies; ok is
// false when t is outside the price's range.
func (p Price) RateAt(t time.Time) (rate decimal.Decimal, ok bool) {
	if !p.FromDateTime.IsZero() && t.Before(p.FromDateTime.Time) {
		return decimal.Zero, false
	}
	if !p.ToDateTime.IsZero() && !t.Before(p.ToDateTime.Time) {
		return decimal.Zero, false
	}
	if pc, found := slice.Find(p.PriceChanges, func(pc PriceChange) bool { return pc.Contains(t) }); found {
		return pc.RateAmount, true
	}
	return p.RateAmount, true
}
