package types

import (
	"github.com/icodeforyou/genability-go/isotime"
	"github.com/shopspring/decimal"
)

const TariffRestType = "Tariff"

type Tariff struct {
	TariffID           int64            `json:"tariffId,omitempty"`
	MasterTariffID     int64            `json:"masterTariffId,omitempty"`
	TariffCode         string           `json:"tariffCode,omitempty"`
	TariffName         string           `json:"tariffName,omitempty"`
	LseID              int64            `json:"lseId,omitempty"`
	LseName            string           `json:"lseName,omitempty"`
	ServiceType        string           `json:"serviceType,omitempty"`
	TariffType         string           `json:"tariffType,omitempty"`
	CustomerClass      string           `json:"customerClass,omitempty"`
	CustomerLikelihood *decimal.Decimal `json:"customerLikelihood,omitempty"`
	TerritoryID        int64            `json:"territoryId,omitempty"`
	EffectiveDate      isotime.DateTime `json:"effectiveDate,omitzero"`
	EndDate            isotime.DateTime `json:"endDate,omitzero"`
	TimeZone           string           `json:"timeZone,omitempty"`
	BillingPeriod      string           `json:"billingPeriod,omitempty"`
	Currency           string           `json:"currency,omitempty"`
	HasTimeOfUseRates  bool             `json:"hasTimeOfUseRates,omitempty"`
	HasTieredRates     bool             `json:"hasTieredRates,omitempty"`
	Properties         []PropertyKey    `json:"properties,omitempty"`
}
