package types

import (
	"github.com/icodeforyou/genability-go/isotime"
	"github.com/shopspring/decimal"
)

const (
	ProfileRestType     = "UsageProfile"
	ReadingDataRestType = "ReadingData"
)

// Profile is a usage profile: a series of readings that belongs to an account.
type Profile struct {
	ProfileID         string                  `json:"profileId,omitempty"`
	ProviderProfileID string                  `json:"providerProfileId,omitempty"`
	ProfileName       string                  `json:"profileName,omitempty"`
	AccountID         string                  `json:"accountId,omitempty"`
	ProviderAccountID string                  `json:"providerAccountId,omitempty"`
	Description       string                  `json:"description,omitempty"`
	ServiceTypes      string                  `json:"serviceTypes,omitempty"`
	IsDefault         *bool                   `json:"isDefault,omitempty"`
	Properties        map[string]PropertyData `json:"properties,omitempty"`
	ReadingData       []ReadingData           `json:"readingData,omitempty"`
}

type ReadingData struct {
	FromDateTime  isotime.DateTime `json:"fromDateTime"`
	ToDateTime    isotime.DateTime `json:"toDateTime"`
	QuantityUnit  string           `json:"quantityUnit"`
	QuantityValue decimal.Decimal  `json:"quantityValue"`
}
