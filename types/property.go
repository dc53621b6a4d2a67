package types

import (
	"github.com/icodeforyou/genability-go/isotime"
	"github.com/shopspring/decimal"
)

const (
	PropertyDataRestType = "PropertyData"
	PropertyKeyRestType  = "PropertyKey"
)

// PropertyData is a value for a property key, e.g. zipCode or territoryId,
// attached to an account or profile.
type PropertyData struct {
	KeyName      string           `json:"keyName"`
	DisplayName  string           `json:"displayName,omitempty"`
	FromDateTime isotime.DateTime `json:"fromDateTime,omitzero"`
	ToDateTime   isotime.DateTime `json:"toDateTime,omitzero"`
	Period       string           `json:"period,omitempty"`
	Unit         string           `json:"unit,omitempty"`
	DataType     string           `json:"dataType,omitempty"`
	DataValue    string           `json:"dataValue,omitempty"`
	Accuracy     *decimal.Decimal `json:"accuracy,omitempty"`
}

type PropertyKey struct {
	KeyName      string           `json:"keyName"`
	DisplayName  string           `json:"displayName,omitempty"`
	Family       string           `json:"family,omitempty"`
	KeySpace     string           `json:"keyspace,omitempty"`
	Description  string           `json:"description,omitempty"`
	DataType     string           `json:"dataType,omitempty"`
	QuantityUnit string           `json:"quantityUnit,omitempty"`
	Choices      []PropertyChoice `json:"choices,omitempty"`
}

type PropertyChoice struct {
	DisplayValue string           `json:"displayValue"`
	Value        string           `json:"value"`
	DataValue    string           `json:"dataValue,omitempty"`
	Likelihood   *decimal.Decimal `json:"likelihood,omitempty"`
}
