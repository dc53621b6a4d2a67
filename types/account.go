package types

const AccountRestType = "Account"

type Account struct {
	AccountID         string                  `json:"accountId,omitempty"`
	ProviderAccountID string                  `json:"providerAccountId,omitempty"`
	AccountName       string                  `json:"accountName,omitempty"`
	CustomerOrgID     string                  `json:"customerOrgId,omitempty"`
	CustomerOrgName   string                  `json:"customerOrgName,omitempty"`
	Owner             string                  `json:"owner,omitempty"`
	Status            string                  `json:"status,omitempty"`
	Type              string                  `json:"type,omitempty"`
	Properties        map[string]PropertyData `json:"properties,omitempty"`
	Tariffs           []Tariff                `json:"tariffs,omitempty"`
}
