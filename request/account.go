package request

import (
	"net/url"

	"github.com/icodeforyou/genability-go/types/maybe"
)

// accountPath addresses an account by Genability id, or by the caller's own
// id under pid/ when no Genability id is given.
func accountPath(accountID, providerAccountID string) string {
	if accountID != "" {
		return "v1/accounts/" + url.PathEscape(accountID)
	}
	if providerAccountID != "" {
		return "v1/accounts/pid/" + url.PathEscape(providerAccountID)
	}
	return "v1/accounts"
}

type GetAccountRequest struct {
	Base
	AccountID         string
	ProviderAccountID string
}

func (r *GetAccountRequest) Path() string {
	return accountPath(r.AccountID, r.ProviderAccountID)
}

func (r *GetAccountRequest) QueryParams() Params {
	return r.Base.QueryParams()
}

type GetAccountsRequest struct {
	Base
	CustomerOrgID maybe.Maybe[string]
	AccountName   maybe.Maybe[string]
	Owner         maybe.Maybe[string]
	Status        maybe.Maybe[string]
}

func (r *GetAccountsRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "customerOrgId", r.CustomerOrgID)
	p = Add(p, "accountName", r.AccountName)
	p = Add(p, "owner", r.Owner)
	p = Add(p, "status", r.Status)
	return p
}

type DeleteAccountRequest struct {
	Base
	AccountID         string
	ProviderAccountID maybe.Maybe[string]
	// When true the account is removed for good, otherwise only its status
	// changes to DELETED.
	HardDelete maybe.Maybe[bool]
}

func (r *DeleteAccountRequest) Path() string {
	return accountPath(r.AccountID, r.ProviderAccountID.ValueOrDefault(""))
}

func (r *DeleteAccountRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "providerAccountId", r.ProviderAccountID)
	p = Add(p, "hardDelete", r.HardDelete)
	return p
}
