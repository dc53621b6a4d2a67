package genability

import (
	"context"
	"net/http"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type AccountService struct {
	client *Client
}

// AddAccount creates an account. Leave AccountID empty, the API assigns it.
func (s *AccountService) AddAccount(ctx context.Context, account types.Account) (*types.Response[types.Account], error) {
	cl, err := jsonCall(http.MethodPost, "v1/accounts", account)
	if err != nil {
		return nil, err
	}
	return do[types.Account](ctx, s.client, cl)
}

func (s *AccountService) UpdateAccount(ctx context.Context, account types.Account) (*types.Response[types.Account], error) {
	cl, err := jsonCall(http.MethodPut, "v1/accounts", account)
	if err != nil {
		return nil, err
	}
	return do[types.Account](ctx, s.client, cl)
}

func (s *AccountService) GetAccount(ctx context.Context, r *request.GetAccountRequest) (*types.Response[types.Account], error) {
	r = orEmpty(r)
	return do[types.Account](ctx, s.client, getCall(r.Path(), r))
}

func (s *AccountService) GetAccounts(ctx context.Context, r *request.GetAccountsRequest) (*types.Response[types.Account], error) {
	r = orEmpty(r)
	return do[types.Account](ctx, s.client, getCall("v1/accounts", r))
}

func (s *AccountService) DeleteAccount(ctx context.Context, r *request.DeleteAccountRequest) (*types.Response[types.Account], error) {
	r = orEmpty(r)
	return do[types.Account](ctx, s.client, call{
		method: http.MethodDelete,
		path:   r.Path(),
		params: r.QueryParams(),
	})
}
