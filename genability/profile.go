package genability

import (
	"context"
	"net/http"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type ProfileService struct {
	client *Client
}

func (s *ProfileService) AddProfile(ctx context.Context, profile types.Profile) (*types.Response[types.Profile], error) {
	cl, err := jsonCall(http.MethodPost, "v1/profiles", profile)
	if err != nil {
		return nil, err
	}
	return do[types.Profile](ctx, s.client, cl)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, profile types.Profile) (*types.Response[types.Profile], error) {
	cl, err := jsonCall(http.MethodPut, "v1/profiles", profile)
	if err != nil {
		return nil, err
	}
	return do[types.Profile](ctx, s.client, cl)
}

func (s *ProfileService) GetProfile(ctx context.Context, r *request.GetProfileRequest) (*types.Response[types.Profile], error) {
	r = orEmpty(r)
	return do[types.Profile](ctx, s.client, getCall(r.Path(), r))
}

func (s *ProfileService) GetProfiles(ctx context.Context, r *request.GetProfilesRequest) (*types.Response[types.Profile], error) {
	r = orEmpty(r)
	return do[types.Profile](ctx, s.client, getCall("v1/profiles", r))
}

func (s *ProfileService) DeleteProfile(ctx context.Context, r *request.DeleteProfileRequest) (*types.Response[types.Profile], error) {
	r = orEmpty(r)
	return do[types.Profile](ctx, s.client, call{method: http.MethodDelete, path: r.Path(), params: r.QueryParams()})
}
