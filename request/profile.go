package request

import (
	"net/url"
	"time"

	"github.com/icodeforyou/genability-go/types"
	"github.com/icodeforyou/genability-go/types/maybe"
)

func profilePath(profileID, providerProfileID string) string {
	if profileID != "" {
		return "v1/profiles/" + url.PathEscape(profileID)
	}
	if providerProfileID != "" {
		return "v1/profiles/pid/" + url.PathEscape(providerProfileID)
	}
	return "v1/profiles"
}

type GetProfileRequest struct {
	Base
	ProfileID         string
	ProviderProfileID string
	PopulateReadings  maybe.Maybe[bool]
	PopulateBaseline  maybe.Maybe[bool]
	FromDateTime      maybe.Maybe[time.Time]
	ToDateTime        maybe.Maybe[time.Time]
	GroupBy           maybe.Maybe[types.GroupBy]
	ClipBy            maybe.Maybe[types.ClipBy]
}

func (r *GetProfileRequest) Path() string {
	return profilePath(r.ProfileID, r.ProviderProfileID)
}

func (r *GetProfileRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "populateReadings", r.PopulateReadings)
	p = Add(p, "populateBaseline", r.PopulateBaseline)
	p = Add(p, "fromDateTime", r.FromDateTime)
	p = Add(p, "toDateTime", r.ToDateTime)
	p = Add(p, "groupBy", r.GroupBy)
	p = Add(p, "clipBy", r.ClipBy)
	return p
}

type GetProfilesRequest struct {
	Base
	AccountID         maybe.Maybe[string]
	ProviderAccountID maybe.Maybe[string]
	ServiceTypes      maybe.Maybe[[]string]
}

func (r *GetProfilesRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "accountId", r.AccountID)
	p = Add(p, "providerAccountId", r.ProviderAccountID)
	p = Add(p, "serviceTypes", r.ServiceTypes)
	return p
}

type DeleteProfileRequest struct {
	Base
	ProfileID         string
	ProviderProfileID string
}

func (r *DeleteProfileRequest) Path() string {
	return profilePath(r.ProfileID, r.ProviderProfileID)
}

func (r *DeleteProfileRequest) QueryParams() Params {
	return r.Base.QueryParams()
}
