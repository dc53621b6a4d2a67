package request

import (
	"net/url"

	"github.com/icodeforyou/genability-go/types/maybe"
)

type GetPropertyKeyRequest struct {
	Base
	KeyName string
}

func (r *GetPropertyKeyRequest) Path() string {
	return "public/properties/" + url.PathEscape(r.KeyName)
}

func (r *GetPropertyKeyRequest) QueryParams() Params {
	return r.Base.QueryParams()
}

type GetPropertyKeysRequest struct {
	Base
	EntityID   maybe.Maybe[int64]
	EntityType maybe.Maybe[string]
	KeySpace   maybe.Maybe[string]
	Family     maybe.Maybe[string]
}

func (r *GetPropertyKeysRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "entityId", r.EntityID)
	p = Add(p, "entityType", r.EntityType)
	p = Add(p, "keySpace", r.KeySpace)
	p = Add(p, "family", r.Family)
	return p
}
