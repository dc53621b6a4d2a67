package request

import (
	"strconv"
	"time"

	"github.com/icodeforyou/genability-go/isotime"
	"github.com/icodeforyou/genability-go/types/maybe"
)

type GetTariffRequest struct {
	Base
	MasterTariffID     int64
	EffectiveOn        maybe.Maybe[isotime.Date]
	PopulateRates      maybe.Maybe[bool]
	PopulateProperties maybe.Maybe[bool]
}

func (r *GetTariffRequest) Path() string {
	return "public/tariffs/" + strconv.FormatInt(r.MasterTariffID, 10)
}

func (r *GetTariffRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "effectiveOn", r.EffectiveOn)
	p = Add(p, "populateRates", r.PopulateRates)
	p = Add(p, "populateProperties", r.PopulateProperties)
	return p
}

type GetTariffsRequest struct {
	Base
	LseID              maybe.Maybe[int64]
	ZipCode            maybe.Maybe[string]
	CustomerClasses    maybe.Maybe[[]string]
	TariffTypes        maybe.Maybe[[]string]
	EffectiveOn        maybe.Maybe[isotime.Date]
	FromDateTime       maybe.Maybe[time.Time]
	ToDateTime         maybe.Maybe[time.Time]
	AccountID          maybe.Maybe[string]
	PopulateRates      maybe.Maybe[bool]
	PopulateProperties maybe.Maybe[bool]
}

func (r *GetTariffsRequest) QueryParams() Params {
	p := r.Base.QueryParams()
	p = Add(p, "lseId", r.LseID)
	p = Add(p, "zipCode", r.ZipCode)
	p = Add(p, "customerClasses", r.CustomerClasses)
	p = Add(p, "tariffTypes", r.TariffTypes)
	p = Add(p, "effectiveOn", r.EffectiveOn)
	p = Add(p, "fromDateTime", r.FromDateTime)
	p = Add(p, "toDateTime", r.ToDateTime)
	p = Add(p, "accountId", r.AccountID)
	p = Add(p, "populateRates", r.PopulateRates)
	p = Add(p, "populateProperties", r.PopulateProperties)
	return p
}
