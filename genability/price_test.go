package genability

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
	"github.com/icodeforyou/genability-go/types/maybe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceBody = `{"status":"success","type":"Price","count":1,"results":[{
	"masterTariffId":520,"tariffName":"Residential","currency":"USD","rateAmount":0.2,
	"fromDateTime":"2025-01-01T00:00:00.000-08:00","toDateTime":"2025-01-02T00:00:00.000-08:00",
	"priceChanges":[
		{"name":"Peak","fromDateTime":"2025-01-01T16:00:00.000-08:00","toDateTime":"2025-01-01T21:00:00.000-08:00","rateAmount":0.4,"rateMeanDelta":0.1}
	]}]}`

func TestGetPrice(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, priceBody)
	c := newTestClient(t, fs)

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.FixedZone("PST", -8*3600))
	res, err := c.Prices.GetPrice(bg, &request.GetPriceRequest{
		MasterTariffID: 520,
		FromDateTime:   maybe.Some(from),
		ToDateTime:     maybe.Some(from.AddDate(0, 0, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, types.StatusSuccess, res.Status)
	assert.Equal(t, types.PriceRestType, res.Type)
	require.Len(t, res.Results, 1)

	price := res.Results[0]
	require.Len(t, price.PriceChanges, 1)
	assert.Equal(t, "Peak", price.PriceChanges[0].Name)

	rate, ok := price.RateAt(from.Add(17 * time.Hour))
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.4").Equal(rate))

	got := fs.last(t)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/rest/public/prices/520", got.Path)
	q, err := url.ParseQuery(got.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T00:00:00.000-08:00", q.Get("fromDateTime"))
	assert.Equal(t, "2025-01-02T00:00:00.000-08:00", q.Get("toDateTime"))
}

func TestGetPriceOnlyFrom(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, priceBody)
	c := newTestClient(t, fs)

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.Prices.GetPrice(bg, &request.GetPriceRequest{MasterTariffID: 520, FromDateTime: maybe.Some(from)})
	require.NoError(t, err)

	q, err := url.ParseQuery(fs.last(t).RawQuery)
	require.NoError(t, err)
	assert.True(t, q.Has("fromDateTime"))
	assert.False(t, q.Has("toDateTime"))
}

func TestGetPriceTariffNotFound(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"status":"error","type":"Price","count":0,"results":[],
		"errors":[{"code":"ObjectNotFound","message":"Tariff not found","objectName":"Tariff"}]}`)
	c := newTestClient(t, fs)

	res, err := c.Prices.GetPrice(bg, &request.GetPriceRequest{MasterTariffID: 1})
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "ObjectNotFound", res.Errors[0].Code)

	var apiErr *types.APIError
	require.ErrorAs(t, res.Err(), &apiErr)
	assert.Equal(t, types.PriceRestType, apiErr.Type)
}
