package genability

import (
	"net/http"
	"testing"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, envelope(t, types.PriceRestType))
	reg := prometheus.NewPedanticRegistry()

	c := newTestClient(t, fs, WithMetrics(reg))
	_, err := c.Prices.GetPrice(bg, &request.GetPriceRequest{MasterTariffID: 520})
	require.NoError(t, err)

	// A second client on the same registry shares the collectors.
	c2 := newTestClient(t, fs, WithMetrics(reg))
	_, err = c2.Prices.GetPrice(bg, &request.GetPriceRequest{MasterTariffID: 520})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "genability_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series for code=200, method=get")

	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() == "genability_client_requests_total" {
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, total)

	durations, err := testutil.GatherAndCount(reg, "genability_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, durations)
}
