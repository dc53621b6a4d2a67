package genability

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/icodeforyou/genability-go/isotime"
	"github.com/icodeforyou/genability-go/types"
	"github.com/stretchr/testify/require"
)

const (
	testAppID  = "test-app-id"
	testAppKey = "test-app-key"
)

// recorded is what the fake server saw of one request.
type recorded struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        []byte
	User        string
	Pass        string
	AuthOK      bool
}

type fakeServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recorded
}

// newFakeServer answers every request with status and body and remembers
// what it received.
func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		user, pass, ok := r.BasicAuth()
		fs.mu.Lock()
		fs.requests = append(fs.requests, recorded{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        data,
			User:        user,
			Pass:        pass,
			AuthOK:      ok,
		})
		fs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) last(t *testing.T) recorded {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.requests, "server received no request")
	return fs.requests[len(fs.requests)-1]
}

func newTestClient(t *testing.T, fs *fakeServer, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithRestAPIServer(fs.URL + "/rest"), WithHTTPClient(fs.Client())}, opts...)
	c, err := New(testAppID, testAppKey, opts...)
	require.NoError(t, err)
	return c
}

func envelope(t *testing.T, restType string, results ...any) string {
	t.Helper()
	if results == nil {
		results = []any{}
	}
	data, err := json.Marshal(map[string]any{
		"status":  types.StatusSuccess,
		"type":    restType,
		"count":   len(results),
		"results": results,
	})
	require.NoError(t, err)
	return string(data)
}

// testAccount is an account on PG&E E-1 (master tariff 521), whose only
// required calculation property is territoryId. zipCode is set as well.
func testAccount(t *testing.T) types.Account {
	t.Helper()
	pacific, err := time.LoadLocation("US/Pacific")
	require.NoError(t, err)

	return types.Account{
		AccountName:       "Go Client Lib Test Account - CAN DELETE",
		ProviderAccountID: "TEST-" + uuid.NewString(),
		Properties: map[string]types.PropertyData{
			"zipCode":     {KeyName: "zipCode", DataValue: "94115"},
			"territoryId": {KeyName: "territoryId", DataValue: "3538"},
		},
		Tariffs: []types.Tariff{{
			MasterTariffID: 521,
			EffectiveDate:  isotime.NewDateTime(time.Date(2012, time.February, 1, 1, 0, 0, 0, pacific)),
		}},
	}
}

var bg = context.Background()
