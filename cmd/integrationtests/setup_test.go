package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "housebid/internal/auctionService"
	"housebid/internal/events"
	"housebid/internal/ledger"
	"housebid/internal/server"
	"housebid/internal/verifier"

	"github.com/gin-gonic/gin"
)

// fakeClock lets tests drive the bidding window deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// testEnv bundles the wired router with the collaborators tests need to
// reach around the HTTP surface: the clock and the fixture verifier.
type testEnv struct {
	router   *gin.Engine
	clock    *fakeClock
	verifier *verifier.FixtureVerifier
	recorder *events.Recorder
}

// SetupTestEnv initializes the full stack with an in-memory ledger,
// fixture verifier and fake clock.
func SetupTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	l := ledger.NewMemoryLedger()
	v := verifier.NewFixtureVerifier()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	recorder := events.NewRecorder()

	service := auction.NewAuctionService(l, v, clock, recorder)
	router := server.SetupRouter(service)

	return &testEnv{
		router:   router,
		clock:    clock,
		verifier: v,
		recorder: recorder,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the router and
// parses the JSON response envelope.
func (env *testEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the data payload from a response envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
