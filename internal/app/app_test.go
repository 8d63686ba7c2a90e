package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"casino_engine/pkg/req"
)

func resolve(t *testing.T, gameType, payload string) map[string]any {
	t.Helper()
	out, err := req.Unmarshal[map[string]any](NewApp().Resolve(context.Background(), gameType, []byte(payload)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestResolve(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("RNG_SEED", "12")

	out := resolve(t, "coinflip", `{"betAmount": 4000, "choice": "tails"}`)
	if out["success"] != true || out["experienceGained"] != 2.0 {
		t.Fatalf("result = %v", out)
	}

	out = resolve(t, "poker", `{"betAmount": 1}`)
	if out["success"] != false || out["error"] != "unknown game type: poker" {
		t.Fatalf("result = %v", out)
	}
	if _, ok := out["data"]; ok {
		t.Fatal("data must be absent on failure")
	}
}

// TestResolveSeededReplay ensures the same seed replays the same slot grid.
func TestResolveSeededReplay(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("RNG_SEED", "77")

	a := resolve(t, "slot", `{"betAmount": 100, "lines": 2}`)
	b := resolve(t, "slot", `{"betAmount": 100, "lines": 2}`)
	ra := a["data"].(map[string]any)["reels"]
	rb := b["data"].(map[string]any)["reels"]
	if toString(ra) != toString(rb) {
		t.Fatalf("reels differ: %v vs %v", ra, rb)
	}
}

func TestRouter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	sp := newServiceProvider()
	router := sp.Router()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/games/merchant", strings.NewReader(`{"betAmount": 2500, "itemIndex": 1, "selectedItem": {"name": "Axe", "icon": "🪓", "quality": "epic"}}`))
	router.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"itemName":"Axe"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/stats", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"game_type":"merchant"`) {
		t.Fatalf("stats = %d %s", rec.Code, rec.Body.String())
	}
}

func toString(v any) string {
	out := ""
	for _, reel := range v.([]any) {
		for _, sym := range reel.([]any) {
			out += sym.(string) + ","
		}
	}
	return out
}
