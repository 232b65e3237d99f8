package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pgmarco11/crypto-strategy-hub-api/internal/repository"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/usecase"
	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newPortfolioAPI(t *testing.T) *echo.Echo {
	t.Helper()
	l := testLogger(t)
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "portfolios.json"), l, nil)
	h := NewPortfoliosEchoHandler(l, usecase.NewPortfolioService(store, l))

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestPortfolioLifecycle(t *testing.T) {
	e := newPortfolioAPI(t)

	rec := do(t, e, http.MethodPost, "/portfolios", `{"id":"abc","coins":["BTC"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", rec.Code, rec.Body)
	}
	created := decode(t, rec)
	if created["id"] != "abc" || !reflect.DeepEqual(created["coins"], []interface{}{"BTC"}) {
		t.Fatalf("create: unexpected body %v", created)
	}

	rec = do(t, e, http.MethodGet, "/portfolios/abc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}
	if got := decode(t, rec); !reflect.DeepEqual(got, created) {
		t.Fatalf("get: %v != %v", got, created)
	}

	rec = do(t, e, http.MethodPatch, "/portfolios/abc", `{"values":[100]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: status %d body %s", rec.Code, rec.Body)
	}
	patched := decode(t, rec)
	p, ok := patched["portfolio"].(map[string]interface{})
	if !ok {
		t.Fatalf("patch: missing portfolio in %v", patched)
	}
	if !reflect.DeepEqual(p["coins"], []interface{}{"BTC"}) {
		t.Fatalf("patch: coins changed to %v", p["coins"])
	}
	if !reflect.DeepEqual(p["values"], []interface{}{float64(100)}) {
		t.Fatalf("patch: values not applied: %v", p["values"])
	}

	rec = do(t, e, http.MethodDelete, "/portfolios/abc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d", rec.Code)
	}
	if body := decode(t, rec); body["message"] == nil {
		t.Fatalf("delete: missing message in %v", body)
	}

	rec = do(t, e, http.MethodGet, "/portfolios/abc", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", rec.Code)
	}
	if body := decode(t, rec); body["error"] == nil {
		t.Fatalf("get after delete: missing error in %v", body)
	}
}

func TestListPortfolios(t *testing.T) {
	e := newPortfolioAPI(t)

	rec := do(t, e, http.MethodGet, "/portfolios", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("list: expected empty array, got %s", rec.Body)
	}

	do(t, e, http.MethodPost, "/portfolios", `{"id":"one"}`)
	do(t, e, http.MethodPost, "/portfolios", `{"id":"two"}`)

	rec = do(t, e, http.MethodGet, "/portfolios", "")
	var list []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 || list[0]["id"] != "one" || list[1]["id"] != "two" {
		t.Fatalf("list: unexpected order or content %v", list)
	}
}

func TestReplaceOverwritesOnlyPresentKeys(t *testing.T) {
	e := newPortfolioAPI(t)
	do(t, e, http.MethodPost, "/portfolios", `{"id":"abc","coins":["BTC"],"name":"mine"}`)

	rec := do(t, e, http.MethodPut, "/portfolios/abc", `{"name":"yours"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put: status %d body %s", rec.Code, rec.Body)
	}
	p := decode(t, rec)["portfolio"].(map[string]interface{})
	if p["name"] != "yours" {
		t.Fatalf("put: name not replaced: %v", p["name"])
	}
	if !reflect.DeepEqual(p["coins"], []interface{}{"BTC"}) {
		t.Fatalf("put: absent key was touched: %v", p["coins"])
	}
}

func TestMutationsOnUnknownIDReturn404(t *testing.T) {
	e := newPortfolioAPI(t)

	for _, tc := range []struct {
		method, body string
	}{
		{http.MethodPut, `{"name":"x"}`},
		{http.MethodPatch, `{"values":[1]}`},
		{http.MethodDelete, ""},
	} {
		rec := do(t, e, tc.method, "/portfolios/ghost", tc.body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status %d", tc.method, rec.Code)
		}
	}
}

func TestWelcome(t *testing.T) {
	e := newPortfolioAPI(t)
	rec := do(t, e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("welcome: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Welcome") {
		t.Fatalf("welcome: unexpected body %s", rec.Body)
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	e := newPortfolioAPI(t)
	rec := do(t, e, http.MethodPost, "/portfolios", `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
