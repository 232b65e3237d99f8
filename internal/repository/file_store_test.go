package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolios.json")
	return NewFileStore(path, testLogger(t), nil), path
}

// portfolio builds a record through JSON so value types match what an HTTP
// request body would produce.
func portfolio(t *testing.T, raw string) models.Portfolio {
	t.Helper()
	var p models.Portfolio
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("bad fixture %q: %v", raw, err)
	}
	return p
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	s, _ := newStore(t)
	if got := s.All(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolios.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	s := NewFileStore(path, testLogger(t), nil)
	if got := s.All(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
}

func TestInsertThenGet(t *testing.T) {
	s, _ := newStore(t)
	p := portfolio(t, `{"id":"abc","coins":["BTC"],"notes":{"a":1}}`)
	if err := s.Insert(p); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, ok := s.Get("abc")
	if !ok {
		t.Fatalf("expected record")
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("got %v, want %v", got, p)
	}
}

func TestRemoveIsIdempotentInEffect(t *testing.T) {
	s, _ := newStore(t)
	if err := s.Insert(portfolio(t, `{"id":"abc"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	removed, ok, err := s.Remove("abc")
	if err != nil || !ok {
		t.Fatalf("remove: ok=%v err=%v", ok, err)
	}
	if removed.ID() != "abc" {
		t.Fatalf("removed wrong record %v", removed)
	}

	if _, ok := s.Get("abc"); ok {
		t.Fatalf("record still present after remove")
	}
	if _, ok, _ := s.Remove("abc"); ok {
		t.Fatalf("second remove should report not-found")
	}
}

func TestUpdateMergesOnlyPresentKeys(t *testing.T) {
	s, _ := newStore(t)
	if err := s.Insert(portfolio(t, `{"id":"abc","coins":["BTC"],"name":"mine"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, ok, err := s.Update("abc", portfolio(t, `{"name":"yours","extra":true}`))
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	if updated["name"] != "yours" {
		t.Fatalf("name not overwritten: %v", updated["name"])
	}
	if updated["extra"] != true {
		t.Fatalf("new key not added: %v", updated["extra"])
	}
	if !reflect.DeepEqual(updated["coins"], []interface{}{"BTC"}) {
		t.Fatalf("untouched key changed: %v", updated["coins"])
	}
}

func TestUpdateFieldsOnlyTouchesWhitelist(t *testing.T) {
	s, _ := newStore(t)
	if err := s.Insert(portfolio(t, `{"id":"abc","coins":["BTC"],"name":"mine"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, ok, err := s.UpdateFields("abc", portfolio(t, `{"values":[100],"name":"stolen","id":"zzz"}`))
	if err != nil || !ok {
		t.Fatalf("update fields: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(updated["values"], []interface{}{float64(100)}) {
		t.Fatalf("values not applied: %v", updated["values"])
	}
	if updated["name"] != "mine" {
		t.Fatalf("name should be untouched: %v", updated["name"])
	}
	if updated.ID() != "abc" {
		t.Fatalf("id should be untouched: %v", updated.ID())
	}
	if !reflect.DeepEqual(updated["coins"], []interface{}{"BTC"}) {
		t.Fatalf("coins should be untouched: %v", updated["coins"])
	}
}

func TestUpdateUnknownIDReportsNotFound(t *testing.T) {
	s, _ := newStore(t)
	if _, ok, err := s.Update("nope", portfolio(t, `{"a":1}`)); ok || err != nil {
		t.Fatalf("expected not-found, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := s.UpdateFields("nope", portfolio(t, `{"values":[1]}`)); ok || err != nil {
		t.Fatalf("expected not-found, got ok=%v err=%v", ok, err)
	}
}

func TestPersistedFileRoundTrips(t *testing.T) {
	s, path := newStore(t)
	records := []string{
		`{"id":"a","coins":["BTC","ETH"],"analysis":{"score":0.5}}`,
		`{"id":"b","values":[1,2,3]}`,
		`{"id":"a","note":"duplicate id kept as-is"}`,
	}
	for _, r := range records {
		if err := s.Insert(portfolio(t, r)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read persisted file: %v", err)
	}
	if !strings.Contains(string(b), `"portfolios"`) {
		t.Fatalf("missing top-level key: %s", b)
	}

	reloaded := NewFileStore(path, testLogger(t), nil)
	if !reflect.DeepEqual(reloaded.All(), s.All()) {
		t.Fatalf("reload mismatch:\n%v\n%v", reloaded.All(), s.All())
	}
}

func TestDuplicateIDFirstMatchWins(t *testing.T) {
	s, _ := newStore(t)
	if err := s.Insert(portfolio(t, `{"id":"dup","n":1}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Insert(portfolio(t, `{"id":"dup","n":2}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, ok := s.Get("dup")
	if !ok || got["n"] != float64(1) {
		t.Fatalf("expected first match, got %v", got)
	}

	if _, ok, err := s.Remove("dup"); !ok || err != nil {
		t.Fatalf("remove: ok=%v err=%v", ok, err)
	}
	got, ok = s.Get("dup")
	if !ok || got["n"] != float64(2) {
		t.Fatalf("expected second record to survive, got %v", got)
	}
}

func TestMutationReturnsErrorWhenPersistFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "portfolios.json")
	s := NewFileStore(path, testLogger(t), nil)

	// Parent directory of the store file does not exist, so the temp-file
	// write must fail while the in-memory insert sticks.
	err := s.Insert(portfolio(t, `{"id":"abc"}`))
	if err == nil {
		t.Fatalf("expected persist error")
	}
	if _, ok := s.Get("abc"); !ok {
		t.Fatalf("in-memory state should keep the record after persist failure")
	}
}
