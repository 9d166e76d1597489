package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samvad-hq/urbanmapping-go/internal/lookups"
	"github.com/samvad-hq/urbanmapping-go/pkg/neighborhoods"
	"gopkg.in/yaml.v3"
)

func newTestClient(t *testing.T) *neighborhoods.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/getNeighborhoodDetail":
			_, _ = w.Write([]byte(`{"id": 42, "name": "SoHo", "area": 0.6}`))
		default:
			http.Error(w, "Internal Error", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	c, err := neighborhoods.New("key", neighborhoods.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestRunnerWritesJSONDocuments(t *testing.T) {
	var out bytes.Buffer
	runner, err := NewRunner(newTestClient(t), &out, "json", nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	err = runner.Run(context.Background(), []lookups.Lookup{
		{ID: "detail", Operation: lookups.OpNeighborhoodDetail, Params: map[string]string{"neighborhoodId": "42"}},
		{ID: "name", Operation: lookups.OpNeighborhoodsByName, Params: map[string]string{"name": "SoHo"}},
	})
	if err == nil {
		t.Fatalf("expected joined error for failing lookup")
	}
	var reqErr *neighborhoods.RequestError
	if !errors.As(err, &reqErr) || reqErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected RequestError 500 in %v", err)
	}

	dec := json.NewDecoder(&out)
	var first, second map[string]any
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode first document: %v", err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decode second document: %v", err)
	}

	result, ok := first["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected object result, got %T", first["result"])
	}
	if result["name"] != "SoHo" || result["id"] != float64(42) {
		t.Fatalf("unexpected result %v", result)
	}
	if msg, _ := second["error"].(string); !strings.Contains(msg, "500") {
		t.Fatalf("expected error document, got %v", second)
	}
}

func TestRunnerWritesYAML(t *testing.T) {
	var out bytes.Buffer
	runner, err := NewRunner(newTestClient(t), &out, "yaml", nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	err = runner.Run(context.Background(), []lookups.Lookup{
		{ID: "detail", Operation: lookups.OpNeighborhoodDetail, Params: map[string]string{"neighborhoodId": "42"}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var doc struct {
		ID     string `yaml:"id"`
		Result struct {
			ID   int     `yaml:"id"`
			Name string  `yaml:"name"`
			Area float64 `yaml:"area"`
		} `yaml:"result"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, out.String())
	}
	if doc.ID != "detail" || doc.Result.ID != 42 || doc.Result.Name != "SoHo" || doc.Result.Area != 0.6 {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestNewRunnerValidates(t *testing.T) {
	if _, err := NewRunner(nil, &bytes.Buffer{}, "json", nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
	if _, err := NewRunner(newTestClient(t), &bytes.Buffer{}, "xml", nil); err == nil {
		t.Fatalf("expected error for xml format")
	}
}

func TestPlainConvertsNumbers(t *testing.T) {
	got := plain(map[string]any{"a": []any{json.Number("1"), json.Number("1.5")}})
	list := got.(map[string]any)["a"].([]any)
	if list[0] != int64(1) || list[1] != 1.5 {
		t.Fatalf("unexpected conversion %v", list)
	}
}
