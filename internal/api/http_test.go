package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mogumo/levemagi/internal/model"
)

// testHandler captures the incoming request and returns a canned
// response.
type testHandler struct {
	method      string
	path        string
	body        string
	contentType string
	auth        string

	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.contentType = r.Header.Get("Content-Type")
	h.auth = r.Header.Get("Authorization")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

func newTestClient(h http.Handler, token string) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(h)
	return NewHTTPClient(srv.URL, token), srv
}

func TestFetchState(t *testing.T) {
	h := &testHandler{responseBody: `{
		"nuts": [{"id": "n1", "name": "作曲", "status": "進行中"}],
		"leaves": [],
		"user_data": {"total_xp": 12.5, "gacha_tickets": 2}
	}`}
	c, srv := newTestClient(h, "secret")
	defer srv.Close()

	st, err := c.FetchState(context.Background())
	if err != nil {
		t.Fatalf("FetchState: %v", err)
	}
	if h.method != http.MethodGet || h.path != "/v1/state" {
		t.Errorf("request = %s %s, want GET /v1/state", h.method, h.path)
	}
	if h.auth != "Bearer secret" {
		t.Errorf("auth header = %q, want bearer token", h.auth)
	}
	if len(st.Nuts) != 1 || st.Nuts[0].Status != model.StatusActive {
		t.Errorf("nuts = %+v", st.Nuts)
	}
	if st.User.TotalXP != 12.5 || st.User.GachaTickets != 2 {
		t.Errorf("user = %+v", st.User)
	}
}

func TestImportState(t *testing.T) {
	h := &testHandler{responseBody: `{"nuts": [{"id": "n1"}]}`}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	in := model.NewState()
	in.Nuts = append(in.Nuts, model.Nuts{ID: "n1", Name: "移行テスト"})

	out, err := c.ImportState(context.Background(), in)
	if err != nil {
		t.Fatalf("ImportState: %v", err)
	}
	if h.method != http.MethodPost || h.path != "/v1/state/import" {
		t.Errorf("request = %s %s, want POST /v1/state/import", h.method, h.path)
	}
	var sent model.State
	if err := json.Unmarshal([]byte(h.body), &sent); err != nil {
		t.Fatalf("request body not a state tree: %v", err)
	}
	if len(sent.Nuts) != 1 || sent.Nuts[0].Name != "移行テスト" {
		t.Errorf("sent nuts = %+v", sent.Nuts)
	}
	if len(out.Nuts) != 1 {
		t.Errorf("returned nuts = %+v", out.Nuts)
	}
	if h.auth != "" {
		t.Errorf("auth header set without token: %q", h.auth)
	}
}

func TestUpdateLeaf_PartialPatch(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	hours := 1.5
	err := c.UpdateLeaf(context.Background(), "leaf-1756709312456-x3k9q0m", LeafPatch{ActualHours: &hours})
	if err != nil {
		t.Fatalf("UpdateLeaf: %v", err)
	}
	if h.method != http.MethodPatch || h.path != "/v1/leaves/leaf-1756709312456-x3k9q0m" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.body != `{"actual_hours":1.5}` {
		t.Errorf("patch body = %s, want only changed field", h.body)
	}
	if h.contentType != "application/json" {
		t.Errorf("content type = %q", h.contentType)
	}
}

func TestDeleteNuts(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	if err := c.DeleteNuts(context.Background(), "nuts-1-abc"); err != nil {
		t.Fatalf("DeleteNuts: %v", err)
	}
	if h.method != http.MethodDelete || h.path != "/v1/nuts/nuts-1-abc" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
}

func TestNotifyActions(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNoContent}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	if err := c.NotifyStartWork(context.Background(), "n1"); err != nil {
		t.Fatalf("NotifyStartWork: %v", err)
	}
	if h.path != "/v1/nuts/n1/start" {
		t.Errorf("start path = %s", h.path)
	}

	if err := c.NotifyComplete(context.Background(), "n1"); err != nil {
		t.Fatalf("NotifyComplete: %v", err)
	}
	if h.path != "/v1/nuts/n1/complete" {
		t.Errorf("complete path = %s", h.path)
	}

	if err := c.NotifyGachaDraw(context.Background(), "golden-acorn"); err != nil {
		t.Fatalf("NotifyGachaDraw: %v", err)
	}
	if h.path != "/v1/gacha/draw" || h.body != `{"item_id":"golden-acorn"}` {
		t.Errorf("gacha request = %s %s", h.path, h.body)
	}
}

func TestAPIError(t *testing.T) {
	h := &testHandler{statusCode: http.StatusForbidden, responseBody: `{"error": "no session"}`}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	_, err := c.FetchState(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "no session" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestAPIError_NonJSONBody(t *testing.T) {
	h := &testHandler{statusCode: http.StatusBadGateway, responseBody: "upstream down"}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	err := c.CreateNuts(context.Background(), model.Nuts{ID: "n1"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "upstream down" {
		t.Errorf("message = %q", apiErr.Message)
	}
}
