package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mogumo/levemagi/internal/model"
)

// HTTPClient implements Client against the bot backend's HTTP/JSON API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a client targeting the given base URL
// (e.g. "https://bot.example.com"). When token is non-empty, an
// Authorization header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Full state ---

func (c *HTTPClient) FetchState(ctx context.Context) (model.State, error) {
	var st model.State
	if err := c.doJSON(ctx, http.MethodGet, "/v1/state", nil, &st); err != nil {
		return model.State{}, err
	}
	return st, nil
}

func (c *HTTPClient) ImportState(ctx context.Context, st model.State) (model.State, error) {
	var out model.State
	if err := c.doJSON(ctx, http.MethodPost, "/v1/state/import", st, &out); err != nil {
		return model.State{}, err
	}
	return out, nil
}

// --- Nuts ---

func (c *HTTPClient) CreateNuts(ctx context.Context, n model.Nuts) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/nuts", n, nil)
}

func (c *HTTPClient) UpdateNuts(ctx context.Context, id string, p NutsPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/nuts/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteNuts(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/nuts/"+url.PathEscape(id), nil, nil)
}

// --- Leaves ---

func (c *HTTPClient) CreateLeaf(ctx context.Context, l model.Leaf) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/leaves", l, nil)
}

func (c *HTTPClient) UpdateLeaf(ctx context.Context, id string, p LeafPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/leaves/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteLeaf(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/leaves/"+url.PathEscape(id), nil, nil)
}

// --- Trunks ---

func (c *HTTPClient) CreateTrunk(ctx context.Context, t model.Trunk) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/trunks", t, nil)
}

func (c *HTTPClient) UpdateTrunk(ctx context.Context, id string, p TrunkPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/trunks/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteTrunk(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/trunks/"+url.PathEscape(id), nil, nil)
}

// --- Roots ---

func (c *HTTPClient) CreateRoot(ctx context.Context, r model.Root) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/roots", r, nil)
}

func (c *HTTPClient) UpdateRoot(ctx context.Context, id string, p RootPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/roots/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteRoot(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/roots/"+url.PathEscape(id), nil, nil)
}

// --- Portals ---

func (c *HTTPClient) CreatePortal(ctx context.Context, p model.Portal) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/portals", p, nil)
}

func (c *HTTPClient) UpdatePortal(ctx context.Context, id string, patch PortalPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/portals/"+url.PathEscape(id), patch, nil)
}

func (c *HTTPClient) DeletePortal(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/portals/"+url.PathEscape(id), nil, nil)
}

// --- Resources ---

func (c *HTTPClient) CreateResource(ctx context.Context, r model.Resource) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/resources", r, nil)
}

func (c *HTTPClient) UpdateResource(ctx context.Context, id string, p ResourcePatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/resources/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteResource(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/resources/"+url.PathEscape(id), nil, nil)
}

// --- Tags ---

func (c *HTTPClient) CreateTag(ctx context.Context, t model.Tag) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/tags", t, nil)
}

func (c *HTTPClient) UpdateTag(ctx context.Context, id string, p TagPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/v1/tags/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteTag(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/tags/"+url.PathEscape(id), nil, nil)
}

// --- Actions ---

func (c *HTTPClient) NotifyStartWork(ctx context.Context, nutsID string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/nuts/"+url.PathEscape(nutsID)+"/start", nil, nil)
}

func (c *HTTPClient) NotifyComplete(ctx context.Context, nutsID string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/nuts/"+url.PathEscape(nutsID)+"/complete", nil, nil)
}

func (c *HTTPClient) NotifyGachaDraw(ctx context.Context, itemID string) error {
	body := map[string]string{"item_id": itemID}
	return c.doJSON(ctx, http.MethodPost, "/v1/gacha/draw", body, nil)
}

// --- internal helpers ---

// APIError represents an error response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes
// the JSON response. If result is nil, the response body is discarded.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
