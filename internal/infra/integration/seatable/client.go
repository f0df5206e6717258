package seatable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/amiracx/partner-portal-api/internal/infra/http/middleware"
)

// ErrAuthentication means the app-access-token call did not succeed.
// Nothing gets cached; the next request authenticates from scratch.
var ErrAuthentication = errors.New("seatable: authentication failed")

// ErrUpstream means a row call returned a non-success status or never got
// through. Transient and permanent failures are not distinguished.
var ErrUpstream = errors.New("seatable: upstream unavailable")

type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	cache    tokenCache
}

// tokenCache holds the ephemeral app access token and base UUID for the
// process lifetime. SeaTable app tokens do expire upstream, but no refresh
// policy exists here; Invalidate is the manual escape hatch.
type tokenCache struct {
	mu          sync.Mutex
	accessToken string
	dtableUUID  string
}

func NewClient(apiToken, baseURL string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// acquire returns the cached access token and base UUID, authenticating
// once on first use. A failed authentication caches nothing.
func (c *Client) acquire(ctx context.Context) (string, string, error) {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	if c.cache.accessToken != "" && c.cache.dtableUUID != "" {
		return c.cache.accessToken, c.cache.dtableUUID, nil
	}

	url := fmt.Sprintf("%s/api/v2.1/dtable/app-access-token/", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Token "+c.apiToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", "", fmt.Errorf("%w (status %d)", ErrAuthentication, resp.StatusCode)
	}

	var access accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&access); err != nil {
		return "", "", fmt.Errorf("%w: decode: %v", ErrAuthentication, err)
	}
	if access.AccessToken == "" || access.DtableUUID == "" {
		return "", "", fmt.Errorf("%w: empty token response", ErrAuthentication)
	}

	c.cache.accessToken = access.AccessToken
	c.cache.dtableUUID = access.DtableUUID
	return c.cache.accessToken, c.cache.dtableUUID, nil
}

// Invalidate drops the cached credential so the next call re-authenticates.
func (c *Client) Invalidate() {
	c.cache.mu.Lock()
	c.cache.accessToken = ""
	c.cache.dtableUUID = ""
	c.cache.mu.Unlock()
}

// ListRows fetches every row of a table.
func (c *Client) ListRows(ctx context.Context, tableName string) ([]Row, error) {
	body, err := c.call(ctx, http.MethodGet, "rows/?table_name="+tableName, nil)
	middleware.RecordSeatableRequest(http.MethodGet, tableName, resultLabel(err))
	if err != nil {
		return nil, err
	}

	var result listRowsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode rows: %v", ErrUpstream, err)
	}
	return result.Rows, nil
}

// AppendRows inserts new rows into a table.
func (c *Client) AppendRows(ctx context.Context, tableName string, rows []Row) error {
	payload := appendRowsRequest{TableName: tableName, Rows: rows}
	_, err := c.call(ctx, http.MethodPost, "rows/", payload)
	middleware.RecordSeatableRequest(http.MethodPost, tableName, resultLabel(err))
	return err
}

// UpdateRows patches named fields of existing rows by row ID.
func (c *Client) UpdateRows(ctx context.Context, tableName string, updates []RowUpdate) error {
	payload := updateRowsRequest{TableName: tableName, Updates: updates}
	_, err := c.call(ctx, http.MethodPut, "rows/", payload)
	middleware.RecordSeatableRequest(http.MethodPut, tableName, resultLabel(err))
	return err
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// call resolves the credential, issues one request against the gateway rows
// API and returns the raw response body on a 2xx status.
func (c *Client) call(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	accessToken, dtableUUID, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api-gateway/api/v2/dtables/%s/%s", c.baseURL, dtableUUID, endpoint)

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("seatable: marshal payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		log.Printf("seatable: %s %s returned status %d", method, endpoint, resp.StatusCode)
		return nil, fmt.Errorf("%w (status %d)", ErrUpstream, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
