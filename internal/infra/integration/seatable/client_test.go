package seatable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer stands in for a SeaTable instance. authStatus controls the
// app-access-token endpoint; authCalls counts how often it gets hit.
func newTestServer(t *testing.T, authStatus int, authCalls *int, rowsHandler http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2.1/dtable/app-access-token/", func(w http.ResponseWriter, r *http.Request) {
		*authCalls++
		assert.Equal(t, "Token secret-key", r.Header.Get("Authorization"))

		if authStatus != http.StatusOK {
			w.WriteHeader(authStatus)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "ephemeral-token",
			"dtable_uuid":  "base-uuid",
		})
	})
	mux.HandleFunc("/api-gateway/api/v2/dtables/base-uuid/rows/", rowsHandler)

	return httptest.NewServer(mux)
}

func TestListRowsAuthenticatesOnceAndCaches(t *testing.T) {
	authCalls := 0
	srv := newTestServer(t, http.StatusOK, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ephemeral-token", r.Header.Get("Authorization"))
		assert.Equal(t, "Partners", r.URL.Query().Get("table_name"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"rows": []map[string]interface{}{
				{"_id": "r1", "email": "a@b.com"},
			},
		})
	})
	defer srv.Close()

	client := NewClient("secret-key", srv.URL)

	rows, err := client.ListRows(context.Background(), "Partners")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].ID())

	_, err = client.ListRows(context.Background(), "Partners")
	require.NoError(t, err)
	assert.Equal(t, 1, authCalls, "second call must reuse the cached token")
}

func TestAuthFailureIsNotCached(t *testing.T) {
	authCalls := 0
	srv := newTestServer(t, http.StatusForbidden, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		t.Error("rows endpoint must not be reached without a credential")
	})
	defer srv.Close()

	client := NewClient("secret-key", srv.URL)

	_, err := client.ListRows(context.Background(), "Partners")
	require.ErrorIs(t, err, ErrAuthentication)

	_, err = client.ListRows(context.Background(), "Partners")
	require.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, 2, authCalls, "a failed authentication must not leave a cached credential")
}

func TestInvalidateForcesReauthentication(t *testing.T) {
	authCalls := 0
	srv := newTestServer(t, http.StatusOK, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"rows": []map[string]interface{}{}})
	})
	defer srv.Close()

	client := NewClient("secret-key", srv.URL)

	_, err := client.ListRows(context.Background(), "Companies")
	require.NoError(t, err)

	client.Invalidate()

	_, err = client.ListRows(context.Background(), "Companies")
	require.NoError(t, err)
	assert.Equal(t, 2, authCalls)
}

func TestListRowsUpstreamFailure(t *testing.T) {
	authCalls := 0
	srv := newTestServer(t, http.StatusOK, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	client := NewClient("secret-key", srv.URL)

	_, err := client.ListRows(context.Background(), "Companies")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAppendRowsPayload(t *testing.T) {
	authCalls := 0
	var captured appendRowsRequest
	srv := newTestServer(t, http.StatusOK, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	client := NewClient("secret-key", srv.URL)

	row := Row{"company_name": "ACME GmbH", "status": "protected"}
	require.NoError(t, client.AppendRows(context.Background(), "LeadProtection", []Row{row}))

	assert.Equal(t, "LeadProtection", captured.TableName)
	require.Len(t, captured.Rows, 1)
	assert.Equal(t, "ACME GmbH", captured.Rows[0]["company_name"])
}

func TestUpdateRowsPayload(t *testing.T) {
	authCalls := 0
	var captured updateRowsRequest
	srv := newTestServer(t, http.StatusOK, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	client := NewClient("secret-key", srv.URL)

	update := RowUpdate{RowID: "r42", Row: Row{"extended": true}}
	require.NoError(t, client.UpdateRows(context.Background(), "LeadProtection", []RowUpdate{update}))

	assert.Equal(t, "LeadProtection", captured.TableName)
	require.Len(t, captured.Updates, 1)
	assert.Equal(t, "r42", captured.Updates[0].RowID)
	assert.Equal(t, true, captured.Updates[0].Row["extended"])
}
