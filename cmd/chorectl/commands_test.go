package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func reply(body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}

func execute(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := rootCmd(cfg, &out)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)

	err := cmd.Execute()

	return out.String(), err
}

func TestLoginPrintsToken(t *testing.T) {
	server := serve(t, map[string]http.HandlerFunc{
		"POST /auth/login": reply(map[string]any{"access_token": "abc", "token_type": "Bearer"}),
	})

	out, err := execute(t, Config{BaseURL: server.URL, Email: "sam@example.com", Password: "secret123"}, "login")

	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestLoginWithoutCredentials(t *testing.T) {
	_, err := execute(t, Config{BaseURL: "http://127.0.0.1:0"}, "login")

	assert.Error(t, err)
}

func TestDashboard(t *testing.T) {
	server := serve(t, map[string]http.HandlerFunc{
		"GET /lists": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			reply(map[string]any{
				"userName": "sam",
				"lists":    []map[string]any{{"listId": 1, "listName": "Kitchen", "chores": []any{}}},
				"chores":   []any{},
			})(w, r)
		},
	})

	out, err := execute(t, Config{BaseURL: server.URL, Token: "tok"}, "dashboard")

	require.NoError(t, err)
	assert.Contains(t, out, "Kitchen")
}

func TestChoreComplete(t *testing.T) {
	var body map[string]any

	server := serve(t, map[string]http.HandlerFunc{
		"PUT /chores/4/edit": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			reply(map[string]any{"chore": map[string]any{"choreId": 4, "choreName": "Dishes", "isCompleted": true}})(w, r)
		},
		"GET /lists": reply(map[string]any{"userName": "sam", "lists": []any{}, "chores": []any{}}),
	})

	_, err := execute(t, Config{BaseURL: server.URL, Token: "tok"}, "chore", "complete", "4")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"isCompleted": true}, withoutNulls(body))
}

func TestChoreEditSendsOnlyChangedFields(t *testing.T) {
	var body map[string]any

	server := serve(t, map[string]http.HandlerFunc{
		"PUT /chores/4/edit": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			reply(map[string]any{"chore": map[string]any{"choreId": 4}})(w, r)
		},
		"GET /lists": reply(map[string]any{"userName": "sam", "lists": []any{}, "chores": []any{}}),
	})

	_, err := execute(t, Config{BaseURL: server.URL, Token: "tok"}, "chore", "edit", "4", "--name", "Laundry", "--value", "3")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"choreName": "Laundry", "value": float64(3)}, withoutNulls(body))
}

func TestInvalidID(t *testing.T) {
	_, err := execute(t, Config{BaseURL: "http://127.0.0.1:0", Token: "tok"}, "chore", "show", "abc")

	assert.EqualError(t, err, `invalid id "abc"`)
}

func withoutNulls(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if v != nil {
			out[k] = v
		}
	}

	return out
}
