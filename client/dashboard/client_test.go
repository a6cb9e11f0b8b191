package dashboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"choreboard/client/dashboard"
	choreDto "choreboard/internal/domains/chore/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"
	"choreboard/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingView struct {
	mu       sync.Mutex
	calls    []string
	errs     []error
	overview listDto.OverviewResponse
	chore    choreDto.ChoreDetailResponse
	path     string
}

func (v *recordingView) record(call string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = append(v.calls, call)
}

func (v *recordingView) RenderDashboard(overview listDto.OverviewResponse) {
	v.overview = overview
	v.record("RenderDashboard")
}

func (v *recordingView) ShowList(listDto.ListWithChoresResponse) { v.record("ShowList") }

func (v *recordingView) ShowChore(chore choreDto.ChoreDetailResponse) {
	v.chore = chore
	v.record("ShowChore")
}

func (v *recordingView) ClearDetail()    { v.record("ClearDetail") }
func (v *recordingView) ResetListForm()  { v.record("ResetListForm") }
func (v *recordingView) ResetChoreForm() { v.record("ResetChoreForm") }
func (v *recordingView) HideModal()      { v.record("HideModal") }

func (v *recordingView) ShowError(err error) {
	v.errs = append(v.errs, err)
	v.record("ShowError")
}

func (v *recordingView) Navigate(path string) {
	v.path = path
	v.record("Navigate")
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

var overview = listDto.OverviewResponse{
	UserName: "sam",
	Lists:    []listDto.ListWithChoresResponse{{ListID: 1, ListName: "Kitchen", Chores: []choreDto.ChoreDetailResponse{}}},
	Chores:   []choreDto.ChoreDetailResponse{},
}

func TestSubmitList(t *testing.T) {
	t.Run("submits then refreshes", func(t *testing.T) {
		view := &recordingView{}

		var client *dashboard.Client

		mux := http.NewServeMux()
		mux.HandleFunc("POST /lists/create", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, dashboard.StateSubmitting, client.State(dashboard.FormList))
			assert.Equal(t, constant.ContentTypeJSON, r.Header.Get(constant.RequestHeaderContentType))

			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"listName":"Kitchen"}`, string(body))

			writeJSON(w, http.StatusCreated, listDto.ListResponse{ListID: 1, ListName: "Kitchen"})
		})
		mux.HandleFunc("GET /lists", func(w http.ResponseWriter, _ *http.Request) {
			assert.Equal(t, dashboard.StateRefreshing, client.State(dashboard.FormList))
			writeJSON(w, http.StatusOK, overview)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client = dashboard.New(server.URL, view)

		created, err := client.SubmitList(context.Background(), dashboard.ListForm{ListName: "Kitchen"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ListID)
		assert.Equal(t, []string{"RenderDashboard", "ResetListForm"}, view.calls)
		assert.Equal(t, "sam", view.overview.UserName)
		assert.Equal(t, dashboard.StateIdle, client.State(dashboard.FormList))
	})

	t.Run("refreshes even when the create fails", func(t *testing.T) {
		view := &recordingView{}

		mux := http.NewServeMux()
		mux.HandleFunc("POST /lists/create", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "List Name cannot be empty."})
		})
		mux.HandleFunc("GET /lists", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, overview)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client := dashboard.New(server.URL, view)

		_, err := client.SubmitList(context.Background(), dashboard.ListForm{})

		var apiErr *dashboard.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "List Name cannot be empty.", apiErr.Message)
		assert.Equal(t, []string{"ShowError", "RenderDashboard", "ResetListForm"}, view.calls)
	})

	t.Run("refresh failure is reported", func(t *testing.T) {
		view := &recordingView{}

		mux := http.NewServeMux()
		mux.HandleFunc("POST /lists/create", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusCreated, listDto.ListResponse{ListID: 1})
		})
		mux.HandleFunc("GET /lists", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Missing authorization header"})
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client := dashboard.New(server.URL, view)

		_, err := client.SubmitList(context.Background(), dashboard.ListForm{ListName: "Kitchen"})

		require.Error(t, err)
		assert.Equal(t, []string{"ShowError"}, view.calls)
		assert.Equal(t, dashboard.StateIdle, client.State(dashboard.FormList))
	})
}

func TestSubmitChore(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		view := &recordingView{}

		mux := http.NewServeMux()
		mux.HandleFunc("POST /chores/create", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"choreName":"Dishes","value":5,"note":"","dueDate":"2024-01-01","choreTypeId":1,"listId":1}`, string(body))

			writeJSON(w, http.StatusOK, choreDto.CreateChoreResponse{ChoreID: 9, ChoreName: "Dishes", Errors: []string{}})
		})
		mux.HandleFunc("GET /lists", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, overview)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client := dashboard.New(server.URL, view)

		created, err := client.SubmitChore(context.Background(), dashboard.ChoreForm{
			ChoreName: "Dishes", Value: "5", DueDate: "2024-01-01", ChoreTypeID: "1", ListID: "1",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ChoreID)
		assert.Empty(t, created.Errors)
		assert.Equal(t, []string{"ResetChoreForm", "ClearDetail", "HideModal"}, view.calls)
	})

	t.Run("rejected page is kept", func(t *testing.T) {
		view := &recordingView{}

		mux := http.NewServeMux()
		mux.HandleFunc("POST /chores/create", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("<li>Chore Name cannot be empty.</li>"))
		})
		mux.HandleFunc("GET /lists", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, overview)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client := dashboard.New(server.URL, view)

		_, err := client.SubmitChore(context.Background(), dashboard.ChoreForm{})

		var apiErr *dashboard.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Body, "Chore Name cannot be empty.")
		assert.Equal(t, []string{"ShowError", "ResetChoreForm", "ClearDetail", "HideModal"}, view.calls)
	})
}

func TestLogout(t *testing.T) {
	t.Run("server refuses", func(t *testing.T) {
		view := &recordingView{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Session has been logged out"})
		}))
		defer server.Close()

		err := dashboard.New(server.URL, view).Logout(context.Background())

		var logoutErr *dashboard.LogoutError
		require.ErrorAs(t, err, &logoutErr)
		assert.Equal(t, http.StatusInternalServerError, logoutErr.Status)
		assert.Equal(t, "Logout error", logoutErr.Title)
		assert.Equal(t, "Fail to logout", logoutErr.Message)
		assert.Equal(t, []string{"ShowError"}, view.calls)
	})

	t.Run("navigates home", func(t *testing.T) {
		view := &recordingView{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/logout", r.URL.Path)
			assert.Equal(t, "Bearer token", r.Header.Get(constant.RequestHeaderAuthorization))
			writeJSON(w, http.StatusOK, map[string]any{"message": "Logged out successfully"})
		}))
		defer server.Close()

		client := dashboard.New(server.URL, view, dashboard.WithToken("token"))

		require.NoError(t, client.Logout(context.Background()))
		assert.Equal(t, "/", view.path)
		assert.Empty(t, client.Token())
	})
}

func TestLoginKeepsAccessToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "abc", "refresh_token": "def", "token_type": "Bearer", "expires_in": 3600})
	})
	mux.HandleFunc("GET /chores/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get(constant.RequestHeaderAuthorization))
		writeJSON(w, http.StatusOK, choreDto.ChoreDetailResponse{ChoreID: 7, ChoreName: "Dishes"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	view := &recordingView{}
	client := dashboard.New(server.URL, view)

	_, err := client.Login(context.Background(), "sam@example.com", "secret123")
	require.NoError(t, err)

	chore, err := client.LoadChore(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Dishes", chore.ChoreName)
	assert.Equal(t, []string{"ShowChore"}, view.calls)
}

func TestLoadList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lists/3", r.URL.Path)
		writeJSON(w, http.StatusOK, listDto.ListWithChoresResponse{ListID: 3, ListName: "Garden", Chores: []choreDto.ChoreDetailResponse{}})
	}))
	defer server.Close()

	view := &recordingView{}

	list, err := dashboard.New(server.URL, view).LoadList(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Garden", list.ListName)
	assert.Equal(t, []string{"ClearDetail", "ShowList"}, view.calls)
}

func TestEditAndDeleteChore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /chores/7/edit", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"isCompleted":true`)
		writeJSON(w, http.StatusOK, choreDto.UpdateChoreResponse{Chore: choreDto.ChoreDetailResponse{ChoreID: 7, IsCompleted: true}})
	})
	mux.HandleFunc("DELETE /chores/7/delete", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "Dishes has been deleted."})
	})
	mux.HandleFunc("GET /lists", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, overview)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	view := &recordingView{}
	client := dashboard.New(server.URL, view)

	done := true
	chore, err := client.EditChore(context.Background(), 7, choreDto.UpdateChoreRequest{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, chore.IsCompleted)

	msg, err := client.DeleteChore(context.Background(), 7, "Dishes")
	require.NoError(t, err)
	assert.Equal(t, "Dishes has been deleted.", msg)

	assert.Equal(t, []string{"ShowChore", "RenderDashboard", "ClearDetail", "RenderDashboard", "ClearDetail"}, view.calls)
}

func TestRetryPolicy(t *testing.T) {
	flaky := func(failures int32) (*httptest.Server, *atomic.Int32) {
		var calls atomic.Int32

		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) <= failures {
				writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": constant.ResponseErrorPrepareShutdown})

				return
			}

			writeJSON(w, http.StatusOK, overview)
		})), &calls
	}

	t.Run("single attempt by default", func(t *testing.T) {
		server, calls := flaky(1)
		defer server.Close()

		_, err := dashboard.New(server.URL, &recordingView{}).Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("bounded retries", func(t *testing.T) {
		server, calls := flaky(2)
		defer server.Close()

		client := dashboard.New(server.URL, &recordingView{}, dashboard.WithRetryPolicy(dashboard.RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond}))

		_, err := client.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Chore not found."})
		}))
		defer server.Close()

		client := dashboard.New(server.URL, &recordingView{}, dashboard.WithRetryPolicy(dashboard.RetryPolicy{MaxAttempts: 3, Backoff: time.Millisecond}))

		_, err := client.LoadChore(context.Background(), 1)

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestTerminalView(t *testing.T) {
	var buf bytes.Buffer

	view := dashboard.NewTerminalView(&buf)
	view.RenderDashboard(listDto.OverviewResponse{
		UserName: "sam",
		Lists:    []listDto.ListWithChoresResponse{{ListID: 1, ListName: "Kitchen"}},
		Chores:   []choreDto.ChoreDetailResponse{{ChoreID: 7, ChoreName: "Dishes", DueDate: "2024-01-01", Point: 5}},
	})
	view.ShowError(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "sam")
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "Dishes")
	assert.Contains(t, out, "boom")
}
