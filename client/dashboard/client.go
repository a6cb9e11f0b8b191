// Package dashboard is a Go client for the dashboard flow: submit a form, re-fetch
// the session user's lists and chores, then tell a View what to redraw.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	authDto "choreboard/internal/domains/auth/model/dto"
	choreDto "choreboard/internal/domains/chore/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"
	"choreboard/shared/constant"
	"choreboard/transport/http/response"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"
)

const defaultTimeout = 10 * time.Second

// State is where a form is in its submit-then-refresh cycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Client) {
		c.retry = policy
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// Client talks to the chore server on behalf of one session. Form states are
// observable through State; concurrent submissions are not de-duplicated.
type Client struct {
	baseURL string
	http    *http.Client
	view    View
	retry   RetryPolicy

	mu     sync.Mutex
	token  string
	states map[Form]State
}

func New(baseURL string, view View, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		view:    view,
		states:  map[Form]State{FormList: StateIdle, FormChore: StateIdle},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) State(form Form) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.states[form]
}

func (c *Client) setState(form Form, state State) {
	c.mu.Lock()
	c.states[form] = state
	c.mu.Unlock()

	log.Debug().Str("form", string(form)).Stringer("state", state).Msg("form state changed")
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

// Login exchanges credentials for a token pair and keeps the access token for
// later requests.
func (c *Client) Login(ctx context.Context, email, password string) (authDto.TokenResponse, error) {
	var res authDto.TokenResponse

	err := c.do(ctx, http.MethodPost, "/auth/login", authDto.LoginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return res, err
	}

	c.mu.Lock()
	c.token = res.AccessToken
	c.mu.Unlock()

	return res, nil
}

// Load fetches the dashboard data, renders it and clears the detail column.
func (c *Client) Load(ctx context.Context) (listDto.OverviewResponse, error) {
	overview, err := c.fetchOverview(ctx)
	if err != nil {
		return overview, c.fail(err, "failed to load dashboard")
	}

	c.view.RenderDashboard(overview)
	c.view.ClearDetail()

	return overview, nil
}

// SubmitList creates a list, then refreshes the dashboard whatever the outcome
// and resets the list form.
func (c *Client) SubmitList(ctx context.Context, form ListForm) (listDto.ListResponse, error) {
	var created listDto.ListResponse

	c.setState(FormList, StateSubmitting)
	defer c.setState(FormList, StateIdle)

	submitErr := c.do(ctx, http.MethodPost, "/lists/create", form.request(), &created)
	if submitErr != nil {
		submitErr = c.fail(submitErr, "failed to create list")
	}

	c.setState(FormList, StateRefreshing)

	overview, err := c.fetchOverview(ctx)
	if err != nil {
		return created, errors.Join(submitErr, c.fail(err, "failed to refresh dashboard"))
	}

	c.view.RenderDashboard(overview)
	c.view.ResetListForm()

	return created, submitErr
}

// SubmitChore creates a chore, then refreshes whatever the outcome, resets the
// chore form, clears the detail column and hides the modal. A rejected chore
// comes back as an *APIError holding the re-rendered page.
func (c *Client) SubmitChore(ctx context.Context, form ChoreForm) (choreDto.CreateChoreResponse, error) {
	var created choreDto.CreateChoreResponse

	c.setState(FormChore, StateSubmitting)
	defer c.setState(FormChore, StateIdle)

	submitErr := c.do(ctx, http.MethodPost, "/chores/create", form.request(), &created)
	if submitErr != nil {
		submitErr = c.fail(submitErr, "failed to create chore")
	}

	c.setState(FormChore, StateRefreshing)

	if _, err := c.fetchOverview(ctx); err != nil {
		return created, errors.Join(submitErr, c.fail(err, "failed to refresh dashboard"))
	}

	c.view.ResetChoreForm()
	c.view.ClearDetail()
	c.view.HideModal()

	return created, submitErr
}

// LoadList shows the chores of one list.
func (c *Client) LoadList(ctx context.Context, id int64) (listDto.ListWithChoresResponse, error) {
	var list listDto.ListWithChoresResponse

	c.view.ClearDetail()

	if err := c.get(ctx, "/lists/"+strconv.FormatInt(id, 10), &list); err != nil {
		return list, c.fail(err, "failed to load list")
	}

	c.view.ShowList(list)

	return list, nil
}

// LoadChore shows one chore in the detail column.
func (c *Client) LoadChore(ctx context.Context, id int64) (choreDto.ChoreDetailResponse, error) {
	var chore choreDto.ChoreDetailResponse

	if err := c.get(ctx, "/chores/"+strconv.FormatInt(id, 10), &chore); err != nil {
		return chore, c.fail(err, "failed to load chore")
	}

	c.view.ShowChore(chore)

	return chore, nil
}

// EditChore applies a partial update, shows the stored result and redraws the dashboard.
func (c *Client) EditChore(ctx context.Context, id int64, req choreDto.UpdateChoreRequest) (choreDto.ChoreDetailResponse, error) {
	var res choreDto.UpdateChoreResponse

	if err := c.do(ctx, http.MethodPut, "/chores/"+strconv.FormatInt(id, 10)+"/edit", req, &res); err != nil {
		return res.Chore, c.fail(err, "failed to edit chore")
	}

	c.view.ShowChore(res.Chore)

	if _, err := c.Load(ctx); err != nil {
		return res.Chore, err
	}

	return res.Chore, nil
}

// DeleteChore removes a chore and redraws the dashboard. name only shapes the
// confirmation message.
func (c *Client) DeleteChore(ctx context.Context, id int64, name string) (string, error) {
	var res response.Message

	err := c.do(ctx, http.MethodDelete, "/chores/"+strconv.FormatInt(id, 10)+"/delete", choreDto.DeleteChoreRequest{ChoreName: name}, &res)
	if err != nil {
		return "", c.fail(err, "failed to delete chore")
	}

	if _, err = c.Load(ctx); err != nil {
		return res.Message, err
	}

	return res.Message, nil
}

// Logout ends the session and navigates home. Any non-2xx answer becomes a *LogoutError.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/users/logout", nil, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to logout")

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			err = newLogoutError()
		}

		c.view.ShowError(err)

		return err
	}

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	c.view.Navigate("/")

	return nil
}

func (c *Client) fetchOverview(ctx context.Context) (listDto.OverviewResponse, error) {
	var overview listDto.OverviewResponse

	err := c.get(ctx, "/lists", &overview)

	return overview, err
}

func (c *Client) fail(err error, msg string) error {
	log.Error().Err(err).Msg(msg)
	c.view.ShowError(err)

	return err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// do sends one JSON request under the retry policy. Transport failures and 5xx
// answers are retried; everything else is returned as is.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}

		payload = encoded
	}

	return c.retry.do(ctx, func(ctx context.Context) error {
		err := c.send(ctx, method, path, payload, out)

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return err
		}

		if err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if payload != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if token := c.Token(); token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(res, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	return nil
}

func decodeAPIError(res *http.Response, raw []byte) *APIError {
	apiErr := &APIError{Status: res.StatusCode}

	if strings.HasPrefix(res.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeJSON) {
		var body response.Error
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Message = body.Error
			apiErr.Title = body.Title
			apiErr.Errors = body.Errors

			return apiErr
		}
	}

	apiErr.Body = string(raw)

	return apiErr
}
