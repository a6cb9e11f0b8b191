package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"choreboard/infras/otel/mocks"
	"choreboard/internal/domains/auth/model/dto"
	authMocks "choreboard/internal/domains/auth/service/mocks"
	"choreboard/internal/handlers/auth"
	"choreboard/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *authMocks.MockAuth) {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func post(router http.Handler, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))

	return rec
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{Email: "sam@example.com", Password: "secret123", UserName: "sam"}).Return(nil)

		rec := post(router, "/auth/register", `{"email":" Sam@Example.com ","password":"secret123","user_name":"sam"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
	})

	t.Run("short password", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := post(router, "/auth/register", `{"email":"sam@example.com","password":"short","user_name":"sam"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(failure.Conflict("email already registered"))

		rec := post(router, "/auth/register", `{"email":"sam@example.com","password":"secret123","user_name":"sam"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.TokenResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", ExpiresIn: 3600}, nil)

	rec := post(router, "/auth/login", `{"email":"sam@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"a"`)
}

func TestRefreshToken(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "expired"}).Return(dto.TokenResponse{}, failure.Unauthorized("invalid refresh token"))

	rec := post(router, "/auth/refresh-token", `{"refresh_token":"expired"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
