package choretype_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"choreboard/infras/otel/mocks"
	"choreboard/internal/domains/choretype/model/dto"
	choreTypeMocks "choreboard/internal/domains/choretype/service/mocks"
	"choreboard/internal/handlers/choretype"
	"choreboard/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *choreTypeMocks.MockChoreType) {
	t.Helper()

	svc := choreTypeMocks.NewMockChoreType(gomock.NewController(t))
	handler := choretype.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestGetChoreTypes(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().List(gomock.Any()).Return(dto.GetChoreTypesResponse{ChoreTypes: []dto.ChoreTypeResponse{{ChoreTypeID: 1, ChoreType: "daily"}}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chore-types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"choreTypes":[{"choreTypeId":1,"choreType":"daily"}]}`, rec.Body.String())
}

func TestCreateChoreType(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateChoreTypeRequest) (dto.ChoreTypeResponse, error) {
			assert.Equal(t, "fortnightly", req.ChoreType)

			return dto.ChoreTypeResponse{ChoreTypeID: 5, ChoreType: req.ChoreType}, nil
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chore-types/create", strings.NewReader(`{"choreType":"Fortnightly"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ChoreTypeResponse{}, failure.Conflict("chore type already exists"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chore-types/create", strings.NewReader(`{"choreType":"daily"}`)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
