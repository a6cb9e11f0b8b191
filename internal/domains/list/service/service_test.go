package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"choreboard/config"
	"choreboard/infras/otel/mocks"
	choreMocks "choreboard/internal/domains/chore/mocks"
	choreModel "choreboard/internal/domains/chore/model"
	listMocks "choreboard/internal/domains/list/mocks"
	"choreboard/internal/domains/list/model"
	"choreboard/internal/domains/list/model/dto"
	"choreboard/internal/domains/list/service"
	userMocks "choreboard/internal/domains/user/mocks"
	userModel "choreboard/internal/domains/user/model"
	"choreboard/shared/constant"
	gDto "choreboard/shared/dto"
	"choreboard/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const owner = "user-1"

type fixture struct {
	svc    service.List
	lists  *listMocks.MockList
	chores *choreMocks.MockChore
	users  *userMocks.MockUser
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		lists:  listMocks.NewMockList(ctrl),
		chores: choreMocks.NewMockChore(ctrl),
		users:  userMocks.NewMockUser(ctrl),
	}
	f.svc = service.New(f.lists, f.chores, f.users, &config.Config{}, mocks.NewOtel())

	return f
}

func asUser(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func kitchen() model.List {
	return model.List{ID: 1, ListName: "Kitchen", UserID: owner}
}

func TestListService_Overview(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().Get(gomock.Any(), gomock.Any(), userModel.FieldID, userModel.FieldUserName).Return(userModel.User{ID: owner, UserName: "Sam"}, nil)
	f.lists.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.List{kitchen()}, nil)
	f.chores.EXPECT().GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]choreModel.ChoreDetail{{ID: 5, ChoreName: "Dishes", ListID: 1}}, nil)

	res, err := f.svc.Overview(asUser(owner))
	require.NoError(t, err)
	assert.Equal(t, "Sam", res.UserName)
	require.Len(t, res.Lists, 1)
	assert.Len(t, res.Lists[0].Chores, 1)
	assert.Len(t, res.Chores, 1)
}

func TestListService_OverviewFailure(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{ID: owner}, nil)
	f.lists.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := f.svc.Overview(asUser(owner))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestListService_Get(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		setup    func(f fixture)
		wantCode int
	}{
		{
			name:   "owner sees chores",
			userID: owner,
			setup: func(f fixture) {
				f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)
				f.chores.EXPECT().GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]choreModel.ChoreDetail, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, int64(1), args["chores_list_id"])

						return []choreModel.ChoreDetail{{ID: 5, ListID: 1}}, nil
					})
			},
		},
		{
			name:   "missing",
			userID: owner,
			setup: func(f fixture) {
				f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.List{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "foreign list",
			userID: "intruder",
			setup: func(f fixture) {
				f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Get(asUser(tt.userID), 1)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Kitchen", res.ListName)
			assert.Len(t, res.Chores, 1)
		})
	}
}

func TestListService_Create(t *testing.T) {
	f := newFixture(t)

	f.lists.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, list model.List) (int64, error) {
		assert.Equal(t, owner, list.UserID)
		assert.Equal(t, "Garden", list.ListName)

		return 3, nil
	})

	res, err := f.svc.Create(asUser(owner), dto.CreateListRequest{ListName: "Garden"})
	require.NoError(t, err)
	assert.Equal(t, dto.ListResponse{ListID: 3, ListName: "Garden"}, res)
}

func TestListService_Update(t *testing.T) {
	f := newFixture(t)

	f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)
	f.lists.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "Scullery", fields[model.FieldListName])

			return nil
		})

	res, err := f.svc.Update(asUser(owner), 1, dto.UpdateListRequest{ListName: "Scullery"})
	require.NoError(t, err)
	assert.Equal(t, "Scullery", res.List.ListName)

	f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)

	_, err = f.svc.Update(asUser("intruder"), 1, dto.UpdateListRequest{ListName: "Mine"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestListService_Delete(t *testing.T) {
	runTx := func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	}

	t.Run("removes chores then list", func(t *testing.T) {
		f := newFixture(t)

		f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)
		f.lists.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		gomock.InOrder(
			f.chores.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			f.lists.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		msg, err := f.svc.Delete(asUser(owner), 1)
		require.NoError(t, err)
		assert.Equal(t, "Kitchen has been deleted.", msg)
	})

	t.Run("chore removal failure aborts", func(t *testing.T) {
		f := newFixture(t)

		f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)
		f.lists.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		f.chores.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.Delete(asUser(owner), 1)
		assert.Error(t, err)
	})

	t.Run("foreign list", func(t *testing.T) {
		f := newFixture(t)

		f.lists.EXPECT().Get(gomock.Any(), gomock.Any()).Return(kitchen(), nil)

		_, err := f.svc.Delete(asUser("intruder"), 1)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
