package service_test

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"choreboard/config"
	"choreboard/infras/otel/mocks"
	"choreboard/infras/postgres"
	"choreboard/internal/domains/chore/model/dto"
	choreRepo "choreboard/internal/domains/chore/repository"
	"choreboard/internal/domains/chore/service"
	listRepo "choreboard/internal/domains/list/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured remembers the value bound to one insert placeholder.
type captured struct {
	value driver.Value
}

func (c *captured) Match(v driver.Value) bool {
	c.value = v

	return true
}

func TestCreatedChoreReadsBackUnchanged(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	conn := &postgres.Connection{Read: db, Write: db}
	ot := mocks.NewOtel()

	svc := service.New(choreRepo.New(conn, ot), listRepo.New(conn, ot), &config.Config{}, ot)

	var name, value, note, dueDate, completed, listID, typeID, userID captured

	mock.ExpectPrepare(regexp.QuoteMeta("FROM lists")).
		ExpectQuery().
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "list_name", "user_id"}).AddRow(1, "Kitchen", owner))

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO chores (chore_name, value, note, due_date, is_completed, list_id, chore_type_id, user_id,")).
		ExpectQuery().
		WithArgs(&name, &value, &note, &dueDate, &completed, &listID, &typeID, &userID,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := svc.Create(asUser(owner), dto.CreateChoreRequest{
		ChoreName: "Dishes", Value: "5", Note: "", DueDate: "2024-01-01", ChoreTypeID: "1", ListID: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ChoreID)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM chores JOIN lists ON lists.id = chores.list_id")).
		ExpectQuery().
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "chore_name", "value", "note", "due_date", "is_completed",
			"list_id", "chore_type_id", "user_id", "list_name", "chore_type",
		}).AddRow(
			created.ChoreID, name.value, value.value, note.value, dueDate.value, completed.value,
			listID.value, typeID.value, userID.value, "Kitchen", "daily",
		))

	got, err := svc.Get(asUser(owner), created.ChoreID)
	require.NoError(t, err)

	assert.Equal(t, dto.ChoreDetailResponse{
		ChoreID:     11,
		ChoreName:   "Dishes",
		DueDate:     "2024-01-01",
		List:        "Kitchen",
		Type:        "daily",
		Note:        "",
		Point:       5,
		ChoreTypeID: 1,
		ListID:      1,
		Value:       5,
		IsCompleted: false,
	}, got)
	assert.Equal(t, owner, userID.value)
	assert.NoError(t, mock.ExpectationsWereMet())
}
