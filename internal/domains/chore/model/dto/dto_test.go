package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"choreboard/internal/domains/chore/model"
	"choreboard/internal/domains/chore/model/dto"
	"choreboard/shared/failure"
	"choreboard/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCreate(t *testing.T, body string) dto.CreateChoreRequest {
	t.Helper()

	var req dto.CreateChoreRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	return req
}

func TestCreateChoreRequest_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want validator.Errors
	}{
		{
			name: "valid with numbers",
			body: `{"choreName":"Dishes","value":5,"note":"","dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
		},
		{
			name: "valid with numeric strings",
			body: `{"choreName":"Dishes","value":"5","dueDate":"2024-01-01","choreTypeId":"1","listId":"1"}`,
		},
		{
			name: "zero value is allowed",
			body: `{"choreName":"Dishes","value":0,"dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
		},
		{
			name: "blank name",
			body: `{"choreName":"   ","value":5,"dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgChoreNameEmpty},
		},
		{
			name: "name too long",
			body: `{"choreName":"` + strings.Repeat("a", 51) + `","value":5,"dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgChoreNameTooLong},
		},
		{
			name: "missing value",
			body: `{"choreName":"Dishes","dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgValueEmpty},
		},
		{
			name: "negative value",
			body: `{"choreName":"Dishes","value":-3,"dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgValueNotInteger},
		},
		{
			name: "fractional value",
			body: `{"choreName":"Dishes","value":"2.5","dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgValueNotInteger},
		},
		{
			name: "value beyond int64",
			body: `{"choreName":"Dishes","value":"99999999999999999999","dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgValueNotInteger},
		},
		{
			name: "list id beyond int64",
			body: `{"choreName":"Dishes","value":1,"dueDate":"2024-01-01","choreTypeId":1,"listId":99999999999999999999}`,
			want: validator.Errors{dto.MsgListInvalid},
		},
		{
			name: "note too long",
			body: `{"choreName":"Dishes","value":1,"note":"` + strings.Repeat("n", 256) + `","dueDate":"2024-01-01","choreTypeId":1,"listId":1}`,
			want: validator.Errors{dto.MsgNoteTooLong},
		},
		{
			name: "every message is reported",
			body: `{"choreName":"","value":"x","dueDate":"01/01/2024"}`,
			want: validator.Errors{dto.MsgChoreNameEmpty, dto.MsgValueNotInteger, dto.MsgDueDateFormat, dto.MsgChoreTypeEmpty, dto.MsgListEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeCreate(t, tt.body)

			assert.Equal(t, tt.want, validator.Collect(&req))
		})
	}
}

func TestCreateChoreRequest_ToModel(t *testing.T) {
	req := decodeCreate(t, `{"choreName":" Dishes ","value":"5","note":"soap","dueDate":"2024-01-01","choreTypeId":2,"listId":3}`)
	require.Nil(t, validator.Collect(&req))

	chore, err := req.ToModel("user-1")
	require.NoError(t, err)

	assert.Equal(t, "Dishes", chore.ChoreName)
	assert.Equal(t, int64(5), chore.Value)
	assert.Equal(t, "soap", chore.Note)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), chore.DueDate)
	assert.Equal(t, int64(2), chore.ChoreTypeID)
	assert.Equal(t, int64(3), chore.ListID)
	assert.Equal(t, "user-1", chore.UserID)
	assert.False(t, chore.IsCompleted)
	assert.Equal(t, "user-1", chore.CreatedBy)
}

func TestCreateChoreResponse_FromModel(t *testing.T) {
	var res dto.CreateChoreResponse
	res.FromModel(model.Chore{ID: 9, ChoreName: "Dishes", Value: 5, DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ChoreTypeID: 1, ListID: 1})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	assert.JSONEq(t, `{"choreId":9,"choreName":"Dishes","value":5,"note":"","dueDate":"2024-01-01","choreTypeId":1,"listId":1,"errors":[]}`, string(raw))
}

func TestUpdateChoreRequest(t *testing.T) {
	t.Run("only supplied fields are set", func(t *testing.T) {
		var req dto.UpdateChoreRequest
		require.NoError(t, json.Unmarshal([]byte(`{"isCompleted":false}`), &req))
		require.Nil(t, validator.Collect(&req))
		assert.False(t, req.IsEmpty())

		update, err := req.ToUpdate()
		require.NoError(t, err)

		require.NotNil(t, update.IsCompleted)
		assert.False(t, *update.IsCompleted)
		assert.Nil(t, update.ChoreName)
		assert.Nil(t, update.Value)
		assert.Nil(t, update.Note)
		assert.Nil(t, update.DueDate)
	})

	t.Run("supplied fields are validated", func(t *testing.T) {
		var req dto.UpdateChoreRequest
		require.NoError(t, json.Unmarshal([]byte(`{"choreName":"","value":"-1"}`), &req))

		assert.Equal(t, validator.Errors{dto.MsgChoreNameEmpty, dto.MsgValueNotInteger}, validator.Collect(&req))
	})

	t.Run("oversized value is a validation error", func(t *testing.T) {
		var req dto.UpdateChoreRequest
		require.NoError(t, json.Unmarshal([]byte(`{"value":99999999999999999999}`), &req))

		assert.Equal(t, validator.Errors{dto.MsgValueNotInteger}, validator.Collect(&req))
	})

	t.Run("empty body", func(t *testing.T) {
		var req dto.UpdateChoreRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

		assert.True(t, req.IsEmpty())
	})

	t.Run("conversion", func(t *testing.T) {
		var req dto.UpdateChoreRequest
		require.NoError(t, json.Unmarshal([]byte(`{"value":"7","dueDate":"2024-02-03","listId":4}`), &req))

		update, err := req.ToUpdate()
		require.NoError(t, err)
		assert.Equal(t, int64(7), *update.Value)
		assert.Equal(t, int64(4), *update.ListID)
		assert.Equal(t, "2024-02-03", update.DueDate.Format(time.DateOnly))
	})

	t.Run("unparseable date", func(t *testing.T) {
		date := "2024-13-40"
		req := dto.UpdateChoreRequest{DueDate: &date}

		_, err := req.ToUpdate()
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestChoreDetailResponse_FromModel(t *testing.T) {
	var res dto.ChoreDetailResponse
	res.FromModel(model.ChoreDetail{
		ID: 1, ChoreName: "Dishes", Value: 5, DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ListID: 2, ChoreTypeID: 3, ListName: "Kitchen", ChoreType: "daily", IsCompleted: true,
	})

	assert.Equal(t, dto.ChoreDetailResponse{
		ChoreID: 1, ChoreName: "Dishes", DueDate: "2024-01-01", List: "Kitchen", Type: "daily",
		Point: 5, ChoreTypeID: 3, ListID: 2, Value: 5, IsCompleted: true,
	}, res)
}

func TestGetChoresResponse_EmptyIsArray(t *testing.T) {
	var res dto.GetChoresResponse
	res.FromModels(nil, 0, 0)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"chores":[],"total_data":0,"total_page":1}`, string(raw))
}
