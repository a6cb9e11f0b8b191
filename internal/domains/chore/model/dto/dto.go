package dto

import (
	"strings"
	"time"

	"choreboard/internal/domains/chore/model"
	"choreboard/shared"
	gDto "choreboard/shared/dto"
	"choreboard/shared/failure"
	gModel "choreboard/shared/model"
	"choreboard/shared/timezone"
	"choreboard/shared/validator"
)

const (
	MsgChoreNameEmpty   = "Chore Name cannot be empty."
	MsgChoreNameTooLong = "Chore Name cannot be longer than 50 characters."
	MsgValueEmpty       = "Chore value cannot be empty."
	MsgValueNotInteger  = "Value must be an integer."
	MsgNoteTooLong      = "Note cannot be longer than 255 characters."
	MsgDueDateEmpty     = "Due date cannot be empty."
	MsgDueDateFormat    = "Due date must be a date formatted as YYYY-MM-DD."
	MsgChoreTypeEmpty   = "Chore type cannot be empty."
	MsgChoreTypeInvalid = "Chore type must be an integer."
	MsgListEmpty        = "List cannot be empty."
	MsgListInvalid      = "List must be an integer."
)

// SortColumns are the columns a chore listing may be ordered by.
var SortColumns = []string{model.FieldDueDate, model.FieldChoreName, model.FieldValue, model.FieldCreatedAt}

func init() {
	validator.RegisterMessages(map[string]string{
		"choreName.required":   MsgChoreNameEmpty,
		"choreName.notblank":   MsgChoreNameEmpty,
		"choreName.max":        MsgChoreNameTooLong,
		"value.required":       MsgValueEmpty,
		"value.number":         MsgValueNotInteger,
		"value.int64":          MsgValueNotInteger,
		"note.max":             MsgNoteTooLong,
		"dueDate.required":     MsgDueDateEmpty,
		"dueDate.datetime":     MsgDueDateFormat,
		"choreTypeId.required": MsgChoreTypeEmpty,
		"choreTypeId.number":   MsgChoreTypeInvalid,
		"choreTypeId.int64":    MsgChoreTypeInvalid,
		"listId.required":      MsgListEmpty,
		"listId.number":        MsgListInvalid,
		"listId.int64":         MsgListInvalid,
	})
}

type CreateChoreRequest struct {
	ChoreName   string       `json:"choreName"   validate:"required,notblank,max=50"`
	Value       gDto.Numeric `json:"value"       validate:"required,number,int64"`
	Note        string       `json:"note"        validate:"max=255"`
	DueDate     string       `json:"dueDate"     validate:"required,datetime=2006-01-02"`
	ChoreTypeID gDto.Numeric `json:"choreTypeId" validate:"required,number,int64"`
	ListID      gDto.Numeric `json:"listId"      validate:"required,number,int64"`
}

func (r *CreateChoreRequest) Normalize() {
	r.ChoreName = strings.TrimSpace(r.ChoreName)
	r.Note = strings.TrimSpace(r.Note)
	r.DueDate = strings.TrimSpace(r.DueDate)
}

// ToModel converts a validated request into a chore owned by userID.
func (r *CreateChoreRequest) ToModel(userID string) (model.Chore, error) {
	value, err := r.Value.Int64()
	if err != nil {
		return model.Chore{}, failure.BadRequestFromString(MsgValueNotInteger)
	}

	choreTypeID, err := r.ChoreTypeID.Int64()
	if err != nil {
		return model.Chore{}, failure.BadRequestFromString(MsgChoreTypeInvalid)
	}

	listID, err := r.ListID.Int64()
	if err != nil {
		return model.Chore{}, failure.BadRequestFromString(MsgListInvalid)
	}

	dueDate, err := timezone.ParseDate(r.DueDate)
	if err != nil {
		return model.Chore{}, failure.BadRequestFromString(MsgDueDateFormat)
	}

	return model.Chore{
		ChoreName:   r.ChoreName,
		Value:       value,
		Note:        r.Note,
		DueDate:     dueDate,
		IsCompleted: false,
		ListID:      listID,
		ChoreTypeID: choreTypeID,
		UserID:      userID,
		Metadata:    gModel.NewMetadata(userID, timezone.Now()),
	}, nil
}

// CreateChoreResponse echoes the accepted chore with its new id. Errors is
// always present so the client can treat both outcomes alike.
type CreateChoreResponse struct {
	ChoreID     int64            `json:"choreId"`
	ChoreName   string           `json:"choreName"`
	Value       int64            `json:"value"`
	Note        string           `json:"note"`
	DueDate     string           `json:"dueDate"`
	ChoreTypeID int64            `json:"choreTypeId"`
	ListID      int64            `json:"listId"`
	Errors      validator.Errors `json:"errors"`
}

func (r *CreateChoreResponse) FromModel(chore model.Chore) {
	r.ChoreID = chore.ID
	r.ChoreName = chore.ChoreName
	r.Value = chore.Value
	r.Note = chore.Note
	r.DueDate = timezone.FormatDate(chore.DueDate)
	r.ChoreTypeID = chore.ChoreTypeID
	r.ListID = chore.ListID
	r.Errors = validator.Errors{}
}

// UpdateChoreRequest carries only the fields the client sent.
type UpdateChoreRequest struct {
	ChoreName   *string       `json:"choreName"   validate:"omitnil,notblank,max=50"`
	Value       *gDto.Numeric `json:"value"       validate:"omitnil,required,number,int64"`
	Note        *string       `json:"note"        validate:"omitnil,max=255"`
	DueDate     *string       `json:"dueDate"     validate:"omitnil,datetime=2006-01-02"`
	ChoreTypeID *gDto.Numeric `json:"choreTypeId" validate:"omitnil,required,number,int64"`
	IsCompleted *bool         `json:"isCompleted"`
	ListID      *gDto.Numeric `json:"listId"      validate:"omitnil,required,number,int64"`
}

func (r *UpdateChoreRequest) Normalize() {
	for _, field := range []*string{r.ChoreName, r.Note, r.DueDate} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}

func (r *UpdateChoreRequest) IsEmpty() bool {
	return r.ChoreName == nil && r.Value == nil && r.Note == nil && r.DueDate == nil &&
		r.ChoreTypeID == nil && r.IsCompleted == nil && r.ListID == nil
}

// ChoreUpdate holds the typed columns of a partial update; nil fields are left untouched.
type ChoreUpdate struct {
	ChoreName   *string    `db:"chore_name"`
	Value       *int64     `db:"value"`
	Note        *string    `db:"note"`
	DueDate     *time.Time `db:"due_date"`
	ChoreTypeID *int64     `db:"chore_type_id"`
	IsCompleted *bool      `db:"is_completed"`
	ListID      *int64     `db:"list_id"`
}

func numericPtr(n *gDto.Numeric, msg string) (*int64, error) {
	if n == nil {
		return nil, nil
	}

	i, err := n.Int64()
	if err != nil {
		return nil, failure.BadRequestFromString(msg)
	}

	return &i, nil
}

func (r *UpdateChoreRequest) ToUpdate() (res ChoreUpdate, err error) {
	res.ChoreName = r.ChoreName
	res.Note = r.Note
	res.IsCompleted = r.IsCompleted

	if res.Value, err = numericPtr(r.Value, MsgValueNotInteger); err != nil {
		return res, err
	}

	if res.ChoreTypeID, err = numericPtr(r.ChoreTypeID, MsgChoreTypeInvalid); err != nil {
		return res, err
	}

	if res.ListID, err = numericPtr(r.ListID, MsgListInvalid); err != nil {
		return res, err
	}

	if r.DueDate != nil {
		dueDate, err := timezone.ParseDate(*r.DueDate)
		if err != nil {
			return res, failure.BadRequestFromString(MsgDueDateFormat)
		}

		res.DueDate = &dueDate
	}

	return res, nil
}

type DeleteChoreRequest struct {
	ChoreName string `json:"choreName"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ChoreDetailResponse is the flattened chore view. Point mirrors Value.
type ChoreDetailResponse struct {
	ChoreID     int64  `json:"choreId"`
	ChoreName   string `json:"choreName"`
	DueDate     string `json:"dueDate"`
	List        string `json:"list"`
	Type        string `json:"type"`
	Note        string `json:"note"`
	Point       int64  `json:"point"`
	ChoreTypeID int64  `json:"choreTypeId"`
	ListID      int64  `json:"listId"`
	Value       int64  `json:"value"`
	IsCompleted bool   `json:"isCompleted"`
}

func (r *ChoreDetailResponse) FromModel(chore model.ChoreDetail) {
	r.ChoreID = chore.ID
	r.ChoreName = chore.ChoreName
	r.DueDate = timezone.FormatDate(chore.DueDate)
	r.List = chore.ListName
	r.Type = chore.ChoreType
	r.Note = chore.Note
	r.Point = chore.Value
	r.ChoreTypeID = chore.ChoreTypeID
	r.ListID = chore.ListID
	r.Value = chore.Value
	r.IsCompleted = chore.IsCompleted
}

// FromModels converts a slice of chores, never returning nil.
func FromModels(chores []model.ChoreDetail) []ChoreDetailResponse {
	res := make([]ChoreDetailResponse, len(chores))
	for i, chore := range chores {
		res[i].FromModel(chore)
	}

	return res
}

type UpdateChoreResponse struct {
	Chore ChoreDetailResponse `json:"chore"`
}

type ListChoresRequest struct {
	gDto.QueryParams
	IsCompleted *bool
	ListID      *int64
}

type GetChoresResponse struct {
	Chores    []ChoreDetailResponse `json:"chores"`
	TotalData int                   `json:"total_data"`
	TotalPage int                   `json:"total_page"`
}

func (r *GetChoresResponse) FromModels(chores []model.ChoreDetail, totalData, limit int) {
	r.Chores = FromModels(chores)
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}
