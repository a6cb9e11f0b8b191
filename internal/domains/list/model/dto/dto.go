package dto

import (
	"strings"

	choreModel "choreboard/internal/domains/chore/model"
	choreDto "choreboard/internal/domains/chore/model/dto"
	"choreboard/internal/domains/list/model"
	gModel "choreboard/shared/model"
	"choreboard/shared/timezone"
	"choreboard/shared/validator"
)

const (
	MsgListNameEmpty   = "List Name cannot be empty."
	MsgListNameTooLong = "List Name cannot be longer than 50 characters."
)

func init() {
	validator.RegisterMessages(map[string]string{
		"listName.required": MsgListNameEmpty,
		"listName.notblank": MsgListNameEmpty,
		"listName.max":      MsgListNameTooLong,
	})
}

type CreateListRequest struct {
	ListName string `json:"listName" validate:"required,notblank,max=50"`
}

func (r *CreateListRequest) Normalize() {
	r.ListName = strings.TrimSpace(r.ListName)
}

func (r *CreateListRequest) ToModel(userID string) model.List {
	return model.List{
		ListName: r.ListName,
		UserID:   userID,
		Metadata: gModel.NewMetadata(userID, timezone.Now()),
	}
}

type UpdateListRequest struct {
	ListName string `db:"list_name" json:"listName" validate:"required,notblank,max=50"`
}

func (r *UpdateListRequest) Normalize() {
	r.ListName = strings.TrimSpace(r.ListName)
}

type ListResponse struct {
	ListID   int64  `json:"listId"`
	ListName string `json:"listName"`
}

func (r *ListResponse) FromModel(list model.List) {
	r.ListID = list.ID
	r.ListName = list.ListName
}

type UpdateListResponse struct {
	List ListResponse `json:"list"`
}

type ListWithChoresResponse struct {
	ListID   int64                          `json:"listId"`
	ListName string                         `json:"listName"`
	Chores   []choreDto.ChoreDetailResponse `json:"chores"`
}

func (r *ListWithChoresResponse) FromModel(list model.List, chores []choreModel.ChoreDetail) {
	r.ListID = list.ID
	r.ListName = list.ListName
	r.Chores = choreDto.FromModels(chores)
}

// OverviewResponse is everything the dashboard shows for one user.
type OverviewResponse struct {
	UserName string                         `json:"userName"`
	Lists    []ListWithChoresResponse       `json:"lists"`
	Chores   []choreDto.ChoreDetailResponse `json:"chores"`
}

// FromModels groups chores under their lists, keeping the order of both inputs.
func (r *OverviewResponse) FromModels(userName string, lists []model.List, chores []choreModel.ChoreDetail) {
	byList := make(map[int64][]choreModel.ChoreDetail, len(lists))
	for _, chore := range chores {
		byList[chore.ListID] = append(byList[chore.ListID], chore)
	}

	r.UserName = userName
	r.Chores = choreDto.FromModels(chores)
	r.Lists = make([]ListWithChoresResponse, len(lists))

	for i, list := range lists {
		r.Lists[i].FromModel(list, byList[list.ID])
	}
}
