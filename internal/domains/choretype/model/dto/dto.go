package dto

import (
	"strings"

	"choreboard/internal/domains/choretype/model"
	gModel "choreboard/shared/model"
	"choreboard/shared/timezone"
)

type CreateChoreTypeRequest struct {
	ChoreType string `json:"choreType" validate:"required,notblank,max=50"`
}

func (r *CreateChoreTypeRequest) Normalize() {
	r.ChoreType = strings.ToLower(strings.TrimSpace(r.ChoreType))
}

func (r *CreateChoreTypeRequest) ToModel(actor string) model.ChoreType {
	return model.ChoreType{
		ChoreType: r.ChoreType,
		Metadata:  gModel.NewMetadata(actor, timezone.Now()),
	}
}

type ChoreTypeResponse struct {
	ChoreTypeID int64  `json:"choreTypeId"`
	ChoreType   string `json:"choreType"`
}

func (r *ChoreTypeResponse) FromModel(choreType model.ChoreType) {
	r.ChoreTypeID = choreType.ID
	r.ChoreType = choreType.ChoreType
}

type GetChoreTypesResponse struct {
	ChoreTypes []ChoreTypeResponse `json:"choreTypes"`
}

func (r *GetChoreTypesResponse) FromModels(choreTypes []model.ChoreType) {
	r.ChoreTypes = make([]ChoreTypeResponse, len(choreTypes))
	for i, choreType := range choreTypes {
		r.ChoreTypes[i].FromModel(choreType)
	}
}
