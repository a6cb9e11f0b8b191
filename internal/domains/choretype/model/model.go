package model

import "choreboard/shared/model"

const (
	TableName  = "chore_types"
	EntityName = "chore_type"

	FieldID        = "id"
	FieldChoreType = "chore_type"
)

type ChoreType struct {
	ID        int64  `db:"id"         insert:"-"`
	ChoreType string `db:"chore_type"`
	model.Metadata
}
