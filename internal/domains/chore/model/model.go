package model

import (
	"time"

	"choreboard/shared/model"
)

const (
	TableName  = "chores"
	EntityName = "chore"

	FieldID          = "id"
	FieldChoreName   = "chore_name"
	FieldValue       = "value"
	FieldNote        = "note"
	FieldDueDate     = "due_date"
	FieldIsCompleted = "is_completed"
	FieldListID      = "list_id"
	FieldChoreTypeID = "chore_type_id"
	FieldUserID      = "user_id"
	FieldCreatedAt   = "created_at"
)

type Chore struct {
	ID          int64     `db:"id"            insert:"-"`
	ChoreName   string    `db:"chore_name"`
	Value       int64     `db:"value"`
	Note        string    `db:"note"`
	DueDate     time.Time `db:"due_date"`
	IsCompleted bool      `db:"is_completed"`
	ListID      int64     `db:"list_id"`
	ChoreTypeID int64     `db:"chore_type_id"`
	UserID      string    `db:"user_id"`
	model.Metadata
}

// ChoreDetail is a chore joined with the name of its list and its type label.
type ChoreDetail struct {
	ID          int64     `db:"id"`
	ChoreName   string    `db:"chore_name"`
	Value       int64     `db:"value"`
	Note        string    `db:"note"`
	DueDate     time.Time `db:"due_date"`
	IsCompleted bool      `db:"is_completed"`
	ListID      int64     `db:"list_id"`
	ChoreTypeID int64     `db:"chore_type_id"`
	UserID      string    `db:"user_id"`
	ListName    string    `db:"list_name"  table:"lists"       column:"list_name"`
	ChoreType   string    `db:"chore_type" table:"chore_types" column:"chore_type"`
}

func (ChoreDetail) GetJoinQuery() string {
	return "JOIN lists ON lists.id = chores.list_id JOIN chore_types ON chore_types.id = chores.chore_type_id"
}
