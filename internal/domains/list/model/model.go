package model

import "choreboard/shared/model"

const (
	TableName  = "lists"
	EntityName = "list"

	FieldID        = "id"
	FieldListName  = "list_name"
	FieldUserID    = "user_id"
	FieldCreatedAt = "created_at"
)

type List struct {
	ID       int64  `db:"id"        insert:"-"`
	ListName string `db:"list_name"`
	UserID   string `db:"user_id"`
	model.Metadata
}
