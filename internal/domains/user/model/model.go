package model

import (
	"time"

	"choreboard/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldUserName  = "user_name"
	FieldPassword  = "password"
	FieldLevel     = "level"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// User is an account that owns lists and chores. Level doubles as the RBAC role.
type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	UserName  string     `db:"user_name"`
	Password  string     `db:"password"`
	Level     string     `db:"level"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
