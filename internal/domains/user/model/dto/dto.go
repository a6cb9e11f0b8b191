package dto

import (
	"choreboard/internal/domains/user/model"
	"choreboard/shared/constant"
	gDto "choreboard/shared/dto"
	"choreboard/shared/timezone"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	UserName  string  `json:"userName"`
	Level     string  `json:"level"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"lastLogin"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.UserName = user.UserName
	r.Level = user.Level
	r.Active = user.Active
	r.LastLogin = nil

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}
