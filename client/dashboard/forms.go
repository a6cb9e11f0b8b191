package dashboard

import (
	"strings"

	choreDto "choreboard/internal/domains/chore/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"
	gDto "choreboard/shared/dto"
)

// Form names a form whose submission state is tracked.
type Form string

const (
	FormList  Form = "list"
	FormChore Form = "chore"
)

// ListForm is the new-list form.
type ListForm struct {
	ListName string
}

func (f ListForm) request() listDto.CreateListRequest {
	return listDto.CreateListRequest{ListName: f.ListName}
}

// ChoreForm is the new-chore form. Every field is text, the way a browser
// submits it; the server validates and converts.
type ChoreForm struct {
	ChoreName   string
	Value       string
	Note        string
	DueDate     string
	ChoreTypeID string
	ListID      string
}

func (f ChoreForm) request() choreDto.CreateChoreRequest {
	return choreDto.CreateChoreRequest{
		ChoreName:   f.ChoreName,
		Value:       gDto.Numeric(strings.TrimSpace(f.Value)),
		Note:        f.Note,
		DueDate:     f.DueDate,
		ChoreTypeID: gDto.Numeric(strings.TrimSpace(f.ChoreTypeID)),
		ListID:      gDto.Numeric(strings.TrimSpace(f.ListID)),
	}
}
