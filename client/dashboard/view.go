package dashboard

import (
	choreDto "choreboard/internal/domains/chore/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"
)

// View is what the client drives after each request. Implementations decide how
// the dashboard is drawn; the client only decides when.
type View interface {
	RenderDashboard(overview listDto.OverviewResponse)
	ShowList(list listDto.ListWithChoresResponse)
	ShowChore(chore choreDto.ChoreDetailResponse)
	ClearDetail()
	ResetListForm()
	ResetChoreForm()
	HideModal()
	ShowError(err error)
	Navigate(path string)
}
