package dashboard

import (
	"fmt"
	"io"
	"strings"
	"sync"

	choreDto "choreboard/internal/domains/chore/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorDim     = lipgloss.Color("#565f89")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorError   = lipgloss.Color("#f7768e")
	colorBorder  = lipgloss.Color("#3b4261")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	doneStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Strikethrough(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(36)
)

// TerminalView draws the dashboard as two bordered columns on w.
type TerminalView struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminalView(w io.Writer) *TerminalView {
	return &TerminalView{w: w}
}

func (v *TerminalView) print(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintln(v.w, s)
}

func (v *TerminalView) RenderDashboard(overview listDto.OverviewResponse) {
	lists := []string{titleStyle.Render("Lists")}
	for _, list := range overview.Lists {
		done := 0

		for _, chore := range list.Chores {
			if chore.IsCompleted {
				done++
			}
		}

		lists = append(lists, fmt.Sprintf("#%d %s %s", list.ListID, list.ListName, dimStyle.Render(fmt.Sprintf("%d/%d", done, len(list.Chores)))))
	}

	chores := []string{titleStyle.Render("Chores")}
	for _, chore := range overview.Chores {
		chores = append(chores, choreLine(chore))
	}

	header := titleStyle.Render(overview.UserName)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(strings.Join(lists, "\n")),
		columnStyle.Render(strings.Join(chores, "\n")),
	)

	v.print(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (v *TerminalView) ShowList(list listDto.ListWithChoresResponse) {
	lines := []string{titleStyle.Render(list.ListName)}
	for _, chore := range list.Chores {
		lines = append(lines, choreLine(chore))
	}

	v.print(columnStyle.Render(strings.Join(lines, "\n")))
}

func (v *TerminalView) ShowChore(chore choreDto.ChoreDetailResponse) {
	lines := []string{
		titleStyle.Render(chore.ChoreName),
		"Due:    " + chore.DueDate,
		"List:   " + chore.List,
		"Type:   " + chore.Type,
		fmt.Sprintf("Points: %d", chore.Point),
	}

	if chore.Note != "" {
		lines = append(lines, "Note:   "+chore.Note)
	}

	if chore.IsCompleted {
		lines = append(lines, doneStyle.Render("completed"))
	}

	v.print(columnStyle.Render(strings.Join(lines, "\n")))
}

func (v *TerminalView) ClearDetail() {}

func (v *TerminalView) ResetListForm() {}

func (v *TerminalView) ResetChoreForm() {}

func (v *TerminalView) HideModal() {}

func (v *TerminalView) ShowError(err error) {
	v.print(errorStyle.Render("error: ") + err.Error())
}

func (v *TerminalView) Navigate(path string) {
	v.print(dimStyle.Render("-> " + path))
}

func choreLine(chore choreDto.ChoreDetailResponse) string {
	name := chore.ChoreName
	if chore.IsCompleted {
		name = doneStyle.Render(name)
	}

	return fmt.Sprintf("#%d %s %s", chore.ChoreID, name, dimStyle.Render(fmt.Sprintf("%s · %dpt", chore.DueDate, chore.Point)))
}
