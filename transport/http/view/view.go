// Package view renders the server-side dashboard page. The same template backs
// GET /dashboard and the chore form's validation-failure response.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	choreDto "choreboard/internal/domains/chore/model/dto"
	choreTypeDto "choreboard/internal/domains/choretype/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"
	"choreboard/shared/validator"
)

//go:embed templates/*.html
var templateFS embed.FS

const dashboardTemplate = "dashboard.html"

// Dashboard is the view model of the dashboard page. Rejected and Errors are
// set only when a chore submission failed validation.
type Dashboard struct {
	Title      string
	Overview   listDto.OverviewResponse
	ChoreTypes []choreTypeDto.ChoreTypeResponse
	Rejected   *choreDto.CreateChoreRequest
	Errors     validator.Errors
}

type Renderer interface {
	Dashboard(data Dashboard) ([]byte, error)
}

type renderer struct {
	templates *template.Template
}

func New() Renderer {
	templates := template.Must(template.New("").Funcs(template.FuncMap{
		"completed": func(chores []choreDto.ChoreDetailResponse) int {
			done := 0

			for _, chore := range chores {
				if chore.IsCompleted {
					done++
				}
			}

			return done
		},
	}).ParseFS(templateFS, "templates/*.html"))

	return &renderer{templates: templates}
}

func (r *renderer) Dashboard(data Dashboard) ([]byte, error) {
	if data.Title == "" {
		data.Title = "Dashboard"
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, dashboardTemplate, data); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}

	return buf.Bytes(), nil
}
