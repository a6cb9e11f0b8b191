package dashboard

import (
	"net/http"

	"choreboard/infras/otel"
	choreTypeService "choreboard/internal/domains/choretype/service"
	listService "choreboard/internal/domains/list/service"
	"choreboard/shared/constant"
	"choreboard/transport/http/response"
	"choreboard/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	listService      listService.List
	choreTypeService choreTypeService.ChoreType
	view             view.Renderer
	otel             otel.Otel
}

func New(listService listService.List, choreTypeService choreTypeService.ChoreType, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		listService:      listService,
		choreTypeService: choreTypeService,
		view:             view,
		otel:             otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.Dashboard)
}

// Dashboard renders the lists and chores of the session user.
// @Summary Dashboard page
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "dashboard page"
// @Failure 401 {object} response.Error
// @Router /dashboard [get]
// @Security BearerAuth
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	overview, err := handler.listService.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load overview")

		response.WithError(w, err)

		return
	}

	choreTypes, err := handler.choreTypeService.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load chore types")

		response.WithError(w, err)

		return
	}

	page, err := handler.view.Dashboard(view.Dashboard{
		Overview:   overview,
		ChoreTypes: choreTypes.ChoreTypes,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render dashboard")

		response.WithError(w, err)

		return
	}

	response.WithHTML(w, http.StatusOK, page)
}
