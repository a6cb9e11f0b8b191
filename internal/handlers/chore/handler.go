package chore

import (
	"net/http"
	"strconv"

	"choreboard/infras/otel"
	"choreboard/internal/domains/chore/model/dto"
	"choreboard/internal/domains/chore/service"
	choreTypeService "choreboard/internal/domains/choretype/service"
	listService "choreboard/internal/domains/list/service"
	"choreboard/shared"
	"choreboard/shared/constant"
	"choreboard/shared/failure"
	"choreboard/shared/validator"
	"choreboard/transport/http/response"
	"choreboard/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamIsCompleted = "isCompleted"
	queryParamListID      = "listId"
)

type Handler struct {
	service          service.Chore
	listService      listService.List
	choreTypeService choreTypeService.ChoreType
	view             view.Renderer
	otel             otel.Otel
}

func New(service service.Chore, listService listService.List, choreTypeService choreTypeService.ChoreType, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:          service,
		listService:      listService,
		choreTypeService: choreTypeService,
		view:             view,
		otel:             otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chores", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetChores)
		routerGroup.Get("/{id:[0-9]+}", handler.GetChoreByID)
		routerGroup.Post("/create", handler.CreateChore)
		routerGroup.Put("/{id:[0-9]+}/edit", handler.UpdateChore)
		routerGroup.Delete("/{id:[0-9]+}/delete", handler.DeleteChore)
	})
}

func choreID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid chore id")
	}

	return id, nil
}

// GetChores lists the chores of the session user.
// @Summary List chores
// @Description Retrieve the chores of the current user with optional filtering, sorting and pagination.
// @Tags Chore
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param sort_by query string false "due_date, chore_name, value or created_at"
// @Param sort_dir query string false "ASC or DESC"
// @Param isCompleted query boolean false "Filter by completion"
// @Param listId query int false "Filter by list"
// @Success 200 {object} dto.GetChoresResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /chores [get]
// @Security BearerAuth
func (handler *Handler) GetChores(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChores")
	defer scope.End()

	req := dto.ListChoresRequest{}
	req.FromRequest(r, false)
	req.IsCompleted = shared.ConvertStringToBool(r.URL.Query().Get(queryParamIsCompleted))
	req.ListID = shared.ConvertStringToInt64(r.URL.Query().Get(queryParamListID))

	chores, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chores")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chores)
}

// GetChoreByID returns one chore joined with its list and type.
// @Summary Get a chore
// @Tags Chore
// @Produce json
// @Param id path int true "Chore ID"
// @Success 200 {object} dto.ChoreDetailResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /chores/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetChoreByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChoreByID")
	defer scope.End()

	id, err := choreID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	chore, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to get chore")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chore)
}

// CreateChore creates a chore owned by the session user. A submission that
// fails validation is answered with the dashboard page listing the messages.
// @Summary Create a chore
// @Tags Chore
// @Accept json
// @Produce json,html
// @Param request body dto.CreateChoreRequest true "Create Chore Request"
// @Success 200 {object} dto.CreateChoreResponse
// @Failure 400 {string} string "dashboard page with validation errors"
// @Failure 401 {object} response.Error
// @Router /chores/create [post]
// @Security BearerAuth
func (handler *Handler) CreateChore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChore")
	defer scope.End()

	req := dto.CreateChoreRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if errs := validator.Collect(&req); len(errs) > 0 {
		scope.TraceError(errs)
		log.Warn().Strs("errors", errs).Msg("chore rejected by validation")

		handler.renderRejected(w, r, req, errs)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create chore")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Chore created")

	response.WithJSON(w, http.StatusOK, res)
}

// renderRejected answers a failed chore submission with the dashboard page.
// If the page cannot be built the messages are sent as JSON instead.
func (handler *Handler) renderRejected(w http.ResponseWriter, r *http.Request, req dto.CreateChoreRequest, errs validator.Errors) {
	ctx := r.Context()

	overview, err := handler.listService.Overview(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load dashboard for rejected chore")
		response.WithError(w, failure.Validation(errs))

		return
	}

	choreTypes, err := handler.choreTypeService.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load chore types for rejected chore")
		response.WithError(w, failure.Validation(errs))

		return
	}

	page, err := handler.view.Dashboard(view.Dashboard{
		Overview:   overview,
		ChoreTypes: choreTypes.ChoreTypes,
		Rejected:   &req,
		Errors:     errs,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to render dashboard for rejected chore")
		response.WithError(w, failure.Validation(errs))

		return
	}

	response.WithHTML(w, http.StatusBadRequest, page)
}

// UpdateChore applies a partial update to a chore of the session user.
// @Summary Edit or complete a chore
// @Tags Chore
// @Accept json
// @Produce json
// @Param id path int true "Chore ID"
// @Param request body dto.UpdateChoreRequest true "Fields to change"
// @Success 200 {object} dto.UpdateChoreResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /chores/{id}/edit [put]
// @Security BearerAuth
func (handler *Handler) UpdateChore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateChore")
	defer scope.End()

	id, err := choreID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateChoreRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to update chore")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Chore updated by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteChore permanently removes a chore of the session user.
// @Summary Delete a chore
// @Tags Chore
// @Accept json
// @Produce json
// @Param id path int true "Chore ID"
// @Param request body dto.DeleteChoreRequest false "Name used in the confirmation"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /chores/{id}/delete [delete]
// @Security BearerAuth
func (handler *Handler) DeleteChore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteChore")
	defer scope.End()

	id, err := choreID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.DeleteChoreRequest{}
	if r.ContentLength > 0 {
		if err = validator.Decode(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Delete(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to delete chore")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Chore deleted by user " + user)

	response.WithMessage(w, http.StatusOK, res.Message)
}
