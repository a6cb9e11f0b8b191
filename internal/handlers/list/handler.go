package list

import (
	"net/http"
	"strconv"

	"choreboard/infras/otel"
	"choreboard/internal/domains/list/model/dto"
	"choreboard/internal/domains/list/service"
	"choreboard/shared/constant"
	"choreboard/shared/failure"
	"choreboard/shared/validator"
	"choreboard/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.List
	otel    otel.Otel
}

func New(service service.List, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/lists", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLists)
		routerGroup.Get("/{id:[0-9]+}", handler.GetListByID)
		routerGroup.Post("/create", handler.CreateList)
		routerGroup.Put("/{id:[0-9]+}/edit", handler.UpdateList)
		routerGroup.Delete("/{id:[0-9]+}/delete", handler.DeleteList)
	})
}

func listID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid list id")
	}

	return id, nil
}

// GetLists returns every list of the session user with its chores.
// @Summary Overview of lists and chores
// @Tags List
// @Produce json
// @Success 200 {object} dto.OverviewResponse
// @Failure 401 {object} response.Error
// @Router /lists [get]
// @Security BearerAuth
func (handler *Handler) GetLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLists")
	defer scope.End()

	overview, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lists")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, overview)
}

// GetListByID returns one list with its chores.
// @Summary Get a list
// @Tags List
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} dto.ListWithChoresResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /lists/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetListByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListByID")
	defer scope.End()

	id, err := listID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	list, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("list_id", id).Msg("failed to get list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, list)
}

// CreateList creates a list owned by the session user.
// @Summary Create a list
// @Tags List
// @Accept json
// @Produce json
// @Param request body dto.CreateListRequest true "Create List Request"
// @Success 201 {object} dto.ListResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /lists/create [post]
// @Security BearerAuth
func (handler *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateList")
	defer scope.End()

	req := dto.CreateListRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	list, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("List created")

	response.WithJSON(w, http.StatusCreated, list)
}

// UpdateList renames a list of the session user.
// @Summary Rename a list
// @Tags List
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Param request body dto.UpdateListRequest true "Update List Request"
// @Success 200 {object} dto.UpdateListResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /lists/{id}/edit [put]
// @Security BearerAuth
func (handler *Handler) UpdateList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateList")
	defer scope.End()

	id, err := listID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateListRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	list, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("list_id", id).Msg("failed to update list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, list)
}

// DeleteList removes a list together with its chores.
// @Summary Delete a list
// @Tags List
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /lists/{id}/delete [delete]
// @Security BearerAuth
func (handler *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteList")
	defer scope.End()

	id, err := listID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	msg, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("list_id", id).Msg("failed to delete list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("List deleted")

	response.WithMessage(w, http.StatusOK, msg)
}
