package choretype

import (
	"net/http"

	"choreboard/infras/otel"
	"choreboard/internal/domains/choretype/model/dto"
	"choreboard/internal/domains/choretype/service"
	"choreboard/shared/constant"
	"choreboard/shared/validator"
	"choreboard/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ChoreType
	otel    otel.Otel
}

func New(service service.ChoreType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chore-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetChoreTypes)
		routerGroup.Post("/create", handler.CreateChoreType)
	})
}

// GetChoreTypes lists the recurrence categories.
// @Summary List chore types
// @Tags ChoreType
// @Produce json
// @Success 200 {object} dto.GetChoreTypesResponse
// @Failure 401 {object} response.Error
// @Router /chore-types [get]
// @Security BearerAuth
func (handler *Handler) GetChoreTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChoreTypes")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chore types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateChoreType adds a recurrence category. Admin only.
// @Summary Create a chore type
// @Tags ChoreType
// @Accept json
// @Produce json
// @Param request body dto.CreateChoreTypeRequest true "Create Chore Type Request"
// @Success 201 {object} dto.ChoreTypeResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /chore-types/create [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (handler *Handler) CreateChoreType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChoreType")
	defer scope.End()

	req := dto.CreateChoreTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create chore type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Chore type created")

	response.WithJSON(w, http.StatusCreated, res)
}
