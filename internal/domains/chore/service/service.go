package service

import (
	"context"
	"fmt"
	"net/http"

	"choreboard/config"
	"choreboard/infras/otel"
	"choreboard/internal/domains/chore/model"
	"choreboard/internal/domains/chore/model/dto"
	"choreboard/internal/domains/chore/repository"
	listModel "choreboard/internal/domains/list/model"
	listRepo "choreboard/internal/domains/list/repository"
	"choreboard/shared"
	"choreboard/shared/constant"
	gDto "choreboard/shared/dto"
	"choreboard/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	errChoreNotFoundTitle = "Chore not found."
	errNotAuthorizedEdit  = "You're not authorized to edit this chore."
	errNotAuthorizedDel   = "You're not authorized to delete this chore."
	errListMissing        = "List does not exist."
	errNotAuthorizedList  = "You're not authorized to add chores to this list."
)

type Chore interface {
	List(ctx context.Context, req dto.ListChoresRequest) (dto.GetChoresResponse, error)
	Get(ctx context.Context, id int64) (dto.ChoreDetailResponse, error)
	Create(ctx context.Context, req dto.CreateChoreRequest) (dto.CreateChoreResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateChoreRequest) (dto.UpdateChoreResponse, error)
	Delete(ctx context.Context, id int64, req dto.DeleteChoreRequest) (dto.MessageResponse, error)
}

type serviceImpl struct {
	repo     repository.Chore
	listRepo listRepo.List
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Chore, listRepo listRepo.List, cfg *config.Config, otel otel.Otel) Chore {
	return &serviceImpl{
		repo:     repo,
		listRepo: listRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

// ChoreNotFound reports a missing chore with the id in its detail list.
func ChoreNotFound(id int64) error {
	msg := fmt.Sprintf("Chore with id of %d could not be found.", id)

	return &failure.Failure{
		Code:    http.StatusNotFound,
		Message: msg,
		Title:   errChoreNotFoundTitle,
		Errors:  []string{msg},
	}
}

func byID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// OwnedBy filters chores belonging to userID.
func OwnedBy(userID string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldUserID, userID))
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListChoresRequest) (res dto.GetChoresResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListChores")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := OwnedBy(userID)
	if req.IsCompleted != nil {
		filter.Add(gDto.Eq(model.TableName, model.FieldIsCompleted, *req.IsCompleted))
	}

	if req.ListID != nil {
		filter.Add(gDto.Eq(model.TableName, model.FieldListID, *req.ListID))
	}

	req.AllowSort(dto.SortColumns...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to count chores")

		return res, failure.NotFound(errChoreNotFoundTitle) // nolint:wrapcheck
	}

	chores, err := s.repo.GetAllDetails(ctx, req.QueryParams, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get chores")

		return res, failure.NotFound(errChoreNotFoundTitle) // nolint:wrapcheck
	}

	res.FromModels(chores, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ChoreDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetChore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	chore, err := s.repo.GetDetail(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to get chore")

		return res, fmt.Errorf("failed to get chore: %w", err)
	}

	if chore.ID == 0 {
		return res, ChoreNotFound(id)
	}

	res.FromModel(chore)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateChoreRequest) (res dto.CreateChoreResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateChore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	chore, err := req.ToModel(userID)
	if err != nil {
		return res, err
	}

	if err = s.ownedList(ctx, chore.ListID, userID); err != nil {
		return res, err
	}

	chore.ID, err = s.repo.InsertReturningID(ctx, chore)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to create chore")

		return res, fmt.Errorf("failed to create chore: %w", err)
	}

	res.FromModel(chore)

	return res, nil
}

// owned loads a chore and checks it belongs to the session user. Absence is
// reported before ownership.
func (s *serviceImpl) owned(ctx context.Context, id int64, deniedMsg string) (model.Chore, error) {
	chore, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to get chore")

		return chore, fmt.Errorf("failed to get chore: %w", err)
	}

	if chore.ID == 0 {
		return chore, ChoreNotFound(id)
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if chore.UserID != userID {
		log.Warn().Int64("chore_id", id).Str("user_id", userID).Msg("chore access denied")

		return chore, failure.Unauthorized(deniedMsg) // nolint:wrapcheck
	}

	return chore, nil
}

// ownedList checks that a chore may be placed in listID. Chores in a list always
// share its owner, which list deletion relies on.
func (s *serviceImpl) ownedList(ctx context.Context, listID int64, userID string) error {
	list, err := s.listRepo.Get(ctx, shared.FilterByID(listID, listModel.FieldID, listModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("list_id", listID).Msg("failed to get list")

		return fmt.Errorf("failed to get list: %w", err)
	}

	if list.ID == 0 {
		return failure.BadRequestFromString(errListMissing) // nolint:wrapcheck
	}

	if list.UserID != userID {
		log.Warn().Int64("list_id", listID).Str("user_id", userID).Msg("chore placed in foreign list")

		return failure.Unauthorized(errNotAuthorizedList) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateChoreRequest) (res dto.UpdateChoreResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateChore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	update, err := req.ToUpdate()
	if err != nil {
		return res, err
	}

	if _, err = s.owned(ctx, id, errNotAuthorizedEdit); err != nil {
		return res, err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if update.ListID != nil {
		if err = s.ownedList(ctx, *update.ListID, userID); err != nil {
			return res, err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(update, userID), byID(id)); err != nil {
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to update chore")

		return res, fmt.Errorf("failed to update chore: %w", err)
	}

	chore, err := s.repo.GetDetail(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to reload chore")

		return res, fmt.Errorf("failed to reload chore: %w", err)
	}

	res.Chore.FromModel(chore)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64, req dto.DeleteChoreRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteChore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	chore, err := s.owned(ctx, id, errNotAuthorizedDel)
	if err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Int64("chore_id", id).Msg("failed to delete chore")

		return res, fmt.Errorf("failed to delete chore: %w", err)
	}

	name := req.ChoreName
	if name == "" {
		name = chore.ChoreName
	}

	res.Message = name + " has been deleted."

	return res, nil
}
