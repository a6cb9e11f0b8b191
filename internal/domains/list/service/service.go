package service

import (
	"context"
	"fmt"

	"choreboard/config"
	"choreboard/infras/otel"
	choreModel "choreboard/internal/domains/chore/model"
	choreRepo "choreboard/internal/domains/chore/repository"
	"choreboard/internal/domains/list/model"
	"choreboard/internal/domains/list/model/dto"
	"choreboard/internal/domains/list/repository"
	userModel "choreboard/internal/domains/user/model"
	userRepo "choreboard/internal/domains/user/repository"
	"choreboard/shared"
	"choreboard/shared/constant"
	gDto "choreboard/shared/dto"
	"choreboard/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errListNotFound      = "List not found."
	errNotAuthorizedView = "You're not authorized to view this list."
	errNotAuthorizedEdit = "You're not authorized to edit this list."
	errNotAuthorizedDel  = "You're not authorized to delete this list."
)

type List interface {
	Overview(ctx context.Context) (dto.OverviewResponse, error)
	Get(ctx context.Context, id int64) (dto.ListWithChoresResponse, error)
	Create(ctx context.Context, req dto.CreateListRequest) (dto.ListResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateListRequest) (dto.UpdateListResponse, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type serviceImpl struct {
	repo      repository.List
	choreRepo choreRepo.Chore
	userRepo  userRepo.User
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.List, choreRepo choreRepo.Chore, userRepo userRepo.User, cfg *config.Config, otel otel.Otel) List {
	return &serviceImpl{
		repo:      repo,
		choreRepo: choreRepo,
		userRepo:  userRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

func byID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func choresOf(userID string, listID *int64) gDto.FilterGroup {
	filter := gDto.And(gDto.Eq(choreModel.TableName, choreModel.FieldUserID, userID))
	if listID != nil {
		filter.Add(gDto.Eq(choreModel.TableName, choreModel.FieldListID, *listID))
	}

	return filter
}

var (
	listOrder  = gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}
	choreOrder = gDto.QueryParams{SortBy: choreModel.FieldDueDate, SortDir: gDto.SortDirAsc}
)

// Overview loads the session user's name, lists and chores.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.OverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName), userModel.FieldID, userModel.FieldUserName)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	lists, err := s.repo.GetAll(ctx, listOrder, gDto.And(gDto.Eq(model.TableName, model.FieldUserID, userID)))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get lists")

		return res, fmt.Errorf("failed to get lists: %w", err)
	}

	chores, err := s.choreRepo.GetAllDetails(ctx, choreOrder, choresOf(userID, nil))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get chores")

		return res, fmt.Errorf("failed to get chores: %w", err)
	}

	res.FromModels(user.UserName, lists, chores)

	return res, nil
}

func (s *serviceImpl) owned(ctx context.Context, id int64, deniedMsg string) (model.List, error) {
	list, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Int64("list_id", id).Msg("failed to get list")

		return list, fmt.Errorf("failed to get list: %w", err)
	}

	if list.ID == 0 {
		return list, failure.NotFound(errListNotFound) // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if list.UserID != userID {
		log.Warn().Int64("list_id", id).Str("user_id", userID).Msg("list access denied")

		return list, failure.Unauthorized(deniedMsg) // nolint:wrapcheck
	}

	return list, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ListWithChoresResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	list, err := s.owned(ctx, id, errNotAuthorizedView)
	if err != nil {
		return res, err
	}

	chores, err := s.choreRepo.GetAllDetails(ctx, choreOrder, choresOf(list.UserID, &list.ID))
	if err != nil {
		log.Error().Err(err).Int64("list_id", id).Msg("failed to get chores of list")

		return res, fmt.Errorf("failed to get chores of list: %w", err)
	}

	res.FromModel(list, chores)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateListRequest) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	list := req.ToModel(userID)

	list.ID, err = s.repo.InsertReturningID(ctx, list)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to create list")

		return res, fmt.Errorf("failed to create list: %w", err)
	}

	res.FromModel(list)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateListRequest) (res dto.UpdateListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	list, err := s.owned(ctx, id, errNotAuthorizedEdit)
	if err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, list.UserID), byID(id)); err != nil {
		log.Error().Err(err).Int64("list_id", id).Msg("failed to update list")

		return res, fmt.Errorf("failed to update list: %w", err)
	}

	list.ListName = req.ListName
	res.List.FromModel(list)

	return res, nil
}

// Delete removes the list and its chores in one transaction and returns the confirmation message.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	list, err := s.owned(ctx, id, errNotAuthorizedDel)
	if err != nil {
		return "", err
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		// chores can only be placed in lists their owner holds
		choreFilter := gDto.And(gDto.Eq(choreModel.TableName, choreModel.FieldListID, id))
		if err := s.choreRepo.DeleteTx(ctx, tx, choreFilter); err != nil {
			return fmt.Errorf("failed to delete chores of list: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, byID(id)); err != nil {
			return fmt.Errorf("failed to delete list: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("list_id", id).Msg("failed to delete list")

		return "", err
	}

	return list.ListName + " has been deleted.", nil
}
