package service

import (
	"context"
	"fmt"

	"choreboard/config"
	"choreboard/infras/otel"
	"choreboard/internal/domains/choretype/model"
	"choreboard/internal/domains/choretype/model/dto"
	"choreboard/internal/domains/choretype/repository"
	"choreboard/shared/constant"
	gDto "choreboard/shared/dto"
	"choreboard/shared/failure"

	"github.com/rs/zerolog/log"
)

type ChoreType interface {
	List(ctx context.Context) (dto.GetChoreTypesResponse, error)
	Create(ctx context.Context, req dto.CreateChoreTypeRequest) (dto.ChoreTypeResponse, error)
}

type serviceImpl struct {
	repo repository.ChoreType
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.ChoreType, cfg *config.Config, otel otel.Otel) ChoreType {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetChoreTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListChoreTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	choreTypes, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get chore types")

		return res, fmt.Errorf("failed to get chore types: %w", err)
	}

	res.FromModels(choreTypes)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateChoreTypeRequest) (res dto.ChoreTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateChoreType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.repo.Exist(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldChoreType, req.ChoreType)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check chore type")

		return res, fmt.Errorf("failed to check chore type: %w", err)
	}

	if exists {
		return res, failure.Conflict(fmt.Sprintf("chore type %q already exists", req.ChoreType)) // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	choreType := req.ToModel(userID)

	choreType.ID, err = s.repo.InsertReturningID(ctx, choreType)
	if err != nil {
		log.Error().Err(err).Msg("failed to create chore type")

		return res, fmt.Errorf("failed to create chore type: %w", err)
	}

	res.FromModel(choreType)

	return res, nil
}
