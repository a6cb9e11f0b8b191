package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"choreboard/infras/otel"
	"choreboard/infras/postgres"
	"choreboard/internal/domains/chore/model"
	gDto "choreboard/shared/dto"
	gRepo "choreboard/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Chore interface {
	InsertReturningID(ctx context.Context, model model.Chore) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Chore, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ChoreDetail, error)
	GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ChoreDetail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Chore]
	detail gRepo.Repository[model.ChoreDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Chore {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Chore](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.ChoreDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ChoreDetail, error) {
	return r.detail.Get(ctx, filter)
}

func (r *repositoryImpl) GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ChoreDetail, error) {
	return r.detail.GetAll(ctx, params, filter)
}
