package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"choreboard/infras/otel"
	"choreboard/infras/postgres"
	"choreboard/internal/domains/list/model"
	gDto "choreboard/shared/dto"
	gRepo "choreboard/shared/repository"

	"github.com/jmoiron/sqlx"
)

type List interface {
	InsertReturningID(ctx context.Context, model model.List) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.List, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.List, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.List]
}

func New(db *postgres.Connection, otel otel.Otel) List {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.List](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
