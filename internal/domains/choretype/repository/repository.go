package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"choreboard/infras/otel"
	"choreboard/infras/postgres"
	"choreboard/internal/domains/choretype/model"
	gDto "choreboard/shared/dto"
	gRepo "choreboard/shared/repository"
)

type ChoreType interface {
	InsertReturningID(ctx context.Context, model model.ChoreType) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ChoreType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ChoreType]
}

func New(db *postgres.Connection, otel otel.Otel) ChoreType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ChoreType](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
