package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/parent/model"
	gDto "kidstrainer/shared/dto"
	gRepo "kidstrainer/shared/repository"
)

type Parent interface {
	Insert(ctx context.Context, handle database.Handle, model model.Parent) (int64, error)
	Get(ctx context.Context, handle database.Handle, filter gDto.FilterGroup) (model.Parent, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Parent]
}

func New(otel otel.Otel) Parent {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Parent](model.EntityName, model.TableName, model.FieldID, otel),
	}
}
