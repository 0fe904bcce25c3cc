package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/trainer/model"
	gDto "kidstrainer/shared/dto"
	gRepo "kidstrainer/shared/repository"
)

type Trainer interface {
	Insert(ctx context.Context, handle database.Handle, model model.Trainer) (int64, error)
	Get(ctx context.Context, handle database.Handle, filter gDto.FilterGroup) (model.Trainer, bool, error)
	GetAll(ctx context.Context, handle database.Handle, filter gDto.FilterGroup) ([]model.Trainer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Trainer]
}

func New(otel otel.Otel) Trainer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Trainer](model.EntityName, model.TableName, model.FieldID, otel),
	}
}
