package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/booking/model"
	gRepo "kidstrainer/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, handle database.Handle, model model.Booking) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, otel),
	}
}
