package service

import (
	"context"
	"fmt"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/booking/model/dto"
	"kidstrainer/internal/domains/booking/repository"
	parentService "kidstrainer/internal/domains/parent/service"
	"kidstrainer/shared/constant"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, handle database.Handle, parentID, trainerID int64, req dto.CreateBookingRequest) (int64, error)
	Submit(ctx context.Context, handle database.Handle, trainerID int64, req dto.CreateBookingRequest) (int64, error)
}

type serviceImpl struct {
	repo          repository.Booking
	parentService parentService.Parent
	otel          otel.Otel
}

func New(repo repository.Booking, parentService parentService.Parent, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:          repo,
		parentService: parentService,
		otel:          otel,
	}
}

// Create stores a booking. trainerID is not checked against the trainers
// table; whether a dangling id is rejected is up to the store.
func (s *serviceImpl) Create(ctx context.Context, handle database.Handle, parentID, trainerID int64, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"parent.id":  parentID,
		"trainer.id": trainerID,
	})

	id, err = s.repo.Insert(ctx, handle, req.ToModel(parentID, trainerID))
	if err != nil {
		log.Error().Err(err).Int64("trainerID", trainerID).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

// Submit resolves the parent and records the booking on the same handle.
// Callers wanting both rows to commit together pass a transaction.
func (s *serviceImpl) Submit(ctx context.Context, handle database.Handle, trainerID int64, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parentID, err := s.parentService.FindOrCreate(ctx, handle, req.Parent())
	if err != nil {
		return 0, fmt.Errorf("failed to resolve parent: %w", err)
	}

	id, err = s.Create(ctx, handle, parentID, trainerID, req)
	if err != nil {
		return 0, err
	}

	log.Info().Int64("bookingID", id).Int64("parentID", parentID).Int64("trainerID", trainerID).Msg("booking submitted")

	return id, nil
}
