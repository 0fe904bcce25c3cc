package service

import (
	"context"
	"fmt"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/parent/model/dto"
	"kidstrainer/internal/domains/parent/repository"
	"kidstrainer/shared/constant"

	"github.com/rs/zerolog/log"
)

type Parent interface {
	FindOrCreate(ctx context.Context, handle database.Handle, req dto.FindOrCreateParentRequest) (int64, error)
}

type serviceImpl struct {
	repo repository.Parent
	otel otel.Otel
}

func New(repo repository.Parent, otel otel.Otel) Parent {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// FindOrCreate returns the id of the parent with the same email and phone,
// inserting one when none exists. An existing parent keeps its stored name.
func (s *serviceImpl) FindOrCreate(ctx context.Context, handle database.Handle, req dto.FindOrCreateParentRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindOrCreate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, found, err := s.repo.Get(ctx, handle, req.Identity())
	if err != nil {
		log.Error().Err(err).Msg("failed to look up parent")

		return 0, fmt.Errorf("failed to look up parent: %w", err)
	}

	if found {
		scope.AddEvent("reusing existing parent")
		scope.SetAttribute("parent.id", existing.ID)

		return existing.ID, nil
	}

	id, err = s.repo.Insert(ctx, handle, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create parent")

		return 0, fmt.Errorf("failed to create parent: %w", err)
	}

	scope.SetAttribute("parent.id", id)

	return id, nil
}
