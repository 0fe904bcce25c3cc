package service

import (
	"context"
	"errors"
	"fmt"
	"kidstrainer/config"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/trainer/model"
	"kidstrainer/internal/domains/trainer/model/dto"
	"kidstrainer/internal/domains/trainer/repository"
	"kidstrainer/shared"
	"kidstrainer/shared/cache"
	"kidstrainer/shared/constant"
	gDto "kidstrainer/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrainer     = "trainer:get"
	cacheGetAllTrainer  = "trainer:gets"
	cacheVersionTrainer = "trainer:version"
)

type Trainer interface {
	Register(ctx context.Context, handle database.Handle, req dto.RegisterTrainerRequest) (int64, error)
	GetAll(ctx context.Context, handle database.Handle) (dto.GetTrainersResponse, error)
	Get(ctx context.Context, handle database.Handle, id int64) (dto.TrainerResponse, bool, error)
}

type serviceImpl struct {
	repo  repository.Trainer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Trainer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Trainer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Register stores a new trainer profile. Duplicate profiles are accepted.
func (s *serviceImpl) Register(ctx context.Context, handle database.Handle, req dto.RegisterTrainerRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, handle, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to register trainer")

		return 0, fmt.Errorf("failed to register trainer: %w", err)
	}

	scope.SetAttribute("trainer.id", id)

	// Bumping the version before returning makes the redirected list read a
	// fresh key. A list fill still in flight writes under the old version,
	// which nothing reads any more.
	if _, cacheErr := s.cache.Incr(ctx, cacheVersionTrainer, 0); cacheErr != nil && !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Msg("failed to bump trainer list version")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllTrainer)

	return id, nil
}

// GetAll lists every trainer. There is no ordering, filtering or paging.
func (s *serviceImpl) GetAll(ctx context.Context, handle database.Handle) (res dto.GetTrainersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := s.listCacheKey(ctx)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for trainers")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, handle, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get trainers")

		return res, fmt.Errorf("failed to get trainers: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trainers to cache")
		}
	}()

	return res, nil
}

// listCacheKey scopes the list cache to the current version. A missing
// version reads as 0.
func (s *serviceImpl) listCacheKey(ctx context.Context) string {
	var version int64

	if err := s.cache.Get(ctx, cacheVersionTrainer, &version); err != nil {
		version = 0
	}

	return shared.BuildCacheKey(cacheGetAllTrainer, version)
}

// Get looks a trainer up by id. A missing trainer is reported through found,
// never as an error.
func (s *serviceImpl) Get(ctx context.Context, handle database.Handle, id int64) (res dto.TrainerResponse, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetTrainer, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for trainer")

		return res, true, nil
	}

	trainer, found, err := s.repo.Get(ctx, handle, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get trainer")

		return res, false, fmt.Errorf("failed to get trainer: %w", err)
	}

	if !found {
		scope.AddEvent("trainer not found")

		return res, false, nil
	}

	res.FromModel(trainer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trainer to cache")
		}
	}()

	return res, true, nil
}
