package trainer

import (
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/trainer/model/dto"
	"kidstrainer/internal/domains/trainer/service"
	"kidstrainer/shared/constant"
	"kidstrainer/shared/validator"
	"kidstrainer/transport/http/response"
	"kidstrainer/web"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	titleTrainers        = "Trainers"
	titleRegisterTrainer = "Register Trainer"
)

type Handler struct {
	service  service.Trainer
	db       *database.Connection
	renderer *web.Renderer
	otel     otel.Otel
}

func New(service service.Trainer, db *database.Connection, renderer *web.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		db:       db,
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.RouteTrainers, handler.ListTrainers)
	router.Get(constant.RouteRegisterTrainer, handler.RegisterTrainerForm)
	router.Post(constant.RouteRegisterTrainer, handler.RegisterTrainer)
}

// ListTrainers renders every registered trainer.
func (handler *Handler) ListTrainers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListTrainers")
	defer scope.End()

	conn, err := handler.db.Acquire(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to acquire connection")

		response.WithError(writer, err)

		return
	}
	defer handler.db.Release(conn)

	res, err := handler.service.GetAll(ctx, conn)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list trainers")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("trainer.count", len(res.Trainers))

	response.WithPage(writer, handler.renderer, web.PageTrainerList, web.Page{Title: titleTrainers, Data: res})
}

func (handler *Handler) RegisterTrainerForm(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterTrainerForm")
	defer scope.End()

	response.WithPage(writer, handler.renderer, web.PageTrainerRegister, web.Page{Title: titleRegisterTrainer})
}

// RegisterTrainer stores the submitted profile and sends the browser to the
// trainer list. A malformed price is stored as 0 rather than rejected.
func (handler *Handler) RegisterTrainer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterTrainer")
	defer scope.End()

	req := dto.RegisterTrainerRequest{}

	if err := validator.ValidateForm(request, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	conn, err := handler.db.Acquire(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to acquire connection")

		response.WithError(writer, err)

		return
	}
	defer handler.db.Release(conn)

	id, err := handler.service.Register(ctx, conn, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register trainer")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Trainer registered")
	log.Info().Int64("trainerID", id).Msg("trainer registered")

	response.WithRedirect(writer, request, constant.RouteTrainers)
}
