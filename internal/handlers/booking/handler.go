package booking

import (
	"fmt"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/internal/domains/booking/model/dto"
	"kidstrainer/internal/domains/booking/service"
	trainerService "kidstrainer/internal/domains/trainer/service"
	"kidstrainer/shared/constant"
	"kidstrainer/shared/failure"
	"kidstrainer/shared/validator"
	"kidstrainer/transport/http/response"
	"kidstrainer/web"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Booking
	trainerService trainerService.Trainer
	db             *database.Connection
	renderer       *web.Renderer
	otel           otel.Otel
}

func New(service service.Booking, trainerService trainerService.Trainer, db *database.Connection, renderer *web.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		trainerService: trainerService,
		db:             db,
		renderer:       renderer,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteBook, func(routerGroup chi.Router) {
		path := fmt.Sprintf("/{%s:[0-9]+}", constant.RequestParamTrainerID)

		routerGroup.Get(path, handler.BookingForm)
		routerGroup.Post(path, handler.SubmitBooking)
	})
}

// BookingForm shows the booking form for one trainer, or sends the browser
// back to the list when the trainer does not exist.
func (handler *Handler) BookingForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingForm")
	defer scope.End()

	trainerID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamTrainerID), 10, 64)
	if err != nil {
		scope.AddEvent("Unparseable trainer id")
		response.WithRedirect(writer, request, constant.RouteTrainers)

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

	trainer, found, err := handler.trainerService.Get(ctx, conn, trainerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("trainerID", trainerID).Msg("failed to get trainer")

		response.WithError(writer, err)

		return
	}

	if !found {
		log.Debug().Int64("trainerID", trainerID).Msg("trainer not found, redirecting to list")
		response.WithRedirect(writer, request, constant.RouteTrainers)

		return
	}

	response.WithPage(writer, handler.renderer, web.PageBooking, web.Page{Title: "Book " + trainer.Name, Data: trainer})
}

// SubmitBooking records the parent and the booking in one transaction and
// redirects to the confirmation page.
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	trainerID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamTrainerID), 10, 64)
	if err != nil {
		err = failure.BadRequestFromString("invalid trainer id")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.CreateBookingRequest{}

	if err = validator.ValidateForm(request, &req); err != nil {
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

	var bookingID int64

	err = database.InTx(ctx, conn, func(tx database.Handle) error {
		var txErr error
		bookingID, txErr = handler.service.Submit(ctx, tx, trainerID, req)

		return txErr
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("trainerID", trainerID).Msg("failed to submit booking")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("booking.id", bookingID)
	scope.AddEvent("Booking submitted")

	response.WithRedirect(writer, request, constant.RouteThankYou)
}
