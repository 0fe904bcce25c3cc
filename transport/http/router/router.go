package router

import (
	"kidstrainer/internal/handlers/booking"
	"kidstrainer/internal/handlers/page"
	"kidstrainer/internal/handlers/trainer"
	"kidstrainer/shared/constant"
	"kidstrainer/web"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Page    page.Handler
	Trainer trainer.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Page.Router(router)
	r.DomainHandlers.Trainer.Router(router)
	r.DomainHandlers.Booking.Router(router)

	router.Handle(constant.RouteStatic+"/*", http.StripPrefix(constant.RouteStatic+"/", http.FileServer(http.FS(web.Static()))))
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
