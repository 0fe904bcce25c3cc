package page

import (
	"kidstrainer/infras/otel"
	"kidstrainer/shared/constant"
	"kidstrainer/transport/http/response"
	"kidstrainer/web"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	titleHome     = "Home"
	titleThankYou = "Thank You"
)

// Handler serves the pages that need no storage.
type Handler struct {
	renderer *web.Renderer
	otel     otel.Otel
}

func New(renderer *web.Renderer, otel otel.Otel) Handler {
	return Handler{
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.RouteHome, handler.Home)
	router.Get(constant.RouteThankYou, handler.ThankYou)
}

func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	response.WithPage(writer, handler.renderer, web.PageIndex, web.Page{Title: titleHome})
}

func (handler *Handler) ThankYou(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ThankYou")
	defer scope.End()

	response.WithPage(writer, handler.renderer, web.PageThankYou, web.Page{Title: titleThankYou})
}
