package response

import (
	"encoding/json"
	"kidstrainer/shared/constant"
	"kidstrainer/shared/failure"
	"kidstrainer/shared/logger"
	"kidstrainer/web"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithPage renders a full HTML page with status 200.
func WithPage(writer http.ResponseWriter, renderer *web.Renderer, page string, data web.Page) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)

	if err := renderer.Render(writer, page, data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("failed to render page")

		WithError(writer, err)
	}
}

// WithRedirect answers with 303 See Other so the browser follows up with GET.
func WithRedirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}

// WithError sends a plain text error. Client errors carry their message,
// everything else only the status text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	msg := http.StatusText(code)
	if code < http.StatusInternalServerError {
		msg = err.Error()
	}

	http.Error(writer, msg, code)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
