package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamTrainerID = "trainerID"
)

const (
	FormFieldName        = "name"
	FormFieldSport       = "sport"
	FormFieldCredentials = "credentials"
	FormFieldBio         = "bio"
	FormFieldPrice       = "price"
	FormFieldEmail       = "email"
	FormFieldPhone       = "phone"

	FormFieldParentName  = "parent_name"
	FormFieldParentEmail = "parent_email"
	FormFieldParentPhone = "parent_phone"
	FormFieldDate        = "date"
	FormFieldTime        = "time"
	FormFieldNotes       = "notes"
)

const (
	RouteHome            = "/"
	RouteTrainers        = "/trainers"
	RouteRegisterTrainer = "/register_trainer"
	RouteBook            = "/book"
	RouteThankYou        = "/thank_you"
	RouteStatic          = "/static"
	RouteHealth          = "/health"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeHTML      = "text/html; charset=utf-8"
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeMultipart = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseHealthy                   = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
