package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUsername contextKey = "username"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RequestParamID = "id"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderWWWAuthenticate    = "WWW-Authenticate"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON  = "application/json"
	AuthSchemeBearer = "Bearer"
	AuthHeaderPrefix = "Bearer "
)

const (
	ResponseErrorPrepareShutdown      = "Server preparing to shut down"
	ResponseErrorUnhealthy            = "Server unhealthy"
	ResponseErrorRequestLimitExceeded = "Request limit exceeded"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
