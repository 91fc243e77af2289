package response

import (
	"encoding/json"
	"net/http"
	"tasker/shared/constant"
	"tasker/shared/failure"
	"tasker/shared/logger"
)

// Detail is the error envelope: every non-2xx body is {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

// WithJSON sends a response containing the given payload serialized as-is.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty 204 response.
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends a response with the error's message under the detail key.
// Unauthenticated responses additionally challenge with WWW-Authenticate.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code == http.StatusUnauthorized {
		writer.Header().Set(constant.RequestHeaderWWWAuthenticate, constant.AuthSchemeBearer)
	}

	response(writer, code, Detail{Detail: err.Error()})
}

// WithDetail sends a response with a plain text message under the detail key.
func WithDetail(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Detail{Detail: message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
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
