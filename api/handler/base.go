package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

// respondError maps a domain error onto the wire. Unclassified errors are
// logged and surfaced generically so internals never leak.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	if code == string(domain.ErrCodeInternal) {
		h.logger.Error("unexpected error", zap.Error(err))
		h.respondJSON(ctx, status, transport.NewError(code, "an unexpected error occurred", nil))
		return
	}
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), validationFields(err)))
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	case domain.IsDomainError(err, domain.ErrCodeValidation):
		return http.StatusBadRequest, string(domain.ErrCodeValidation)
	case domain.IsDomainError(err, domain.ErrCodeInvalidAssignment):
		return http.StatusConflict, string(domain.ErrCodeInvalidAssignment)
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict, string(domain.ErrCodeConflict)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}

// validationFields surfaces per-field reasons as response metadata.
func validationFields(err error) interface{} {
	var dErr *domain.Error
	if errors.As(err, &dErr) && len(dErr.Fields) > 0 {
		return map[string]interface{}{"fields": dErr.Fields}
	}
	return nil
}

func pathValue(ctx *fasthttp.RequestCtx, key string) string {
	value, _ := ctx.UserValue(key).(string)
	return value
}
