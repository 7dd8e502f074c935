package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// Wire parameter names are camelCase; the repository speaks snake_case field
// names. Unknown sort fields pass through and fall back to id at the store.
var sortFieldAliases = map[string]string{
	"dueDate":   repository.FieldDueDate,
	"projectId": repository.FieldProjectID,
}

func queryParam(ctx *fasthttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

// parsePageRequest reads page, size and sort query parameters. Sort uses the
// lenient "field,dir" syntax with id ascending as the default.
func parsePageRequest(ctx *fasthttp.RequestCtx) repository.PageRequest {
	page := repository.PageRequest{
		Number: parseInt(queryParam(ctx, "page"), 0),
		Size:   parseInt(queryParam(ctx, "size"), 10),
	}

	parts := strings.Split(queryParam(ctx, "sort"), ",")
	if len(parts) == 2 {
		field := strings.TrimSpace(parts[0])
		if mapped, ok := sortFieldAliases[field]; ok {
			field = mapped
		}
		page.SortField = field
		if strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			page.SortDir = repository.SortDesc
		}
	}

	return page.Normalize()
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(ctx *fasthttp.RequestCtx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(queryParam(ctx, key))
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(transport.DateLayout, raw)
	if err != nil {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:  key,
			Reason: "must be a date in format YYYY-MM-DD",
		})
	}
	return &parsed, nil
}
