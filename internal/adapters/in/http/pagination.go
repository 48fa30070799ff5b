package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// parsePageRequest reads page, size and sort query parameters.
// Missing parameters fall back to the first page, the default page size and
// the endpoint's default sort field.
func parsePageRequest(ctx echo.Context, defaultSort string) (kernel.PageRequest, error) {
	page, err := parseIntParam(ctx, "page", 0)
	if err != nil {
		return kernel.PageRequest{}, err
	}

	size, err := parseIntParam(ctx, "size", kernel.DefaultPageSize)
	if err != nil {
		return kernel.PageRequest{}, err
	}

	sort := ctx.QueryParam("sort")
	if sort == "" {
		sort = defaultSort
	}

	return kernel.NewPageRequest(page, size, sort)
}

func parseIntParam(ctx echo.Context, name string, defaultValue int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a number", raw))
	}
	return value, nil
}

// parseInt64Query parses a positive numeric query parameter value.
func parseInt64Query(raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%q is not a valid identifier", raw))
	}
	return value, nil
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(ctx echo.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a valid identifier", raw))
	}
	return id, nil
}
