package handler

import (
	"strconv"

	"store/internal/delivery/api/response"
	"store/internal/delivery/api/validator"
	domainerrors "store/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive int64 path parameter. ok is false once the 400 has been written.
func pathID(c echo.Context, name string) (id int64, ok bool, err error) {
	id, parseErr := strconv.ParseInt(c.Param(name), 10, 64)
	if parseErr != nil || id <= 0 {
		return 0, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// bindAndValidate binds the request body into req and validates it. ok is false once the 400 has been written.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, validationError(c, err)
	}

	return true, nil
}

func validationError(c echo.Context, err error) error {
	code := domainerrors.ErrValidationFailed.ErrorCode()
	message := domainerrors.ErrValidationFailed.Message()

	if fields := validator.FieldErrors(err); fields != nil {
		return response.BadRequestWithDetails(c, code, message, fields)
	}

	return response.BadRequestWithDetails(c, code, message, err.Error())
}
