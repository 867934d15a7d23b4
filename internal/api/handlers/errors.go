package handlers

import (
	"errors"
	"food-order-api/domain"
	"food-order-api/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// errorStatus maps domain errors onto HTTP status codes. Anything unknown is
// an internal error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidBody),
		errors.Is(err, domain.ErrNoDataProvided),
		errors.Is(err, domain.ErrCredentialsRequired),
		errors.Is(err, domain.ErrUsernameEmpty),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrRecipeMissingData),
		errors.Is(err, domain.ErrInvalidOrderPayload),
		errors.Is(err, domain.ErrOrderRecipeNotFound),
		errors.Is(err, domain.ErrNoFile),
		errors.Is(err, domain.ErrNoFilename),
		errors.Is(err, domain.ErrDisallowedFileType):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUploadNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsernameExists),
		errors.Is(err, domain.ErrRecipeInUse):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	code := errorStatus(err)
	if code == fiber.StatusInternalServerError {
		if !errors.Is(err, domain.ErrUpdateUserFailed) {
			log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
			err = domain.ErrInternal
		}
	}
	return presenters.ErrorResponse(c, code, err)
}

// idParam reads a positive integer route parameter. Anything else is reported
// as notFound, mirroring a route that does not match.
func idParam(c *fiber.Ctx, notFound error) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return uint(id), nil
}
