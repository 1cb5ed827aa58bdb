// Package apperr defines the two failure kinds a read request can end in and
// how each one is presented to HTTP callers.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound marks a lookup by identifier that matched no record.
	ErrNotFound = errors.New("not found")

	// ErrDataAccess marks an unreachable database or a failed query.
	ErrDataAccess = errors.New("data access failure")
)

// DataAccessError keeps the failed operation and driver error for logs while
// matching ErrDataAccess for classification.
type DataAccessError struct {
	Op    string
	Cause error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *DataAccessError) Unwrap() []error {
	return []error{ErrDataAccess, e.Cause}
}

// DataAccess wraps err as a data access failure of op. A nil err stays nil.
func DataAccess(op string, err error) error {
	if err == nil {
		return nil
	}
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return err
	}
	return &DataAccessError{Op: op, Cause: err}
}

// NotFound builds an ErrNotFound carrying what was looked up.
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// StatusCode maps err onto the HTTP status surfaced to callers.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err. Server-side failures are logged
// with their cause and answered with a generic message.
func Respond(c *fiber.Ctx, err error, notFoundMsg string) error {
	status := StatusCode(err)
	if status == fiber.StatusNotFound {
		return c.Status(status).JSON(fiber.Map{
			"error": notFoundMsg,
		})
	}

	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals("requestid")).
		Msg("request failed")

	return c.Status(status).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
