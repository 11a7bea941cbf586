package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"shelter/internal/flash"
	"shelter/internal/repositories"
)

// parseID reads the :id route parameter. Anything that is not a
// positive integer resolves like a missing record.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// formValues returns every submitted value for a multi-valued field,
// such as a group of tag checkboxes.
func formValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().PostArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}

// validationMessages flattens validator errors into a field-to-message
// map the templates can surface next to each input.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["Form"] = err.Error()
		return messages
	}
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages[e.Field()] = fmt.Sprintf("%s is required", e.Field())
		case "url":
			messages[e.Field()] = fmt.Sprintf("%s must be a valid URL", e.Field())
		case "oneof":
			messages[e.Field()] = fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
		case "gte", "lte":
			messages[e.Field()] = fmt.Sprintf("%s must be between 0 and 30", e.Field())
		default:
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}

// render wraps c.Render, draining pending flash messages into the
// view. Every view gets an Errors map so field lookups never hit a
// missing key.
func render(c *fiber.Ctx, store *session.Store, name string, data fiber.Map) error {
	data["Flash"] = flash.Pop(store, c)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	return c.Render(name, data)
}

func renderNotFound(c *fiber.Ctx, store *session.Store) error {
	c.Status(fiber.StatusNotFound)
	return render(c, store, "error", fiber.Map{
		"Title":   "Not Found",
		"Message": "The record you asked for does not exist.",
	})
}

func renderServerError(c *fiber.Ctx, store *session.Store, err error) error {
	log.Printf("internal error: %v", err)
	c.Status(fiber.StatusInternalServerError)
	return render(c, store, "error", fiber.Map{
		"Title":   "Something went wrong",
		"Message": "An unexpected error occurred. Please try again.",
	})
}

// notFoundOrServerError maps a repository miss to 404 and anything
// else to 500.
func notFoundOrServerError(c *fiber.Ctx, store *session.Store, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return renderNotFound(c, store)
	}
	return renderServerError(c, store, err)
}
