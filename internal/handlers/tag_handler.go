package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"shelter/internal/flash"
	"shelter/internal/models"
	"shelter/internal/services"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	service  *services.TagService
	store    *session.Store
	validate *validator.Validate
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service *services.TagService, store *session.Store) *TagHandler {
	return &TagHandler{
		service:  service,
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the tag routes with the Fiber app. The
// static /new routes go first so they are not captured by :id.
func (h *TagHandler) RegisterRoutes(router fiber.Router) {
	tags := router.Group("/tags")
	tags.Get("/", h.HandleListTags)
	tags.Get("/new", h.HandleAddTagForm)
	tags.Post("/new", h.HandleAddTag)
	tags.Get("/:id", h.HandleShowTag)
	tags.Get("/:id/edit", h.HandleEditTagForm)
	tags.Post("/:id/edit", h.HandleEditTag)
	tags.Post("/:id/delete", h.HandleDeleteTag)
}

// HandleListTags shows the list of tags.
func (h *TagHandler) HandleListTags(c *fiber.Ctx) error {
	tags, err := h.service.GetAllTags()
	if err != nil {
		return renderServerError(c, h.store, err)
	}
	return render(c, h.store, "tags", fiber.Map{"Tags": tags})
}

// HandleShowTag shows a single tag and the posts carrying it.
func (h *TagHandler) HandleShowTag(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	tag, err := h.service.GetTagByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return render(c, h.store, "tag", fiber.Map{"Tag": tag})
}

// HandleAddTagForm renders the empty new-tag form.
func (h *TagHandler) HandleAddTagForm(c *fiber.Ctx) error {
	return render(c, h.store, "add_tag", fiber.Map{"Name": ""})
}

// HandleAddTag creates a tag. Blank or duplicate names re-render the
// form; duplicates are checked case-sensitively before insert.
func (h *TagHandler) HandleAddTag(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))

	tag := models.Tag{Name: name}
	if err := h.validate.Struct(tag); err != nil {
		if ferr := flash.Error(h.store, c, "Name field cannot be blank"); ferr != nil {
			return renderServerError(c, h.store, ferr)
		}
		return render(c, h.store, "add_tag", fiber.Map{
			"Name":   name,
			"Errors": validationMessages(err),
		})
	}

	if err := h.service.CreateTag(&tag); err != nil {
		if errors.Is(err, services.ErrTagExists) {
			if ferr := flash.Error(h.store, c, "That tag already exists"); ferr != nil {
				return renderServerError(c, h.store, ferr)
			}
			return render(c, h.store, "add_tag", fiber.Map{
				"Name":   name,
				"Errors": map[string]string{"Name": "That tag already exists"},
			})
		}
		return renderServerError(c, h.store, err)
	}

	return c.Redirect("/tags/", fiber.StatusFound)
}

// HandleEditTagForm renders the edit form with the tag's current name.
func (h *TagHandler) HandleEditTagForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	tag, err := h.service.GetTagByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return render(c, h.store, "edit_tag", fiber.Map{"Tag": tag, "Name": tag.Name})
}

// HandleEditTag renames a tag. Keeping the current name is allowed;
// blank names and collisions with other tags re-render the form.
func (h *TagHandler) HandleEditTag(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	tag, err := h.service.GetTagByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if err := h.validate.Struct(models.Tag{ID: tag.ID, Name: name}); err != nil {
		if ferr := flash.Error(h.store, c, "Name field cannot be blank"); ferr != nil {
			return renderServerError(c, h.store, ferr)
		}
		return render(c, h.store, "edit_tag", fiber.Map{
			"Tag":    tag,
			"Name":   name,
			"Errors": validationMessages(err),
		})
	}

	if _, err := h.service.UpdateTag(id, name); err != nil {
		if errors.Is(err, services.ErrTagExists) {
			if ferr := flash.Error(h.store, c, "That tag already exists"); ferr != nil {
				return renderServerError(c, h.store, ferr)
			}
			return render(c, h.store, "edit_tag", fiber.Map{
				"Tag":    tag,
				"Name":   name,
				"Errors": map[string]string{"Name": "That tag already exists"},
			})
		}
		return notFoundOrServerError(c, h.store, err)
	}

	return c.Redirect("/tags/", fiber.StatusFound)
}

// HandleDeleteTag deletes the tag and its join-table rows, then
// redirects to the list.
func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	if err := h.service.DeleteTag(id); err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return c.Redirect("/tags/", fiber.StatusFound)
}
