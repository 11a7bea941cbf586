package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"shelter/internal/flash"
	"shelter/internal/services"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	store    *session.Store
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, store *session.Store) *UserHandler {
	return &UserHandler{
		service:  service,
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.HandleListUsers)
	users.Get("/:id", h.HandleShowUser)
	users.Get("/:id/edit", h.HandleEditUserForm)
	users.Post("/:id/edit", h.HandleEditUser)
	users.Post("/:id/delete", h.HandleDeleteUser)
}

// HandleListUsers shows the list of users.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return renderServerError(c, h.store, err)
	}
	return render(c, h.store, "users", fiber.Map{"Users": users})
}

// HandleShowUser shows a single user and their posts.
func (h *UserHandler) HandleShowUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return render(c, h.store, "user", fiber.Map{"User": user})
}

// HandleEditUserForm renders the edit form pre-populated with the
// user's current values.
func (h *UserHandler) HandleEditUserForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return render(c, h.store, "edit_user", fiber.Map{"User": user})
}

// HandleEditUser overwrites the user's editable fields. Submitting an
// empty image URL clears the stored one.
func (h *UserHandler) HandleEditUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}

	user.FirstName = strings.TrimSpace(c.FormValue("first_name"))
	user.LastName = strings.TrimSpace(c.FormValue("last_name"))
	if imageURL := strings.TrimSpace(c.FormValue("image_url")); imageURL == "" {
		user.ImageURL = nil
	} else {
		user.ImageURL = &imageURL
	}

	if err := h.validate.Struct(user); err != nil {
		if ferr := flash.Error(h.store, c, "Name fields cannot be blank"); ferr != nil {
			return renderServerError(c, h.store, ferr)
		}
		return render(c, h.store, "edit_user", fiber.Map{
			"User":   user,
			"Errors": validationMessages(err),
		})
	}

	if err := h.service.UpdateUser(user); err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return c.Redirect("/users/", fiber.StatusFound)
}

// HandleDeleteUser deletes the user and redirects to the list.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	if err := h.service.DeleteUser(id); err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return c.Redirect("/users/", fiber.StatusFound)
}
