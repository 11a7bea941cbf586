package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"shelter/internal/flash"
	"shelter/internal/models"
	"shelter/internal/services"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	posts    *services.PostService
	users    *services.UserService
	tags     *services.TagService
	store    *session.Store
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *services.PostService, users *services.UserService, tags *services.TagService, store *session.Store) *PostHandler {
	return &PostHandler{
		posts:    posts,
		users:    users,
		tags:     tags,
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the post routes with the Fiber app.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/:id/posts/new", h.HandleAddPostForm)
	router.Post("/users/:id/posts/new", h.HandleAddPost)
	router.Get("/posts/:id", h.HandleShowPost)
	router.Get("/posts/:id/edit", h.HandleEditPostForm)
	router.Post("/posts/:id/edit", h.HandleEditPost)
	router.Post("/posts/:id/delete", h.HandleDeletePost)
}

// HandleShowPost shows a single post with its owner and tags.
func (h *PostHandler) HandleShowPost(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	post, err := h.posts.GetPostByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return render(c, h.store, "post", fiber.Map{"Post": post})
}

// HandleAddPostForm renders the new-post form for the given user, with
// a checkbox per existing tag.
func (h *PostHandler) HandleAddPostForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	user, err := h.users.GetUserByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	allTags, err := h.tags.GetAllTags()
	if err != nil {
		return renderServerError(c, h.store, err)
	}
	return render(c, h.store, "add_post", fiber.Map{
		"User":    user,
		"Tags":    allTags,
		"Post":    models.Post{},
		"Checked": map[string]bool{},
	})
}

// HandleAddPost validates and persists a new post for the user, then
// redirects to the user's page.
func (h *PostHandler) HandleAddPost(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	user, err := h.users.GetUserByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	tagNames := formValues(c, "tags")

	rerender := func(fieldErrors map[string]string, message string) error {
		allTags, tagErr := h.tags.GetAllTags()
		if tagErr != nil {
			return renderServerError(c, h.store, tagErr)
		}
		if ferr := flash.Error(h.store, c, message); ferr != nil {
			return renderServerError(c, h.store, ferr)
		}
		return render(c, h.store, "add_post", fiber.Map{
			"User":    user,
			"Tags":    allTags,
			"Post":    models.Post{Title: title, Content: content},
			"Checked": checkedSet(tagNames),
			"Errors":  fieldErrors,
		})
	}

	if err := h.validate.Struct(models.Post{Title: title, Content: content}); err != nil {
		return rerender(validationMessages(err), "Title and content cannot be blank")
	}

	post, err := h.posts.CreatePost(user.ID, title, content, tagNames)
	if err != nil {
		var unknown *services.UnknownTagError
		if errors.As(err, &unknown) {
			return rerender(map[string]string{"Tags": unknown.Error()}, unknown.Error())
		}
		return notFoundOrServerError(c, h.store, err)
	}

	if err := flash.Success(h.store, c, fmt.Sprintf("Added %s", post.Title)); err != nil {
		return renderServerError(c, h.store, err)
	}
	return c.Redirect(fmt.Sprintf("/users/%d", user.ID), fiber.StatusFound)
}

// HandleEditPostForm renders the edit form pre-populated with the
// post's current values and tag set.
func (h *PostHandler) HandleEditPostForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	post, err := h.posts.GetPostByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	allTags, err := h.tags.GetAllTags()
	if err != nil {
		return renderServerError(c, h.store, err)
	}
	checked := map[string]bool{}
	for _, tag := range post.Tags {
		checked[tag.Name] = true
	}
	return render(c, h.store, "edit_post", fiber.Map{
		"Post":    post,
		"Tags":    allTags,
		"Checked": checked,
	})
}

// HandleEditPost overwrites the post's title and content and replaces
// its entire tag set with the submitted one.
func (h *PostHandler) HandleEditPost(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	post, err := h.posts.GetPostByID(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}

	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	tagNames := formValues(c, "tags")

	rerender := func(fieldErrors map[string]string, message string) error {
		allTags, tagErr := h.tags.GetAllTags()
		if tagErr != nil {
			return renderServerError(c, h.store, tagErr)
		}
		if ferr := flash.Error(h.store, c, message); ferr != nil {
			return renderServerError(c, h.store, ferr)
		}
		post.Title = title
		post.Content = content
		return render(c, h.store, "edit_post", fiber.Map{
			"Post":    post,
			"Tags":    allTags,
			"Checked": checkedSet(tagNames),
			"Errors":  fieldErrors,
		})
	}

	if err := h.validate.Struct(models.Post{Title: title, Content: content}); err != nil {
		return rerender(validationMessages(err), "Title and content cannot be blank")
	}

	if _, err := h.posts.UpdatePost(id, title, content, tagNames); err != nil {
		var unknown *services.UnknownTagError
		if errors.As(err, &unknown) {
			return rerender(map[string]string{"Tags": unknown.Error()}, unknown.Error())
		}
		return notFoundOrServerError(c, h.store, err)
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", id), fiber.StatusFound)
}

// HandleDeletePost deletes the post and redirects to its owner.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	ownerID, err := h.posts.DeletePost(id)
	if err != nil {
		return notFoundOrServerError(c, h.store, err)
	}
	return c.Redirect(fmt.Sprintf("/users/%d", ownerID), fiber.StatusFound)
}

func checkedSet(names []string) map[string]bool {
	checked := make(map[string]bool, len(names))
	for _, name := range names {
		checked[name] = true
	}
	return checked
}
