package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"shelter/internal/flash"
	"shelter/internal/models"
	"shelter/internal/services"
)

// PetHandler handles HTTP requests for pets.
type PetHandler struct {
	service  *services.PetService
	store    *session.Store
	validate *validator.Validate
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *services.PetService, store *session.Store) *PetHandler {
	return &PetHandler{
		service:  service,
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the pet routes with the Fiber app.
func (h *PetHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleListPets)
	router.Get("/add", h.HandleAddPetForm)
	router.Post("/add", h.HandleAddPet)
}

// HandleListPets shows the list of pets on the home page.
func (h *PetHandler) HandleListPets(c *fiber.Ctx) error {
	pets, err := h.service.GetAllPets()
	if err != nil {
		return renderServerError(c, h.store, err)
	}
	return render(c, h.store, "home", fiber.Map{"Pets": pets})
}

// HandleAddPetForm renders the empty add-pet form.
func (h *PetHandler) HandleAddPetForm(c *fiber.Ctx) error {
	return render(c, h.store, "add_pet", fiber.Map{
		"SpeciesOptions": models.PetSpecies,
		"Pet":            models.Pet{},
		"AgeValue":       "",
	})
}

// HandleAddPet validates and persists a new pet, then redirects home.
// Invalid input re-renders the form with the submitted values kept.
func (h *PetHandler) HandleAddPet(c *fiber.Ctx) error {
	pet := models.Pet{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Species:  c.FormValue("species"),
		PhotoURL: strings.TrimSpace(c.FormValue("photo_url")),
		Notes:    c.FormValue("notes"),
	}

	fieldErrors := make(map[string]string)
	if ageRaw := strings.TrimSpace(c.FormValue("age")); ageRaw != "" {
		age, err := strconv.Atoi(ageRaw)
		if err != nil {
			fieldErrors["Age"] = "Age must be a whole number"
		} else {
			pet.Age = &age
		}
	}

	if err := h.validate.Struct(pet); err != nil {
		for field, msg := range validationMessages(err) {
			fieldErrors[field] = msg
		}
	}

	if len(fieldErrors) > 0 {
		if err := flash.Error(h.store, c, "Please fix the errors below"); err != nil {
			return renderServerError(c, h.store, err)
		}
		return render(c, h.store, "add_pet", fiber.Map{
			"SpeciesOptions": models.PetSpecies,
			"Pet":            pet,
			"AgeValue":       c.FormValue("age"),
			"Errors":         fieldErrors,
		})
	}

	if err := h.service.CreatePet(&pet); err != nil {
		return renderServerError(c, h.store, err)
	}

	if err := flash.Success(h.store, c, fmt.Sprintf("Added %s", pet.Name)); err != nil {
		return renderServerError(c, h.store, err)
	}
	return c.Redirect("/", fiber.StatusFound)
}
