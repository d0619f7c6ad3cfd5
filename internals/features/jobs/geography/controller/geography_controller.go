// internals/features/jobs/geography/controller/geography_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/cascade"
	gDTO "jobportal_backend/internals/features/jobs/geography/dto"
	gModel "jobportal_backend/internals/features/jobs/geography/model"
	gService "jobportal_backend/internals/features/jobs/geography/service"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type GeographyController struct {
	DB       *gorm.DB
	Resolver *cascade.Resolver
}

func NewGeographyController(db *gorm.DB, resolver *cascade.Resolver) *GeographyController {
	return &GeographyController{DB: db, Resolver: resolver}
}

/* ===================== STATES ===================== */

// POST /api/a/states
func (h *GeographyController) CreateState(c *fiber.Ctx) error {
	var req gDTO.CreateStateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := gService.CreateState(c.UserContext(), h.DB, req.StateName)
	if err != nil {
		if errors.Is(err, gService.ErrDuplicateName) {
			return fiber.NewError(fiber.StatusConflict, "State name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create state")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "State created", gDTO.NewStateResponse(m))
}

// GET /api/a/states (admin, all) and /api/public/states (active only)
func (h *GeographyController) ListStates(c *fiber.Ctx) error {
	activeOnly := strings.HasPrefix(c.Path(), "/api/public")

	q := h.DB.Model(&gModel.StateModel{})
	if activeOnly {
		q = q.Where("state_is_active = ?", true)
	}

	var rows []gModel.StateModel
	if err := q.Order("state_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch states")
	}

	items := make([]*gDTO.StateResponse, 0, len(rows))
	for i := range rows {
		items = append(items, gDTO.NewStateResponse(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

// PATCH /api/a/states/:id
func (h *GeographyController) UpdateState(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req gDTO.UpdateStateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m gModel.StateModel
	if err := h.DB.First(&m, "state_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "State not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch state")
	}

	if req.StateName != nil {
		if err := gService.StateNameAvailable(c.UserContext(), h.DB, *req.StateName, m.StateID); err != nil {
			if errors.Is(err, gService.ErrDuplicateName) {
				return fiber.NewError(fiber.StatusConflict, "State name already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update state")
		}
	}

	// slug stays as created; only name/active move
	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update state")
	}
	return helper.Success(c, "State updated", gDTO.NewStateResponse(&m))
}

// DELETE /api/a/states/:id
func (h *GeographyController) DeleteState(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := gService.DeleteState(c.UserContext(), h.DB, id); err != nil {
		switch {
		case errors.Is(err, gService.ErrNodeReferenced):
			return fiber.NewError(fiber.StatusConflict, "State is referenced by job postings; deactivate it instead")
		case errors.Is(err, gService.ErrStateNotFound):
			return fiber.NewError(fiber.StatusNotFound, "State not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete state")
	}
	return helper.Success(c, "State deleted", fiber.Map{"id": id})
}

/* ===================== CITIES ===================== */

// POST /api/a/cities
func (h *GeographyController) CreateCity(c *fiber.Ctx) error {
	var req gDTO.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := gService.CreateCity(c.UserContext(), h.DB, req.CityStateID, req.CityName)
	if err != nil {
		switch {
		case errors.Is(err, gService.ErrStateNotFound):
			return fiber.NewError(fiber.StatusNotFound, "State not found")
		case errors.Is(err, gService.ErrDuplicateName):
			return fiber.NewError(fiber.StatusConflict, "City name already exists in this state")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create city")
	}

	h.Resolver.InvalidateCities(c.UserContext(), m.CityStateID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "City created", gDTO.NewCityResponse(m))
}

// PATCH /api/a/cities/:id
func (h *GeographyController) UpdateCity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req gDTO.UpdateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m gModel.CityModel
	if err := h.DB.First(&m, "city_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "City not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch city")
	}

	if req.CityName != nil {
		if err := gService.CityNameAvailable(c.UserContext(), h.DB, m.CityStateID, *req.CityName, m.CityID); err != nil {
			if errors.Is(err, gService.ErrDuplicateName) {
				return fiber.NewError(fiber.StatusConflict, "City name already exists in this state")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update city")
		}
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update city")
	}

	h.Resolver.InvalidateCities(c.UserContext(), m.CityStateID)
	return helper.Success(c, "City updated", gDTO.NewCityResponse(&m))
}

// DELETE /api/a/cities/:id
func (h *GeographyController) DeleteCity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m gModel.CityModel
	if err := h.DB.First(&m, "city_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "City not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch city")
	}

	if err := gService.DeleteCity(c.UserContext(), h.DB, id); err != nil {
		if errors.Is(err, gService.ErrNodeReferenced) {
			return fiber.NewError(fiber.StatusConflict, "City is referenced by job postings; deactivate it instead")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete city")
	}

	h.Resolver.InvalidateCities(c.UserContext(), m.CityStateID)
	return helper.Success(c, "City deleted", fiber.Map{"id": id})
}

/* ===================== CASCADE ===================== */

// GET /ajax/load-cities?state_id=
// Always answers 200 with a bare array; an unknown or malformed state id
// is "no options", not an error.
func (h *GeographyController) LoadCities(c *fiber.Ctx) error {
	stateID, err := uuid.Parse(c.Query("state_id"))
	if err != nil {
		return c.JSON([]cascade.Option{})
	}
	opts, err := h.Resolver.ActiveCities(c.UserContext(), stateID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load cities")
	}
	return c.JSON(opts)
}
