// internals/features/jobs/taxonomy/controller/taxonomy_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal_backend/internals/features/jobs/cascade"
	tDTO "jobportal_backend/internals/features/jobs/taxonomy/dto"
	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
	tService "jobportal_backend/internals/features/jobs/taxonomy/service"
	helper "jobportal_backend/internals/helpers"
)

var validate = validator.New()

type TaxonomyController struct {
	DB       *gorm.DB
	Resolver *cascade.Resolver
}

func NewTaxonomyController(db *gorm.DB, resolver *cascade.Resolver) *TaxonomyController {
	return &TaxonomyController{DB: db, Resolver: resolver}
}

/* ===================== CATEGORIES ===================== */

// POST /api/a/categories
func (h *TaxonomyController) CreateCategory(c *fiber.Ctx) error {
	var req tDTO.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := tService.CreateCategory(c.UserContext(), h.DB, req.CategoryName, req.CategoryDescription, req.CategoryIcon)
	if err != nil {
		if errors.Is(err, tService.ErrDuplicateName) {
			return fiber.NewError(fiber.StatusConflict, "Category name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Category created", tDTO.NewCategoryResponse(m))
}

// GET /api/a/categories (all) and /api/public/categories (active only)
func (h *TaxonomyController) ListCategories(c *fiber.Ctx) error {
	q := h.DB.Model(&tModel.CategoryModel{})
	if strings.HasPrefix(c.Path(), "/api/public") {
		q = q.Where("category_is_active = ?", true)
	}

	var rows []tModel.CategoryModel
	if err := q.Order("category_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	items := make([]*tDTO.CategoryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, tDTO.NewCategoryResponse(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

// PATCH /api/a/categories/:id
func (h *TaxonomyController) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req tDTO.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m tModel.CategoryModel
	if err := h.DB.First(&m, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch category")
	}

	if req.CategoryName != nil {
		if err := tService.CategoryNameAvailable(c.UserContext(), h.DB, *req.CategoryName, m.CategoryID); err != nil {
			if errors.Is(err, tService.ErrDuplicateName) {
				return fiber.NewError(fiber.StatusConflict, "Category name already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category")
		}
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.Success(c, "Category updated", tDTO.NewCategoryResponse(&m))
}

// DELETE /api/a/categories/:id
func (h *TaxonomyController) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := tService.DeleteCategory(c.UserContext(), h.DB, id); err != nil {
		switch {
		case errors.Is(err, tService.ErrNodeReferenced):
			return fiber.NewError(fiber.StatusConflict, "Category is referenced by job postings; deactivate it instead")
		case errors.Is(err, tService.ErrCategoryNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}
	h.Resolver.InvalidateSubcategories(c.UserContext(), id)
	return helper.Success(c, "Category deleted", fiber.Map{"id": id})
}

/* ===================== SUBCATEGORIES ===================== */

// POST /api/a/subcategories
func (h *TaxonomyController) CreateSubcategory(c *fiber.Ctx) error {
	var req tDTO.CreateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := tService.CreateSubcategory(c.UserContext(), h.DB, req.SubcategoryCategoryID, req.SubcategoryName, req.SubcategoryDescription)
	if err != nil {
		switch {
		case errors.Is(err, tService.ErrCategoryNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		case errors.Is(err, tService.ErrDuplicateName):
			return fiber.NewError(fiber.StatusConflict, "Subcategory name already exists in this category")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subcategory")
	}

	h.Resolver.InvalidateSubcategories(c.UserContext(), m.SubcategoryCategoryID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subcategory created", tDTO.NewSubcategoryResponse(m))
}

// PATCH /api/a/subcategories/:id
func (h *TaxonomyController) UpdateSubcategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req tDTO.UpdateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m tModel.SubcategoryModel
	if err := h.DB.First(&m, "subcategory_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subcategory not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subcategory")
	}

	if req.SubcategoryName != nil {
		if err := tService.SubcategoryNameAvailable(c.UserContext(), h.DB, m.SubcategoryCategoryID, *req.SubcategoryName, m.SubcategoryID); err != nil {
			if errors.Is(err, tService.ErrDuplicateName) {
				return fiber.NewError(fiber.StatusConflict, "Subcategory name already exists in this category")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subcategory")
		}
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subcategory")
	}

	h.Resolver.InvalidateSubcategories(c.UserContext(), m.SubcategoryCategoryID)
	return helper.Success(c, "Subcategory updated", tDTO.NewSubcategoryResponse(&m))
}

// DELETE /api/a/subcategories/:id
func (h *TaxonomyController) DeleteSubcategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m tModel.SubcategoryModel
	if err := h.DB.First(&m, "subcategory_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subcategory not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subcategory")
	}

	if err := tService.DeleteSubcategory(c.UserContext(), h.DB, id); err != nil {
		if errors.Is(err, tService.ErrNodeReferenced) {
			return fiber.NewError(fiber.StatusConflict, "Subcategory is referenced by job postings; deactivate it instead")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subcategory")
	}

	h.Resolver.InvalidateSubcategories(c.UserContext(), m.SubcategoryCategoryID)
	h.Resolver.InvalidateFunctionalAreas(c.UserContext(), id)
	return helper.Success(c, "Subcategory deleted", fiber.Map{"id": id})
}

/* ===================== FUNCTIONAL AREAS ===================== */

// POST /api/a/functional-areas
func (h *TaxonomyController) CreateFunctionalArea(c *fiber.Ctx) error {
	var req tDTO.CreateFunctionalAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := tService.CreateFunctionalArea(c.UserContext(), h.DB, req.FunctionalAreaSubcategoryID, req.FunctionalAreaName, req.FunctionalAreaDescription)
	if err != nil {
		switch {
		case errors.Is(err, tService.ErrSubcategoryNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Subcategory not found")
		case errors.Is(err, tService.ErrDuplicateName):
			return fiber.NewError(fiber.StatusConflict, "Functional area name already exists in this subcategory")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create functional area")
	}

	h.Resolver.InvalidateFunctionalAreas(c.UserContext(), m.FunctionalAreaSubcategoryID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Functional area created", tDTO.NewFunctionalAreaResponse(m))
}

// PATCH /api/a/functional-areas/:id
func (h *TaxonomyController) UpdateFunctionalArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req tDTO.UpdateFunctionalAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m tModel.FunctionalAreaModel
	if err := h.DB.First(&m, "functional_area_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Functional area not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch functional area")
	}

	if req.FunctionalAreaName != nil {
		if err := tService.FunctionalAreaNameAvailable(c.UserContext(), h.DB, m.FunctionalAreaSubcategoryID, *req.FunctionalAreaName, m.FunctionalAreaID); err != nil {
			if errors.Is(err, tService.ErrDuplicateName) {
				return fiber.NewError(fiber.StatusConflict, "Functional area name already exists in this subcategory")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update functional area")
		}
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update functional area")
	}

	h.Resolver.InvalidateFunctionalAreas(c.UserContext(), m.FunctionalAreaSubcategoryID)
	return helper.Success(c, "Functional area updated", tDTO.NewFunctionalAreaResponse(&m))
}

// DELETE /api/a/functional-areas/:id
func (h *TaxonomyController) DeleteFunctionalArea(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m tModel.FunctionalAreaModel
	if err := h.DB.First(&m, "functional_area_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Functional area not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch functional area")
	}

	if err := tService.DeleteFunctionalArea(c.UserContext(), h.DB, id); err != nil {
		if errors.Is(err, tService.ErrNodeReferenced) {
			return fiber.NewError(fiber.StatusConflict, "Functional area is referenced by job postings; deactivate it instead")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete functional area")
	}

	h.Resolver.InvalidateFunctionalAreas(c.UserContext(), m.FunctionalAreaSubcategoryID)
	return helper.Success(c, "Functional area deleted", fiber.Map{"id": id})
}

/* ===================== CASCADES ===================== */

// GET /ajax/load-subcategories?category_id=
func (h *TaxonomyController) LoadSubcategories(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Query("category_id"))
	if err != nil {
		return c.JSON([]cascade.Option{})
	}
	opts, err := h.Resolver.ActiveSubcategories(c.UserContext(), categoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subcategories")
	}
	return c.JSON(opts)
}

// GET /ajax/load-functional-areas?subcategory_id=
func (h *TaxonomyController) LoadFunctionalAreas(c *fiber.Ctx) error {
	subcategoryID, err := uuid.Parse(c.Query("subcategory_id"))
	if err != nil {
		return c.JSON([]cascade.Option{})
	}
	opts, err := h.Resolver.ActiveFunctionalAreas(c.UserContext(), subcategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load functional areas")
	}
	return c.JSON(opts)
}
