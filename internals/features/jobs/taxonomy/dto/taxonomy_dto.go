// internals/features/jobs/taxonomy/dto/taxonomy_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	tModel "jobportal_backend/internals/features/jobs/taxonomy/model"
)

/* ===================== REQUESTS ===================== */

type CreateCategoryRequest struct {
	CategoryName        string `json:"category_name" validate:"required,min=2,max=100"`
	CategoryDescription string `json:"category_description" validate:"omitempty"`
	CategoryIcon        string `json:"category_icon" validate:"omitempty,max=50"`
}

type UpdateCategoryRequest struct {
	CategoryName        *string `json:"category_name" validate:"omitempty,min=2,max=100"`
	CategoryDescription *string `json:"category_description" validate:"omitempty"`
	CategoryIcon        *string `json:"category_icon" validate:"omitempty,max=50"`
	CategoryIsActive    *bool   `json:"category_is_active" validate:"omitempty"`
}

func (r *UpdateCategoryRequest) ApplyToModel(m *tModel.CategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = *r.CategoryName
	}
	if r.CategoryDescription != nil {
		m.CategoryDescription = *r.CategoryDescription
	}
	if r.CategoryIcon != nil {
		m.CategoryIcon = *r.CategoryIcon
	}
	if r.CategoryIsActive != nil {
		m.CategoryIsActive = *r.CategoryIsActive
	}
}

type CreateSubcategoryRequest struct {
	SubcategoryCategoryID  uuid.UUID `json:"subcategory_category_id" validate:"required"`
	SubcategoryName        string    `json:"subcategory_name" validate:"required,min=2,max=100"`
	SubcategoryDescription string    `json:"subcategory_description" validate:"omitempty"`
}

type UpdateSubcategoryRequest struct {
	SubcategoryName        *string `json:"subcategory_name" validate:"omitempty,min=2,max=100"`
	SubcategoryDescription *string `json:"subcategory_description" validate:"omitempty"`
	SubcategoryIsActive    *bool   `json:"subcategory_is_active" validate:"omitempty"`
}

func (r *UpdateSubcategoryRequest) ApplyToModel(m *tModel.SubcategoryModel) {
	if r.SubcategoryName != nil {
		m.SubcategoryName = *r.SubcategoryName
	}
	if r.SubcategoryDescription != nil {
		m.SubcategoryDescription = *r.SubcategoryDescription
	}
	if r.SubcategoryIsActive != nil {
		m.SubcategoryIsActive = *r.SubcategoryIsActive
	}
}

type CreateFunctionalAreaRequest struct {
	FunctionalAreaSubcategoryID uuid.UUID `json:"functional_area_subcategory_id" validate:"required"`
	FunctionalAreaName          string    `json:"functional_area_name" validate:"required,min=2,max=100"`
	FunctionalAreaDescription   string    `json:"functional_area_description" validate:"omitempty"`
}

type UpdateFunctionalAreaRequest struct {
	FunctionalAreaName        *string `json:"functional_area_name" validate:"omitempty,min=2,max=100"`
	FunctionalAreaDescription *string `json:"functional_area_description" validate:"omitempty"`
	FunctionalAreaIsActive    *bool   `json:"functional_area_is_active" validate:"omitempty"`
}

func (r *UpdateFunctionalAreaRequest) ApplyToModel(m *tModel.FunctionalAreaModel) {
	if r.FunctionalAreaName != nil {
		m.FunctionalAreaName = *r.FunctionalAreaName
	}
	if r.FunctionalAreaDescription != nil {
		m.FunctionalAreaDescription = *r.FunctionalAreaDescription
	}
	if r.FunctionalAreaIsActive != nil {
		m.FunctionalAreaIsActive = *r.FunctionalAreaIsActive
	}
}

/* ===================== RESPONSES ===================== */

type CategoryResponse struct {
	CategoryID          uuid.UUID `json:"category_id"`
	CategoryName        string    `json:"category_name"`
	CategorySlug        string    `json:"category_slug"`
	CategoryDescription string    `json:"category_description,omitempty"`
	CategoryIcon        string    `json:"category_icon,omitempty"`
	CategoryIsActive    bool      `json:"category_is_active"`
	CategoryCreatedAt   time.Time `json:"category_created_at"`
}

func NewCategoryResponse(m *tModel.CategoryModel) *CategoryResponse {
	return &CategoryResponse{
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		CategorySlug:        m.CategorySlug,
		CategoryDescription: m.CategoryDescription,
		CategoryIcon:        m.CategoryIcon,
		CategoryIsActive:    m.CategoryIsActive,
		CategoryCreatedAt:   m.CategoryCreatedAt,
	}
}

type SubcategoryResponse struct {
	SubcategoryID         uuid.UUID `json:"subcategory_id"`
	SubcategoryCategoryID uuid.UUID `json:"subcategory_category_id"`
	SubcategoryName       string    `json:"subcategory_name"`
	SubcategorySlug       string    `json:"subcategory_slug"`
	SubcategoryIsActive   bool      `json:"subcategory_is_active"`
	SubcategoryCreatedAt  time.Time `json:"subcategory_created_at"`
}

func NewSubcategoryResponse(m *tModel.SubcategoryModel) *SubcategoryResponse {
	return &SubcategoryResponse{
		SubcategoryID:         m.SubcategoryID,
		SubcategoryCategoryID: m.SubcategoryCategoryID,
		SubcategoryName:       m.SubcategoryName,
		SubcategorySlug:       m.SubcategorySlug,
		SubcategoryIsActive:   m.SubcategoryIsActive,
		SubcategoryCreatedAt:  m.SubcategoryCreatedAt,
	}
}

type FunctionalAreaResponse struct {
	FunctionalAreaID            uuid.UUID `json:"functional_area_id"`
	FunctionalAreaSubcategoryID uuid.UUID `json:"functional_area_subcategory_id"`
	FunctionalAreaName          string    `json:"functional_area_name"`
	FunctionalAreaSlug          string    `json:"functional_area_slug"`
	FunctionalAreaIsActive      bool      `json:"functional_area_is_active"`
	FunctionalAreaCreatedAt     time.Time `json:"functional_area_created_at"`
}

func NewFunctionalAreaResponse(m *tModel.FunctionalAreaModel) *FunctionalAreaResponse {
	return &FunctionalAreaResponse{
		FunctionalAreaID:            m.FunctionalAreaID,
		FunctionalAreaSubcategoryID: m.FunctionalAreaSubcategoryID,
		FunctionalAreaName:          m.FunctionalAreaName,
		FunctionalAreaSlug:          m.FunctionalAreaSlug,
		FunctionalAreaIsActive:      m.FunctionalAreaIsActive,
		FunctionalAreaCreatedAt:     m.FunctionalAreaCreatedAt,
	}
}
