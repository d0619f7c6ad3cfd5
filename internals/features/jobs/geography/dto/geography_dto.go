// internals/features/jobs/geography/dto/geography_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	gModel "jobportal_backend/internals/features/jobs/geography/model"
)

/* ===================== REQUESTS ===================== */

type CreateStateRequest struct {
	StateName string `json:"state_name" validate:"required,min=2,max=100"`
}

type UpdateStateRequest struct {
	StateName     *string `json:"state_name" validate:"omitempty,min=2,max=100"`
	StateIsActive *bool   `json:"state_is_active" validate:"omitempty"`
}

func (r *UpdateStateRequest) ApplyToModel(m *gModel.StateModel) {
	if r.StateName != nil {
		m.StateName = *r.StateName
	}
	if r.StateIsActive != nil {
		m.StateIsActive = *r.StateIsActive
	}
}

type CreateCityRequest struct {
	CityStateID uuid.UUID `json:"city_state_id" validate:"required"`
	CityName    string    `json:"city_name" validate:"required,min=2,max=100"`
}

type UpdateCityRequest struct {
	CityName     *string `json:"city_name" validate:"omitempty,min=2,max=100"`
	CityIsActive *bool   `json:"city_is_active" validate:"omitempty"`
}

func (r *UpdateCityRequest) ApplyToModel(m *gModel.CityModel) {
	if r.CityName != nil {
		m.CityName = *r.CityName
	}
	if r.CityIsActive != nil {
		m.CityIsActive = *r.CityIsActive
	}
}

/* ===================== RESPONSES ===================== */

type StateResponse struct {
	StateID        uuid.UUID `json:"state_id"`
	StateName      string    `json:"state_name"`
	StateSlug      string    `json:"state_slug"`
	StateIsActive  bool      `json:"state_is_active"`
	StateCreatedAt time.Time `json:"state_created_at"`
}

func NewStateResponse(m *gModel.StateModel) *StateResponse {
	return &StateResponse{
		StateID:        m.StateID,
		StateName:      m.StateName,
		StateSlug:      m.StateSlug,
		StateIsActive:  m.StateIsActive,
		StateCreatedAt: m.StateCreatedAt,
	}
}

type CityResponse struct {
	CityID        uuid.UUID `json:"city_id"`
	CityStateID   uuid.UUID `json:"city_state_id"`
	CityName      string    `json:"city_name"`
	CitySlug      string    `json:"city_slug"`
	CityIsActive  bool      `json:"city_is_active"`
	CityCreatedAt time.Time `json:"city_created_at"`
}

func NewCityResponse(m *gModel.CityModel) *CityResponse {
	return &CityResponse{
		CityID:        m.CityID,
		CityStateID:   m.CityStateID,
		CityName:      m.CityName,
		CitySlug:      m.CitySlug,
		CityIsActive:  m.CityIsActive,
		CityCreatedAt: m.CityCreatedAt,
	}
}
