package dto

import (
	"github.com/google/uuid"
)

type HealthPlanRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	IsParticular bool   `json:"is_particular"`
	IsActive     *bool  `json:"is_active" validate:"omitempty"`
}

type HealthPlanResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	IsParticular bool      `json:"is_particular"`
	IsActive     bool      `json:"is_active"`
}

type HealthPlanListResponse struct {
	HealthPlans []HealthPlanResponse `json:"health_plans"`
	Total       int                  `json:"total"`
}
