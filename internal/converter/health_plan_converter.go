package converter

import (
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
)

func HealthPlanToResponse(plan *entity.HealthPlan) *dto.HealthPlanResponse {
	if plan == nil {
		return nil
	}

	return &dto.HealthPlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		IsParticular: plan.IsParticular,
		IsActive:     plan.IsActive,
	}
}

func HealthPlansToResponses(plans []entity.HealthPlan) []dto.HealthPlanResponse {
	responses := make([]dto.HealthPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *HealthPlanToResponse(&plans[i])
	}
	return responses
}
