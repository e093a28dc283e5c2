package usecase

import (
	"context"
	"errors"

	"health-directory-api/internal/converter"
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
	"health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthPlanNotFound = errors.New("health plan not found")
)

type HealthPlanUsecase interface {
	Create(ctx context.Context, req *dto.HealthPlanRequest) (*dto.HealthPlanResponse, error)
	GetAll(ctx context.Context) (*dto.HealthPlanListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.HealthPlanResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.HealthPlanRequest) (*dto.HealthPlanResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetActive(ctx context.Context) (*dto.HealthPlanListResponse, error)
}

type healthPlanUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	planRepo repository.HealthPlanRepository
}

func NewHealthPlanUsecase(db *gorm.DB, log *logrus.Logger, planRepo repository.HealthPlanRepository) HealthPlanUsecase {
	return &healthPlanUsecase{db: db, log: log, planRepo: planRepo}
}

func (u *healthPlanUsecase) Create(ctx context.Context, req *dto.HealthPlanRequest) (*dto.HealthPlanResponse, error) {
	plan := &entity.HealthPlan{
		Name:         req.Name,
		IsParticular: req.IsParticular,
		IsActive:     activeOrDefault(req.IsActive),
	}

	if err := u.planRepo.Create(u.db.WithContext(ctx), plan); err != nil {
		u.log.Warnf("Failed to create health plan: %+v", err)
		return nil, err
	}

	return converter.HealthPlanToResponse(plan), nil
}

func (u *healthPlanUsecase) GetAll(ctx context.Context) (*dto.HealthPlanListResponse, error) {
	plans, err := u.planRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all health plans: %+v", err)
		return nil, err
	}

	responses := converter.HealthPlansToResponses(plans)
	return &dto.HealthPlanListResponse{HealthPlans: responses, Total: len(responses)}, nil
}

func (u *healthPlanUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.HealthPlanResponse, error) {
	plan, err := u.planRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrHealthPlanNotFound
	}

	return converter.HealthPlanToResponse(plan), nil
}

func (u *healthPlanUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.HealthPlanRequest) (*dto.HealthPlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrHealthPlanNotFound
	}

	plan.Name = req.Name
	plan.IsParticular = req.IsParticular
	plan.IsActive = activeOrDefault(req.IsActive)

	if err := u.planRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update health plan: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthPlanToResponse(plan), nil
}

func (u *healthPlanUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.planRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete health plan: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrHealthPlanNotFound
	}
	return nil
}

func (u *healthPlanUsecase) GetActive(ctx context.Context) (*dto.HealthPlanListResponse, error) {
	plans, err := u.planRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active health plans: %+v", err)
		return nil, err
	}

	responses := converter.HealthPlansToResponses(plans)
	return &dto.HealthPlanListResponse{HealthPlans: responses, Total: len(responses)}, nil
}
