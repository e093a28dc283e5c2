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
	ErrSpecialtyNotFound = errors.New("specialty not found")
	ErrSpecialtyInUse    = errors.New("specialty has linked professionals; remove or reassign them first")
)

type SpecialtyUsecase interface {
	Create(ctx context.Context, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetAll(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type specialtyUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	specialtyRepo    repository.SpecialtyRepository
	professionalRepo repository.ProfessionalRepository
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	professionalRepo repository.ProfessionalRepository,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:               db,
		log:              log,
		specialtyRepo:    specialtyRepo,
		professionalRepo: professionalRepo,
	}
}

func (u *specialtyUsecase) Create(ctx context.Context, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error) {
	specialty := &entity.Specialty{
		Name:        req.Name,
		Description: optional(req.Description),
		Icon:        entity.NormalizeSpecialtyIcon(req.Icon),
	}

	if err := u.specialtyRepo.Create(u.db.WithContext(ctx), specialty); err != nil {
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAll(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all specialties: %+v", err)
		return nil, err
	}

	responses := converter.SpecialtiesToResponses(specialties)
	return &dto.SpecialtyListResponse{Specialties: responses, Total: len(responses)}, nil
}

func (u *specialtyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty, err := u.specialtyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialty.Name = req.Name
	specialty.Description = optional(req.Description)
	specialty.Icon = entity.NormalizeSpecialtyIcon(req.Icon)

	if err := u.specialtyRepo.Update(tx, specialty); err != nil {
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SpecialtyToResponse(specialty), nil
}

// Delete refuses to remove a specialty that still has professionals linked
// to it. The check runs in the same transaction as the delete, and the
// RESTRICT foreign key backs it up should a professional be attached
// concurrently.
func (u *specialtyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	count, err := u.professionalRepo.CountBySpecialty(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count professionals for specialty: %+v", err)
		return err
	}
	if count > 0 {
		return ErrSpecialtyInUse
	}

	affected, err := u.specialtyRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "specialty") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
