package usecase

import (
	"context"
	"errors"

	"health-directory-api/internal/converter"
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
	"health-directory-api/internal/domain/repository"
	"health-directory-api/pkg/slug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfessionalNotFound = errors.New("professional not found")
)

type ProfessionalUsecase interface {
	Create(ctx context.Context, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetAll(ctx context.Context) (*dto.ProfessionalListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetClinicIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	GetActive(ctx context.Context) (*dto.ProfessionalListResponse, error)
	GetActiveBySpecialty(ctx context.Context, specialtyID uuid.UUID) (*dto.ProfessionalListResponse, error)
	GetBySlug(ctx context.Context, s string) (*dto.ProfessionalResponse, error)
	GetContact(ctx context.Context, id uuid.UUID) (*dto.ProfessionalContactResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	staffRepo        repository.ClinicProfessionalRepository
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	staffRepo repository.ClinicProfessionalRepository,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		staffRepo:        staffRepo,
	}
}

func (u *professionalUsecase) Create(ctx context.Context, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional := professionalFromRequest(req)

	if err := u.professionalRepo.Create(tx, professional); err != nil {
		if isForeignKeyError(err, "specialty") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	if err := u.reconcileClinics(tx, professional.ID, req.ClinicIDs); err != nil {
		if isForeignKeyError(err, "clinic") {
			return nil, ErrClinicNotFound
		}
		u.log.Warnf("Failed to attach professional clinics: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional, true), nil
}

func (u *professionalUsecase) GetAll(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all professionals: %+v", err)
		return nil, err
	}

	responses := converter.ProfessionalsToResponses(professionals, true)
	return &dto.ProfessionalListResponse{Professionals: responses, Total: len(responses)}, nil
}

func (u *professionalUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional, true), nil
}

func (u *professionalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.professionalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfessionalNotFound
	}

	professional := professionalFromRequest(req)
	professional.ID = existing.ID
	professional.CreatedAt = existing.CreatedAt

	if err := u.professionalRepo.Update(tx, professional); err != nil {
		if isForeignKeyError(err, "specialty") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	if err := u.reconcileClinics(tx, professional.ID, req.ClinicIDs); err != nil {
		if isForeignKeyError(err, "clinic") {
			return nil, ErrClinicNotFound
		}
		u.log.Warnf("Failed to reconcile professional clinics: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional, true), nil
}

func (u *professionalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.professionalRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete professional: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrProfessionalNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// GetClinicIDs returns the currently associated clinic ids, used to seed
// the edit form's checkbox set.
func (u *professionalUsecase) GetClinicIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := u.staffRepo.FindByProfessional(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional clinics: %+v", err)
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ClinicID
	}
	return ids, nil
}

func (u *professionalUsecase) GetActive(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active professionals: %+v", err)
		return nil, err
	}

	responses := converter.ProfessionalsToResponses(professionals, false)
	return &dto.ProfessionalListResponse{Professionals: responses, Total: len(responses)}, nil
}

func (u *professionalUsecase) GetActiveBySpecialty(ctx context.Context, specialtyID uuid.UUID) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindActiveBySpecialty(u.db.WithContext(ctx), specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find professionals by specialty: %+v", err)
		return nil, err
	}

	responses := converter.ProfessionalsToResponses(professionals, false)
	return &dto.ProfessionalListResponse{Professionals: responses, Total: len(responses)}, nil
}

func (u *professionalUsecase) GetBySlug(ctx context.Context, s string) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindBySlug(u.db.WithContext(ctx), s, true)
	if err != nil {
		u.log.Warnf("Failed to find professional by slug: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional, false), nil
}

// GetContact returns only the contact-fields slice. The handler exposes it
// exclusively behind authentication.
func (u *professionalUsecase) GetContact(ctx context.Context, id uuid.UUID) (*dto.ProfessionalContactResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional contact: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToContactResponse(professional), nil
}

// reconcileClinics mirrors the clinic-side reconciliation for the
// professional-owned direction of the same join table.
func (u *professionalUsecase) reconcileClinics(tx *gorm.DB, professionalID uuid.UUID, clinicIDs []uuid.UUID) error {
	if err := u.staffRepo.DeleteByProfessional(tx, professionalID); err != nil {
		return err
	}
	if len(clinicIDs) == 0 {
		return nil
	}

	rows := make([]entity.ClinicProfessional, len(clinicIDs))
	for i, cid := range clinicIDs {
		rows[i] = entity.ClinicProfessional{ClinicID: cid, ProfessionalID: professionalID}
	}
	return u.staffRepo.BulkInsert(tx, rows)
}

func professionalFromRequest(req *dto.ProfessionalRequest) *entity.Professional {
	return &entity.Professional{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Location:    req.Location,
		SpecialtyID: req.SpecialtyID,
		Description: optional(req.Description),
		Phone:       optional(req.Phone),
		Whatsapp:    optional(req.Whatsapp),
		Email:       optional(req.Email),
		Facebook:    optional(req.Facebook),
		Instagram:   optional(req.Instagram),
		Linkedin:    optional(req.Linkedin),
		Youtube:     optional(req.Youtube),
		PhotoURL:    optional(req.PhotoURL),
		Banners:     req.Banners,
		IsActive:    activeOrDefault(req.IsActive),
	}
}
