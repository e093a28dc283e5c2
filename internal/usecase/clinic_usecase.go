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
	ErrClinicNotFound = errors.New("clinic not found")
)

// FeaturedClinicsLimit caps the featured section on the public home page.
const FeaturedClinicsLimit = 3

type ClinicUsecase interface {
	Create(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error)
	GetAll(ctx context.Context) (*dto.ClinicListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.ClinicRequest) (*dto.ClinicResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetProfessionalIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	GetActive(ctx context.Context) (*dto.ClinicListResponse, error)
	GetFeatured(ctx context.Context) (*dto.ClinicListResponse, error)
	GetBySlug(ctx context.Context, s string) (*dto.ClinicResponse, error)
}

type clinicUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clinicRepo repository.ClinicRepository
	staffRepo  repository.ClinicProfessionalRepository
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	staffRepo repository.ClinicProfessionalRepository,
) ClinicUsecase {
	return &clinicUsecase{
		db:         db,
		log:        log,
		clinicRepo: clinicRepo,
		staffRepo:  staffRepo,
	}
}

func (u *clinicUsecase) Create(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic := clinicFromRequest(req)

	if err := u.clinicRepo.Create(tx, clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	if err := u.reconcileStaff(tx, clinic.ID, req.ProfessionalIDs); err != nil {
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to attach clinic professionals: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) GetAll(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all clinics: %+v", err)
		return nil, err
	}

	responses := converter.ClinicsToResponses(clinics)
	return &dto.ClinicListResponse{Clinics: responses, Total: len(responses)}, nil
}

func (u *clinicUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.clinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrClinicNotFound
	}

	clinic := clinicFromRequest(req)
	clinic.ID = existing.ID
	clinic.CreatedAt = existing.CreatedAt

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}

	if err := u.reconcileStaff(tx, clinic.ID, req.ProfessionalIDs); err != nil {
		if isForeignKeyError(err, "professional") {
			return nil, ErrProfessionalNotFound
		}
		u.log.Warnf("Failed to reconcile clinic professionals: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.clinicRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete clinic: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrClinicNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// GetProfessionalIDs returns the currently associated professional ids,
// used to seed the edit form's checkbox set.
func (u *clinicUsecase) GetProfessionalIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := u.staffRepo.FindByClinic(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic professionals: %+v", err)
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ProfessionalID
	}
	return ids, nil
}

func (u *clinicUsecase) GetActive(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active clinics: %+v", err)
		return nil, err
	}

	responses := converter.ClinicsToResponses(clinics)
	return &dto.ClinicListResponse{Clinics: responses, Total: len(responses)}, nil
}

func (u *clinicUsecase) GetFeatured(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindFeatured(u.db.WithContext(ctx), FeaturedClinicsLimit)
	if err != nil {
		u.log.Warnf("Failed to find featured clinics: %+v", err)
		return nil, err
	}

	responses := converter.ClinicsToResponses(clinics)
	return &dto.ClinicListResponse{Clinics: responses, Total: len(responses)}, nil
}

func (u *clinicUsecase) GetBySlug(ctx context.Context, s string) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindBySlug(u.db.WithContext(ctx), s, true)
	if err != nil {
		u.log.Warnf("Failed to find clinic by slug: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	return converter.ClinicToResponse(clinic), nil
}

// reconcileStaff makes the join table for one clinic exactly match the
// selected professional set: delete everything, reinsert the selection.
// Runs inside the caller's transaction so concurrent readers never observe
// the intermediate empty state.
func (u *clinicUsecase) reconcileStaff(tx *gorm.DB, clinicID uuid.UUID, professionalIDs []uuid.UUID) error {
	if err := u.staffRepo.DeleteByClinic(tx, clinicID); err != nil {
		return err
	}
	if len(professionalIDs) == 0 {
		return nil
	}

	rows := make([]entity.ClinicProfessional, len(professionalIDs))
	for i, pid := range professionalIDs {
		rows[i] = entity.ClinicProfessional{ClinicID: clinicID, ProfessionalID: pid}
	}
	return u.staffRepo.BulkInsert(tx, rows)
}

// clinicFromRequest builds the entity from a full draft, recomputing the
// slug from the name and nulling out empty optional fields.
func clinicFromRequest(req *dto.ClinicRequest) *entity.Clinic {
	return &entity.Clinic{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: optional(req.Description),
		Address:     optional(req.Address),
		City:        req.City,
		State:       optional(req.State),
		Phone:       optional(req.Phone),
		Email:       optional(req.Email),
		Schedule:    optional(req.Schedule),
		Website:     optional(req.Website),
		Category:    optional(req.Category),
		Facebook:    optional(req.Facebook),
		Instagram:   optional(req.Instagram),
		Linkedin:    optional(req.Linkedin),
		Youtube:     optional(req.Youtube),
		ImageURL:    optional(req.ImageURL),
		Banners:     req.Banners,
		IsActive:    activeOrDefault(req.IsActive),
		IsFeatured:  req.IsFeatured,
	}
}
