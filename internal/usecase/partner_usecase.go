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
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrInvalidBusinessArea = errors.New("business area is not recognized")
)

type PartnerUsecase interface {
	Create(ctx context.Context, req *dto.PartnerRequest) (*dto.PartnerResponse, error)
	GetAll(ctx context.Context) (*dto.PartnerListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PartnerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.PartnerRequest) (*dto.PartnerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetActive(ctx context.Context) (*dto.PartnerListResponse, error)
}

type partnerUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	partnerRepo repository.PartnerRepository
}

func NewPartnerUsecase(db *gorm.DB, log *logrus.Logger, partnerRepo repository.PartnerRepository) PartnerUsecase {
	return &partnerUsecase{db: db, log: log, partnerRepo: partnerRepo}
}

func (u *partnerUsecase) Create(ctx context.Context, req *dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if !entity.IsValidBusinessArea(req.BusinessArea) {
		return nil, ErrInvalidBusinessArea
	}

	partner := partnerFromRequest(req)

	if err := u.partnerRepo.Create(u.db.WithContext(ctx), partner); err != nil {
		u.log.Warnf("Failed to create partner: %+v", err)
		return nil, err
	}

	return converter.PartnerToResponse(partner), nil
}

func (u *partnerUsecase) GetAll(ctx context.Context) (*dto.PartnerListResponse, error) {
	partners, err := u.partnerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all partners: %+v", err)
		return nil, err
	}

	responses := converter.PartnersToResponses(partners)
	return &dto.PartnerListResponse{Partners: responses, Total: len(responses)}, nil
}

func (u *partnerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PartnerResponse, error) {
	partner, err := u.partnerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find partner: %+v", err)
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	return converter.PartnerToResponse(partner), nil
}

func (u *partnerUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if !entity.IsValidBusinessArea(req.BusinessArea) {
		return nil, ErrInvalidBusinessArea
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.partnerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find partner: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrPartnerNotFound
	}

	partner := partnerFromRequest(req)
	partner.ID = existing.ID
	partner.CreatedAt = existing.CreatedAt

	if err := u.partnerRepo.Update(tx, partner); err != nil {
		u.log.Warnf("Failed to update partner: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PartnerToResponse(partner), nil
}

func (u *partnerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.partnerRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete partner: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

func (u *partnerUsecase) GetActive(ctx context.Context) (*dto.PartnerListResponse, error) {
	partners, err := u.partnerRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active partners: %+v", err)
		return nil, err
	}

	responses := converter.PartnersToResponses(partners)
	return &dto.PartnerListResponse{Partners: responses, Total: len(responses)}, nil
}

func partnerFromRequest(req *dto.PartnerRequest) *entity.Partner {
	return &entity.Partner{
		CompanyName:  req.CompanyName,
		Description:  optional(req.Description),
		BusinessArea: req.BusinessArea,
		LogoURL:      optional(req.LogoURL),
		WebsiteURL:   optional(req.WebsiteURL),
		IsActive:     activeOrDefault(req.IsActive),
	}
}
