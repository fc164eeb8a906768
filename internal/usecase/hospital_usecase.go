package usecase

import (
	"context"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HospitalUsecase covers the browse side of hospitals: every signed-in role
// may list them and see which doctors work where, since booking starts
// from that view. Administration lives in AdminUsecase.
type HospitalUsecase interface {
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	GetHospital(ctx context.Context, id int) (*dto.HospitalResponse, error)
	GetHospitalDoctors(ctx context.Context, id int) (*dto.UserListResponse, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	userRepo     repository.UserRepository
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	userRepo repository.UserRepository,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		userRepo:     userRepo,
	}
}

func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(roleID, policy.EntityHospital, userID, policy.Ownership{}) {
		return nil, policy.ErrPermissionDenied
	}

	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find hospitals: %+v", err)
		return nil, err
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, id int) (*dto.HospitalResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(roleID, policy.EntityHospital, userID, policy.Ownership{}) {
		return nil, policy.ErrPermissionDenied
	}

	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospitalDoctors(ctx context.Context, id int) (*dto.UserListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(roleID, policy.EntityHospital, userID, policy.Ownership{}) {
		return nil, policy.ErrPermissionDenied
	}

	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	doctors, err := u.userRepo.FindDoctorsByHospital(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctors for hospital %d: %+v", id, err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(doctors),
		Total: len(doctors),
	}, nil
}
