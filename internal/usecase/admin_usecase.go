package usecase

import (
	"context"
	"errors"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHospitalInUse    = errors.New("hospital still has assigned doctors")
	ErrNotADoctor       = errors.New("user is not a doctor")
	ErrInvalidRole      = errors.New("invalid role")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

type AdminUsecase interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)

	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	UpdateHospital(ctx context.Context, id int, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, id int) error
	AssignDoctor(ctx context.Context, hospitalID int, doctorID uuid.UUID) (*dto.UserResponse, error)
	GetUnassignedDoctors(ctx context.Context) (*dto.UserListResponse, error)

	GetUsers(ctx context.Context) (*dto.UserListResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	GetAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	apptRepo     repository.AppointmentRepository
	auditRepo    repository.AuditLogRepository
	auditService service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	apptRepo repository.AppointmentRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		apptRepo:     apptRepo,
		auditRepo:    auditRepo,
		auditService: auditService,
	}
}

func (u *adminUsecase) requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if roleID != entity.RoleIDAdmin {
		return uuid.Nil, policy.ErrPermissionDenied
	}
	return userID, nil
}

func (u *adminUsecase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if _, err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	totalUsers, err := u.userRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}
	totalPatients, err := u.userRepo.CountByRole(db, entity.RoleIDPatient)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	totalDoctors, err := u.userRepo.CountByRole(db, entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	totalHospitals, err := u.hospitalRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count hospitals: %+v", err)
		return nil, err
	}
	totalAppointments, err := u.apptRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalUsers:        totalUsers,
		TotalPatients:     totalPatients,
		TotalDoctors:      totalDoctors,
		TotalHospitals:    totalHospitals,
		TotalAppointments: totalAppointments,
	}, nil
}

func (u *adminUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	adminID, err := u.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital := &entity.Hospital{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := u.hospitalRepo.Create(tx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionHospitalCreate, "hospital", hospital.Name, hospital)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *adminUsecase) UpdateHospital(ctx context.Context, id int, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	adminID, err := u.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	old := *hospital
	hospital.Name = req.Name
	hospital.Address = req.Address

	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to update hospital %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionHospitalUpdate, "hospital", hospital.Name, old, hospital)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *adminUsecase) DeleteHospital(ctx context.Context, id int) error {
	adminID, err := u.requireAdmin(ctx)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", id, err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	if err := u.hospitalRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "hospital") {
			return ErrHospitalInUse
		}
		u.log.Warnf("Failed to delete hospital %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionHospitalDelete, "hospital", hospital.Name, hospital)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// AssignDoctor sets a doctor's hospital. Assigning an already assigned
// doctor overwrites the reference, so re-running the same assignment is a
// no-op rather than an error.
func (u *adminUsecase) AssignDoctor(ctx context.Context, hospitalID int, doctorID uuid.UUID) (*dto.UserResponse, error) {
	adminID, err := u.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", hospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	doctor, err := u.userRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrUserNotFound
	}
	if !doctor.IsDoctor() {
		return nil, ErrNotADoctor
	}

	doctor.AssignHospital(hospitalID)

	if err := u.userRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to assign doctor %s to hospital %d: %+v", doctorID, hospitalID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorAssign, "user", doctorID.String(), nil,
		entity.JSON{"hospital_id": hospitalID})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(doctor), nil
}

func (u *adminUsecase) GetUnassignedDoctors(ctx context.Context) (*dto.UserListResponse, error) {
	if _, err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	doctors, err := u.userRepo.FindUnassignedDoctors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find unassigned doctors: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(doctors),
		Total: len(doctors),
	}, nil
}

func (u *adminUsecase) GetUsers(ctx context.Context) (*dto.UserListResponse, error) {
	if _, err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *adminUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	adminID, err := u.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if entity.RoleName(req.RoleID) == "" {
		return nil, ErrInvalidRole
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	old := entity.JSON{"full_name": user.FullName, "phone": user.Phone, "role_id": user.RoleID, "is_active": user.IsActive}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.RoleID = req.RoleID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionUserUpdate, "user", id.String(), old,
		entity.JSON{"full_name": user.FullName, "phone": user.Phone, "role_id": user.RoleID, "is_active": user.IsActive})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// DeleteUser removes an account unless appointments still reference it as
// patient or doctor. The count and the delete run in one transaction so the
// guard cannot be bypassed by a concurrent booking that commits afterwards.
func (u *adminUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	adminID, err := u.requireAdmin(ctx)
	if err != nil {
		return err
	}

	if id == adminID {
		return ErrCannotDeleteSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	count, err := u.apptRepo.CountByUser(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count appointments for user %s: %+v", id, err)
		return err
	}
	if count > 0 {
		return &policy.IntegrityViolationError{Appointments: count}
	}

	if err := u.userRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete user %s: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, &adminID, entity.AuditActionUserDelete, "user", id.String(), user.Email)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminUsecase) GetAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if _, err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	logs, err := u.auditRepo.FindRecent(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
