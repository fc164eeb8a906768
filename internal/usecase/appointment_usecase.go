package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/delivery/http/middleware"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrHospitalNotFound       = errors.New("hospital not found")
	ErrDoctorNotAtHospital    = errors.New("doctor is not assigned to this hospital")
	ErrApptTimeInPast         = errors.New("appointment time must be in the future")
	ErrInvalidTimeFormat      = errors.New("invalid time format, use RFC3339")
	ErrAppointmentConflict    = errors.New("appointment status changed concurrently")
	ErrAppointmentNotEditable = errors.New("appointment can no longer be edited")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	ConfirmAppointment(ctx context.Context, id uuid.UUID) error
	CancelAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	apptRepo     repository.AppointmentRepository
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	alertRepo    repository.AlertRepository
	alertStream  *service.AlertStream
	auditService service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	apptRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	alertRepo repository.AlertRepository,
	alertStream *service.AlertStream,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:           db,
		log:          log,
		apptRepo:     apptRepo,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		alertRepo:    alertRepo,
		alertStream:  alertStream,
		auditService: auditService,
	}
}

// GetMyAppointments lists the appointments the caller may see. Patients get
// their own, doctors their assigned ones, admins everything. The filter is
// applied in the query, never after rows are loaded.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(roleID, userID, policy.EntityAppointment)
	appts, err := u.apptRepo.FindAll(scope(u.db.WithContext(ctx)))
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appts),
		Total:        len(appts),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	appt, err := u.apptRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	own := policy.Ownership{PatientID: appt.PatientID, DoctorID: appt.DoctorID}
	if !policy.CanView(roleID, policy.EntityAppointment, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	return converter.AppointmentToResponse(appt), nil
}

// CreateAppointment books a pending appointment for the calling patient.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	own := policy.Ownership{PatientID: userID}
	if !policy.CanMutate(roleID, policy.EntityAppointment, policy.ActionCreate, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	apptTime, err := time.Parse(time.RFC3339, req.ApptTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !apptTime.After(time.Now()) {
		return nil, ErrApptTimeInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital %d: %+v", req.HospitalID, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	doctor, err := u.userRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() || !doctor.IsActive {
		return nil, ErrDoctorNotFound
	}
	if doctor.HospitalID == nil || *doctor.HospitalID != req.HospitalID {
		return nil, ErrDoctorNotAtHospital
	}

	appt := &entity.Appointment{
		PatientID:  userID,
		DoctorID:   req.DoctorID,
		HospitalID: req.HospitalID,
		ApptTime:   apptTime,
		Notes:      req.Notes,
		Status:     entity.AppointmentStatusPending,
	}

	if err := u.apptRepo.Create(tx, appt); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appt.ID.String(), appt)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appt), nil
}

// UpdateAppointment changes time and notes while the appointment is still
// pending. A confirmed appointment is locked; only cancel remains.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	apptTime, err := time.Parse(time.RFC3339, req.ApptTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !apptTime.After(time.Now()) {
		return nil, ErrApptTimeInPast
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appt, err := u.apptRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	if !policy.CanEditDetails(roleID, userID, appt) {
		if appt.PatientID != userID || roleID != entity.RoleIDPatient {
			return nil, policy.ErrPermissionDenied
		}
		return nil, ErrAppointmentNotEditable
	}

	// Conditional update: zero rows means the status moved on between the
	// read and the write, so the edit loses.
	rows, err := u.apptRepo.UpdateDetails(tx, id, apptTime, req.Notes)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotEditable
	}

	u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentUpdate, "appointment", id.String(),
		entity.JSON{"appt_time": appt.ApptTime, "notes": appt.Notes},
		entity.JSON{"appt_time": apptTime, "notes": req.Notes})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appt.ApptTime = apptTime
	appt.Notes = req.Notes
	return converter.AppointmentToResponse(appt), nil
}

// ConfirmAppointment moves pending to confirmed. Only the assigned doctor
// may confirm.
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, id uuid.UUID) error {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appt, err := u.apptRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appt == nil {
		return ErrAppointmentNotFound
	}

	if err := policy.AuthorizeTransition(roleID, userID, appt, entity.AppointmentStatusConfirmed); err != nil {
		return err
	}

	rows, err := u.apptRepo.UpdateStatus(tx, id, entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed)
	if err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentConflict
	}

	alert := &entity.Alert{
		PatientID: appt.PatientID,
		Type:      entity.AlertTypeAppointment,
		Message:   fmt.Sprintf("Your appointment on %s has been confirmed", appt.ApptTime.Format("2006-01-02 15:04")),
	}
	if err := u.alertRepo.Create(tx, alert); err != nil {
		u.log.Warnf("Failed to create confirmation alert: %+v", err)
		return err
	}

	u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentConfirm, "appointment", id.String(),
		string(entity.AppointmentStatusPending), string(entity.AppointmentStatusConfirmed))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// Best effort live delivery; the alert row is already committed.
	_ = u.alertStream.Publish(ctx, alert)

	return nil
}

// CancelAppointment moves a pending or confirmed appointment to cancelled.
// Only the owning patient may cancel.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appt, err := u.apptRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appt == nil {
		return ErrAppointmentNotFound
	}

	if err := policy.AuthorizeTransition(roleID, userID, appt, entity.AppointmentStatusCancelled); err != nil {
		return err
	}

	rows, err := u.apptRepo.UpdateStatus(tx, id, appt.Status, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentConflict
	}

	u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentCancel, "appointment", id.String(),
		string(appt.Status), string(entity.AppointmentStatusCancelled))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// actorFromContext pulls the authenticated user and role set by the auth
// middleware. Missing values mean the endpoint was wired without it.
func actorFromContext(ctx context.Context) (uuid.UUID, int, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, 0, policy.ErrAuthRequired
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return uuid.Nil, 0, policy.ErrAuthRequired
	}
	return userID, roleID, nil
}
