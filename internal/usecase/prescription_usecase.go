package usecase

import (
	"context"
	"errors"

	"healthconnect/internal/converter"
	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/infrastructure/storage"
	"healthconnect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	GetMyPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetPrescription(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetAttachment(ctx context.Context, prescriptionID uuid.UUID, storedPath string) ([]byte, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	userRepo         repository.UserRepository
	apptRepo         repository.AppointmentRepository
	fileStore        storage.FileStore
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	userRepo repository.UserRepository,
	apptRepo repository.AppointmentRepository,
	fileStore storage.FileStore,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		userRepo:         userRepo,
		apptRepo:         apptRepo,
		fileStore:        fileStore,
		auditService:     auditService,
	}
}

func (u *prescriptionUsecase) GetMyPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(roleID, userID, policy.EntityPrescription)
	prescriptions, err := u.prescriptionRepo.FindAll(scope(u.db.WithContext(ctx)))
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	own := policy.Ownership{PatientID: prescription.PatientID, DoctorID: prescription.DoctorID}
	if !policy.CanView(roleID, policy.EntityPrescription, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// CreatePrescription issues a prescription. Like medical records, it
// requires the prescribing doctor to share at least one non-cancelled
// appointment with the patient.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	own := policy.Ownership{DoctorID: userID}
	if !policy.CanMutate(roleID, policy.EntityPrescription, policy.ActionCreate, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.userRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil || !patient.IsPatient() {
		return nil, ErrPatientNotFound
	}

	shared, err := u.apptRepo.CountShared(tx, req.PatientID, userID)
	if err != nil {
		u.log.Warnf("Failed to count shared appointments: %+v", err)
		return nil, err
	}
	if shared == 0 {
		return nil, ErrNoSharedTreatment
	}

	attachments, err := storeAttachments(u.fileStore, storage.BucketPrescriptions, req.Attachments)
	if err != nil {
		u.log.Warnf("Failed to store attachments: %+v", err)
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID:      req.PatientID,
		DoctorID:       userID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Instructions:   req.Instructions,
		Attachments:    attachments,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(),
		entity.JSON{"patient_id": req.PatientID, "medication_name": req.MedicationName})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetAttachment(ctx context.Context, prescriptionID uuid.UUID, storedPath string) ([]byte, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", prescriptionID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	own := policy.Ownership{PatientID: prescription.PatientID, DoctorID: prescription.DoctorID}
	if !policy.CanView(roleID, policy.EntityPrescription, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	if !containsAttachment(prescription.Attachments, storedPath) {
		return nil, ErrAttachmentNotFound
	}

	return u.fileStore.Open(storage.BucketPrescriptions, storedPath)
}
