package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

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

var (
	ErrRecordNotFound     = errors.New("medical record not found")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrNoSharedTreatment  = errors.New("no appointment history with this patient")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidAttachment  = errors.New("attachment data is not valid base64")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

type MedicalRecordUsecase interface {
	GetMyRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	CreateRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetAttachment(ctx context.Context, recordID uuid.UUID, storedPath string) ([]byte, error)
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	userRepo     repository.UserRepository
	apptRepo     repository.AppointmentRepository
	fileStore    storage.FileStore
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	userRepo repository.UserRepository,
	apptRepo repository.AppointmentRepository,
	fileStore storage.FileStore,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		userRepo:     userRepo,
		apptRepo:     apptRepo,
		fileStore:    fileStore,
		auditService: auditService,
	}
}

// GetMyRecords lists records the caller may see: patients their own chart,
// doctors the records they authored.
func (u *medicalRecordUsecase) GetMyRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	scope := policy.ScopeFor(roleID, userID, policy.EntityMedicalRecord)
	records, err := u.recordRepo.FindAll(scope(u.db.WithContext(ctx)))
	if err != nil {
		u.log.Warnf("Failed to find medical records for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *medicalRecordUsecase) GetRecord(ctx context.Context, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	own := policy.Ownership{PatientID: record.PatientID, DoctorID: record.DoctorID}
	if !policy.CanView(roleID, policy.EntityMedicalRecord, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	return converter.MedicalRecordToResponse(record), nil
}

// CreateRecord writes an EMR entry. Only a doctor with at least one
// non-cancelled appointment with the patient may create one; records are
// immutable once written.
func (u *medicalRecordUsecase) CreateRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	own := policy.Ownership{DoctorID: userID}
	if !policy.CanMutate(roleID, policy.EntityMedicalRecord, policy.ActionCreate, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
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

	attachments, err := storeAttachments(u.fileStore, storage.BucketMedicalRecords, req.Attachments)
	if err != nil {
		u.log.Warnf("Failed to store attachments: %+v", err)
		return nil, err
	}

	record := &entity.MedicalRecord{
		PatientID:   req.PatientID,
		DoctorID:    userID,
		VisitDate:   visitDate,
		Diagnosis:   req.Diagnosis,
		Notes:       req.Notes,
		Attachments: attachments,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionRecordCreate, "medical_record", record.ID.String(),
		entity.JSON{"patient_id": req.PatientID, "diagnosis": req.Diagnosis})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// GetAttachment reads back an attachment listed on a record the caller may
// view. The stored path must be one the record actually references.
func (u *medicalRecordUsecase) GetAttachment(ctx context.Context, recordID uuid.UUID, storedPath string) ([]byte, error) {
	userID, roleID, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	own := policy.Ownership{PatientID: record.PatientID, DoctorID: record.DoctorID}
	if !policy.CanView(roleID, policy.EntityMedicalRecord, userID, own) {
		return nil, policy.ErrPermissionDenied
	}

	if !containsAttachment(record.Attachments, storedPath) {
		return nil, ErrAttachmentNotFound
	}

	return u.fileStore.Open(storage.BucketMedicalRecords, storedPath)
}

// storeAttachments decodes inline uploads and writes them to the bucket,
// returning the stored paths in upload order.
func storeAttachments(store storage.FileStore, bucket string, uploads []dto.AttachmentUpload) (entity.Attachments, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	paths := make(entity.Attachments, 0, len(uploads))
	for _, upload := range uploads {
		data, err := base64.StdEncoding.DecodeString(upload.Data)
		if err != nil {
			return nil, ErrInvalidAttachment
		}
		storedPath, err := store.Save(bucket, upload.Filename, data)
		if err != nil {
			return nil, err
		}
		paths = append(paths, storedPath)
	}
	return paths, nil
}

func containsAttachment(attachments entity.Attachments, storedPath string) bool {
	for _, path := range attachments {
		if path == storedPath {
			return true
		}
	}
	return false
}
