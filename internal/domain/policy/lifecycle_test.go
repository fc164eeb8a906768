package policy

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"healthconnect/internal/domain/entity"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to entity.AppointmentStatus
		want     bool
	}{
		{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed, true},
		{entity.AppointmentStatusPending, entity.AppointmentStatusCancelled, true},
		{entity.AppointmentStatusConfirmed, entity.AppointmentStatusCompleted, true},
		{entity.AppointmentStatusConfirmed, entity.AppointmentStatusCancelled, true},
		{entity.AppointmentStatusConfirmed, entity.AppointmentStatusPending, false},
		{entity.AppointmentStatusPending, entity.AppointmentStatusCompleted, false},
		{entity.AppointmentStatusCancelled, entity.AppointmentStatusPending, false},
		{entity.AppointmentStatusCancelled, entity.AppointmentStatusConfirmed, false},
		{entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled, false},
		{entity.AppointmentStatusCompleted, entity.AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAuthorizeTransition(t *testing.T) {
	patient := uuid.New()
	doctor := uuid.New()
	stranger := uuid.New()

	appt := func(status entity.AppointmentStatus) *entity.Appointment {
		return &entity.Appointment{
			ID:        uuid.New(),
			PatientID: patient,
			DoctorID:  doctor,
			Status:    status,
		}
	}

	tests := []struct {
		name    string
		roleID  int
		actorID uuid.UUID
		appt    *entity.Appointment
		to      entity.AppointmentStatus
		wantErr error
	}{
		{"assigned doctor confirms pending", entity.RoleIDDoctor, doctor, appt(entity.AppointmentStatusPending), entity.AppointmentStatusConfirmed, nil},
		{"other doctor cannot confirm", entity.RoleIDDoctor, stranger, appt(entity.AppointmentStatusPending), entity.AppointmentStatusConfirmed, ErrPermissionDenied},
		{"patient cannot confirm", entity.RoleIDPatient, patient, appt(entity.AppointmentStatusPending), entity.AppointmentStatusConfirmed, ErrPermissionDenied},
		{"doctor cannot revert confirmed to pending", entity.RoleIDDoctor, doctor, appt(entity.AppointmentStatusConfirmed), entity.AppointmentStatusPending, ErrInvalidTransition},
		{"doctor cannot confirm a confirmed appointment", entity.RoleIDDoctor, doctor, appt(entity.AppointmentStatusConfirmed), entity.AppointmentStatusConfirmed, ErrInvalidTransition},
		{"owning patient cancels pending", entity.RoleIDPatient, patient, appt(entity.AppointmentStatusPending), entity.AppointmentStatusCancelled, nil},
		{"owning patient cancels confirmed", entity.RoleIDPatient, patient, appt(entity.AppointmentStatusConfirmed), entity.AppointmentStatusCancelled, nil},
		{"doctor cannot cancel", entity.RoleIDDoctor, doctor, appt(entity.AppointmentStatusPending), entity.AppointmentStatusCancelled, ErrPermissionDenied},
		{"other patient cannot cancel", entity.RoleIDPatient, stranger, appt(entity.AppointmentStatusPending), entity.AppointmentStatusCancelled, ErrPermissionDenied},
		{"no transition out of cancelled", entity.RoleIDPatient, patient, appt(entity.AppointmentStatusCancelled), entity.AppointmentStatusCancelled, ErrInvalidTransition},
		{"no transition out of completed", entity.RoleIDPatient, patient, appt(entity.AppointmentStatusCompleted), entity.AppointmentStatusCancelled, ErrInvalidTransition},
		{"completion has no API trigger", entity.RoleIDDoctor, doctor, appt(entity.AppointmentStatusConfirmed), entity.AppointmentStatusCompleted, ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeTransition(tt.roleID, tt.actorID, tt.appt, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AuthorizeTransition() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanEditDetails(t *testing.T) {
	patient := uuid.New()
	doctor := uuid.New()

	appt := &entity.Appointment{PatientID: patient, DoctorID: doctor, Status: entity.AppointmentStatusPending}

	if !CanEditDetails(entity.RoleIDPatient, patient, appt) {
		t.Error("owning patient should edit pending appointment")
	}
	if CanEditDetails(entity.RoleIDPatient, uuid.New(), appt) {
		t.Error("other patient must not edit")
	}
	if CanEditDetails(entity.RoleIDDoctor, doctor, appt) {
		t.Error("doctor must not edit details")
	}

	confirmed := &entity.Appointment{PatientID: patient, DoctorID: doctor, Status: entity.AppointmentStatusConfirmed}
	if CanEditDetails(entity.RoleIDPatient, patient, confirmed) {
		t.Error("details are frozen once no longer pending")
	}
}
