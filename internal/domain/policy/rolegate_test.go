package policy

import (
	"testing"

	"github.com/google/uuid"

	"healthconnect/internal/domain/entity"
)

func TestCanViewOwnership(t *testing.T) {
	actor := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		roleID int
		entity EntityType
		own    Ownership
		want   bool
	}{
		{"patient sees own appointment", entity.RoleIDPatient, EntityAppointment, Ownership{PatientID: actor}, true},
		{"patient denied other's appointment", entity.RoleIDPatient, EntityAppointment, Ownership{PatientID: other}, false},
		{"patient denied via doctor ownership", entity.RoleIDPatient, EntityAppointment, Ownership{DoctorID: actor}, false},
		{"patient sees own health entry", entity.RoleIDPatient, EntityHealthTracking, Ownership{PatientID: actor}, true},
		{"patient sees own alert", entity.RoleIDPatient, EntityAlert, Ownership{PatientID: actor}, true},
		{"patient denied other's alert", entity.RoleIDPatient, EntityAlert, Ownership{PatientID: other}, false},
		{"doctor sees assigned appointment", entity.RoleIDDoctor, EntityAppointment, Ownership{DoctorID: actor}, true},
		{"doctor denied other's appointment", entity.RoleIDDoctor, EntityAppointment, Ownership{DoctorID: other}, false},
		{"doctor denied via patient ownership", entity.RoleIDDoctor, EntityAppointment, Ownership{PatientID: actor}, false},
		{"doctor sees authored record", entity.RoleIDDoctor, EntityMedicalRecord, Ownership{DoctorID: actor}, true},
		{"doctor denied health entries", entity.RoleIDDoctor, EntityHealthTracking, Ownership{PatientID: other}, false},
		{"admin sees any appointment", entity.RoleIDAdmin, EntityAppointment, Ownership{PatientID: other, DoctorID: other}, true},
		{"admin sees users", entity.RoleIDAdmin, EntityUser, Ownership{}, true},
		{"admin sees hospitals", entity.RoleIDAdmin, EntityHospital, Ownership{}, true},
		{"admin denied health entries", entity.RoleIDAdmin, EntityHealthTracking, Ownership{PatientID: other}, false},
		{"admin denied alerts", entity.RoleIDAdmin, EntityAlert, Ownership{PatientID: other}, false},
		{"pharmacy denied everything", entity.RoleIDPharmacy, EntityPrescription, Ownership{PatientID: actor}, false},
		{"staff denied everything", entity.RoleIDStaff, EntityAppointment, Ownership{PatientID: actor}, false},
		{"unknown role denied", 99, EntityAppointment, Ownership{PatientID: actor}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanView(tt.roleID, tt.entity, actor, tt.own)
			if got != tt.want {
				t.Errorf("CanView(%d, %s) = %v, want %v", tt.roleID, tt.entity, got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	actor := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		roleID int
		entity EntityType
		action Action
		own    Ownership
		want   bool
	}{
		{"patient creates own appointment", entity.RoleIDPatient, EntityAppointment, ActionCreate, Ownership{PatientID: actor}, true},
		{"patient cancels own appointment", entity.RoleIDPatient, EntityAppointment, ActionCancel, Ownership{PatientID: actor}, true},
		{"patient denied cancel of other's", entity.RoleIDPatient, EntityAppointment, ActionCancel, Ownership{PatientID: other}, false},
		{"patient creates own health entry", entity.RoleIDPatient, EntityHealthTracking, ActionCreate, Ownership{PatientID: actor}, true},
		{"patient denied medical record create", entity.RoleIDPatient, EntityMedicalRecord, ActionCreate, Ownership{PatientID: actor}, false},
		{"patient denied prescription create", entity.RoleIDPatient, EntityPrescription, ActionCreate, Ownership{PatientID: actor}, false},
		{"patient marks own alert read", entity.RoleIDPatient, EntityAlert, ActionMarkRead, Ownership{PatientID: actor}, true},
		{"doctor confirms assigned appointment", entity.RoleIDDoctor, EntityAppointment, ActionConfirm, Ownership{DoctorID: actor}, true},
		{"doctor denied confirm of other's", entity.RoleIDDoctor, EntityAppointment, ActionConfirm, Ownership{DoctorID: other}, false},
		{"doctor denied appointment cancel", entity.RoleIDDoctor, EntityAppointment, ActionCancel, Ownership{DoctorID: actor}, false},
		{"doctor creates own medical record", entity.RoleIDDoctor, EntityMedicalRecord, ActionCreate, Ownership{DoctorID: actor}, true},
		{"doctor creates own prescription", entity.RoleIDDoctor, EntityPrescription, ActionCreate, Ownership{DoctorID: actor}, true},
		{"admin creates hospital", entity.RoleIDAdmin, EntityHospital, ActionCreate, Ownership{}, true},
		{"admin deletes hospital", entity.RoleIDAdmin, EntityHospital, ActionDelete, Ownership{}, true},
		{"admin updates user", entity.RoleIDAdmin, EntityUser, ActionUpdate, Ownership{}, true},
		{"admin deletes user", entity.RoleIDAdmin, EntityUser, ActionDelete, Ownership{}, true},
		{"admin denied appointment confirm", entity.RoleIDAdmin, EntityAppointment, ActionConfirm, Ownership{}, false},
		{"admin denied appointment cancel", entity.RoleIDAdmin, EntityAppointment, ActionCancel, Ownership{}, false},
		{"pharmacy denied everything", entity.RoleIDPharmacy, EntityPrescription, ActionCreate, Ownership{DoctorID: actor}, false},
		{"staff denied everything", entity.RoleIDStaff, EntityHospital, ActionUpdate, Ownership{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanMutate(tt.roleID, tt.entity, tt.action, actor, tt.own)
			if got != tt.want {
				t.Errorf("CanMutate(%d, %s, %s) = %v, want %v", tt.roleID, tt.entity, tt.action, got, tt.want)
			}
		})
	}
}
