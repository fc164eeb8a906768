package policy

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"healthconnect/internal/domain/entity"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func buildSQL(t *testing.T, db *gorm.DB, scope Scope) (string, []interface{}) {
	t.Helper()
	stmt := scope(db.Table("appointments")).Find(&[]entity.Appointment{}).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestScopeForPatientFiltersByPatientID(t *testing.T) {
	actor := uuid.New()
	scope := ScopeFor(entity.RoleIDPatient, actor, EntityAppointment)

	sql, vars := buildSQL(t, dryRunDB(t), scope)
	if !strings.Contains(sql, "patient_id") {
		t.Errorf("patient scope SQL missing patient_id filter: %s", sql)
	}
	if strings.Contains(sql, "doctor_id") {
		t.Errorf("patient scope SQL must not filter on doctor_id: %s", sql)
	}
	if len(vars) != 1 || vars[0] != actor {
		t.Errorf("patient scope vars = %v, want [%s]", vars, actor)
	}
}

func TestScopeForDoctorFiltersByDoctorID(t *testing.T) {
	actor := uuid.New()
	scope := ScopeFor(entity.RoleIDDoctor, actor, EntityMedicalRecord)

	sql, vars := buildSQL(t, dryRunDB(t), scope)
	if !strings.Contains(sql, "doctor_id") {
		t.Errorf("doctor scope SQL missing doctor_id filter: %s", sql)
	}
	if strings.Contains(sql, "patient_id") {
		t.Errorf("doctor scope SQL must not filter on patient_id: %s", sql)
	}
	if len(vars) != 1 || vars[0] != actor {
		t.Errorf("doctor scope vars = %v, want [%s]", vars, actor)
	}
}

func TestScopeForAdminAppointmentsUnrestricted(t *testing.T) {
	scope := ScopeFor(entity.RoleIDAdmin, uuid.New(), EntityAppointment)

	sql, _ := buildSQL(t, dryRunDB(t), scope)
	if strings.Contains(sql, "WHERE") {
		t.Errorf("admin appointment scope should be unrestricted, got: %s", sql)
	}
}

func TestScopeForDeniedRolesMatchNothing(t *testing.T) {
	tests := []struct {
		name   string
		roleID int
		entity EntityType
	}{
		{"pharmacy on prescriptions", entity.RoleIDPharmacy, EntityPrescription},
		{"staff on appointments", entity.RoleIDStaff, EntityAppointment},
		{"unknown role", 42, EntityMedicalRecord},
		{"admin on health tracking", entity.RoleIDAdmin, EntityHealthTracking},
		{"doctor on alerts", entity.RoleIDDoctor, EntityAlert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ScopeFor(tt.roleID, uuid.New(), tt.entity)
			sql, _ := buildSQL(t, dryRunDB(t), scope)
			if !strings.Contains(sql, "1 = 0") {
				t.Errorf("denied scope should match nothing, got: %s", sql)
			}
		})
	}
}

// Patients must never see a record owned by another patient, no matter how
// the record set is shaped.
func TestPatientVisibilityRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	actor := uuid.New()

	patients := []uuid.UUID{actor}
	for i := 0; i < 9; i++ {
		patients = append(patients, uuid.New())
	}
	doctors := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	entityTypes := []EntityType{
		EntityAppointment, EntityMedicalRecord, EntityPrescription,
		EntityHealthTracking, EntityAlert,
	}

	for i := 0; i < 2000; i++ {
		own := Ownership{
			PatientID: patients[rng.Intn(len(patients))],
			DoctorID:  doctors[rng.Intn(len(doctors))],
		}
		et := entityTypes[rng.Intn(len(entityTypes))]

		visible := CanView(entity.RoleIDPatient, et, actor, own)
		if visible && own.PatientID != actor {
			t.Fatalf("patient %s saw %s owned by %s", actor, et, own.PatientID)
		}
		if !visible && own.PatientID == actor {
			t.Fatalf("patient %s denied own %s", actor, et)
		}
	}
}
