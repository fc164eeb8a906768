package entity

import "testing"

func TestAssignHospitalIdempotent(t *testing.T) {
	u := &User{RoleID: RoleIDDoctor}

	u.AssignHospital(7)
	first := *u.HospitalID

	u.AssignHospital(7)
	if *u.HospitalID != first {
		t.Errorf("re-assigning same hospital changed state: %d -> %d", first, *u.HospitalID)
	}

	// Overwrites, never appends: a doctor has at most one hospital.
	u.AssignHospital(9)
	if *u.HospitalID != 9 {
		t.Errorf("HospitalID = %d, want 9", *u.HospitalID)
	}

	u.UnassignHospital()
	if u.HospitalID != nil {
		t.Error("UnassignHospital should clear the reference")
	}
}

func TestRoleName(t *testing.T) {
	tests := []struct {
		roleID int
		want   string
	}{
		{RoleIDPatient, RolePatient},
		{RoleIDDoctor, RoleDoctor},
		{RoleIDAdmin, RoleAdmin},
		{RoleIDPharmacy, RolePharmacy},
		{RoleIDStaff, RoleStaff},
		{0, ""},
		{99, ""},
	}

	for _, tt := range tests {
		if got := RoleName(tt.roleID); got != tt.want {
			t.Errorf("RoleName(%d) = %q, want %q", tt.roleID, got, tt.want)
		}
	}
}
