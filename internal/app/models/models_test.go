package models

import "testing"

func TestEnumMembership(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleGuru.Valid() || !RoleSiswa.Valid() {
		t.Fatal("known roles must be valid")
	}
	if UserRole("superuser").Valid() {
		t.Fatal("unknown role must be invalid")
	}

	if !GenderMale.Valid() || !GenderFemale.Valid() {
		t.Fatal("known genders must be valid")
	}
	if Gender("other").Valid() {
		t.Fatal("unknown gender must be invalid")
	}

	for _, s := range []LeaveStatus{LeavePending, LeaveApproved, LeaveRejected} {
		if !s.Valid() {
			t.Fatalf("leave status %q must be valid", s)
		}
	}
	if LeaveStatus("cancelled").Valid() {
		t.Fatal("unknown leave status must be invalid")
	}

	for _, s := range []SanctionStatus{SanctionPending, SanctionInProcess, SanctionSanctioned, SanctionNotSanctioned} {
		if !s.Valid() {
			t.Fatalf("sanction status %q must be valid", s)
		}
	}
	if SanctionStatus("appealed").Valid() {
		t.Fatal("unknown sanction status must be invalid")
	}

	for _, s := range []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceSick, AttendanceExcused} {
		if !s.Valid() {
			t.Fatalf("attendance status %q must be valid", s)
		}
	}
	if AttendanceStatus("holiday").Valid() {
		t.Fatal("unknown attendance status must be invalid")
	}
}
