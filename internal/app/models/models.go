package models

// UserRole defines the account role stored on the 'users' table
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleGuru  UserRole = "guru"
	RoleSiswa UserRole = "siswa"
)

// Valid reports whether the role is one of the known values
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuru, RoleSiswa:
		return true
	}
	return false
}

// Gender for guru, siswa and kepala sekolah records
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// LeaveStatus tracks the state of an izin_guru row
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	}
	return false
}

// SanctionStatus tracks the state of a manajemen_sanksi row
type SanctionStatus string

const (
	SanctionPending       SanctionStatus = "pending"
	SanctionInProcess     SanctionStatus = "in_process"
	SanctionSanctioned    SanctionStatus = "sanctioned"
	SanctionNotSanctioned SanctionStatus = "not_sanctioned"
)

func (s SanctionStatus) Valid() bool {
	switch s {
	case SanctionPending, SanctionInProcess, SanctionSanctioned, SanctionNotSanctioned:
		return true
	}
	return false
}

// AttendanceStatus is shared by attendance_guru and attendance_siswa
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceSick    AttendanceStatus = "sick"
	AttendanceExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceSick, AttendanceExcused:
		return true
	}
	return false
}
