package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
// Zero-value fields are skipped; set fields match exactly.
type AppointmentFilter struct {
	Status    AppointmentStatus
	DoctorID  uint
	PatientID uint
}
