package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
// No transition table is enforced: any permitted writer may set any of the
// three values regardless of the current one.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "agendada"
	AppointmentStatusCompleted AppointmentStatus = "realizada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
)

// IsValid reports whether s is one of the three known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled appointment between a patient and a
// doctor. PatientID and DoctorID reference Credential IDs from the auth
// service; there is no cross-database foreign key.
type Appointment struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID    uint              `gorm:"not null;index" json:"doctor_id"`
	ScheduledAt time.Time         `gorm:"not null" json:"scheduled_at"`
	Notes       *string           `gorm:"type:text" json:"notes,omitempty"`
	Diagnosis   *string           `gorm:"type:text" json:"diagnosis,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'agendada';index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
