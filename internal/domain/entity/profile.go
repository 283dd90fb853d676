package entity

import "time"

// Profile is the per-identity record owned by the profile service. Its ID
// is assigned by the caller, not the database: it must equal the ID of the
// Credential created by the auth service, which is how the two services
// join identities by value.
//
// Role is copied from the Credential at creation time. The platform has no
// propagation mechanism, so the two copies may diverge after an admin
// update here.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Email     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
