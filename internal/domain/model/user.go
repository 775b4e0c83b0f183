package model

// User is the persisted account record. PasswordHash is write-only: it never
// appears in responses and is only mutated through the password-update flow.
type User struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:50" json:"username"`
	Email        string `gorm:"uniqueIndex;size:50" json:"email"`
	FirstName    string `gorm:"size:50" json:"first_name"`
	LastName     string `gorm:"size:50" json:"last_name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	PhoneNumber  string `gorm:"size:50" json:"phone_number"`
	AddressID    *int64 `json:"address_id,omitempty"`
}
