package models

// UserRole represents the role of a user within their tenant
type UserRole string

const (
	UserRoleAdmin UserRole = "Admin"
	UserRoleUser  UserRole = "User"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// User represents an authenticated identity bound to a single tenant.
// The password hash is set explicitly by the auth service before Create;
// there are no persistence hooks that touch it.
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	CustomerID   string   `json:"customer_id" gorm:"not null;size:40;index" validate:"required,max=40"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'User'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
