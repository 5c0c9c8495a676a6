package models

// UserRole represents one grant of a role to a user.
// Identity is the (user, role) pair; there is no surrogate key.
type UserRole struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RoleID uint `json:"role_id" gorm:"primaryKey;autoIncrement:false"`
	Auditable

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role Role `json:"role,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}

// Equal reports whether two grants link the same user and role
func (ur UserRole) Equal(other UserRole) bool {
	return ur.UserID == other.UserID && ur.RoleID == other.RoleID
}
