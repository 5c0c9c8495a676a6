package models

// Role represents an access role ("admin", "user", "data"); reference data once seeded
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Auditable
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`

	// Relationships
	Users []UserRole `json:"users,omitempty" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
