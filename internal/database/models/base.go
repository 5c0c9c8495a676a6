package models

import (
	"time"
)

// Auditable provides creation/update timestamps shared by all models
type Auditable struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
