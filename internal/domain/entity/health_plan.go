package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthPlan distinguishes self-pay ("particular") from insurance-covered
// plans via IsParticular.
type HealthPlan struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	IsParticular bool      `gorm:"not null" json:"is_particular"`
	IsActive     bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HealthPlan) TableName() string {
	return "health_plans"
}
