package domain

import (
	"time"
)

type Organization struct {
	ID        string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string     `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string     `gorm:"type:text;not null" json:"name"`
	DeletedAt *time.Time `gorm:"type:timestamp with time zone;index" json:"-"`
	CreatedAt time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant    `gorm:"foreignKey:TenantID" json:"-"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (Organization) TenantColumn() string {
	return "tenant_id"
}
