package domain

import (
	"time"
)

type Tenant struct {
	ID          string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	DeletedAt   *time.Time `gorm:"type:timestamp with time zone;index" json:"-"`
	CreatedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// TenantColumn makes the tenant row itself tenant-scoped: under scope T the
// only visible tenant is T.
func (Tenant) TenantColumn() string {
	return "id"
}
