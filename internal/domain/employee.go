package domain

import (
	"time"
)

type Employee struct {
	ID             string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrganizationID string        `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string        `gorm:"type:text;not null" json:"name"`
	Code           string        `gorm:"type:text" json:"code"`
	DeletedAt      *time.Time    `gorm:"type:timestamp with time zone;index" json:"-"`
	CreatedAt      time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// TenantParent scopes employees through their organization; employees carry
// no tenant column of their own.
func (Employee) TenantParent() (table, foreignKey, tenantColumn string) {
	return Organization{}.TableName(), "organization_id", Organization{}.TenantColumn()
}
