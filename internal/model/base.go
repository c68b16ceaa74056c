package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 Service에서 행위자 회원 ID로 명시적으로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *uint32   `gorm:"column:created_by"`
	UpdatedBy *uint32   `gorm:"column:updated_by"`
}

// CreatedByMember stamps both audit columns for a freshly created row.
func (e *BaseEntity) CreatedByMember(memberID uint32) {
	e.CreatedBy = &memberID
	e.UpdatedBy = &memberID
}

func (e *BaseEntity) UpdatedByMember(memberID uint32) {
	e.UpdatedBy = &memberID
}
