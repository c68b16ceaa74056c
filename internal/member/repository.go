package member

import (
	"context"

	"github.com/dormlife/community-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// IsExist counts withdrawn members too: an anonymized account keeps its email,
// so the address cannot be registered again.
func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

// Save writes every column of an existing member, including the audit columns.
func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Save(member).Error
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	return m.findByID(db.WithContext(ctx), memberID)
}

// FindByIDForUpdate is FindByID with SELECT ... FOR UPDATE. Only meaningful inside
// a transaction; SQLite ignores the locking clause.
func (m *MemberRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	return m.findByID(db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), memberID)
}

func (m *MemberRepository) findByID(db *gorm.DB, memberID uint32) (*model.Member, error) {
	var member model.Member
	if err := db.Where("id = ?", memberID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
