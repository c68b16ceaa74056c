package push

import (
	"context"

	"github.com/dormlife/community-api/internal/model"
	"gorm.io/gorm"
)

const listLimit = 100

type PushRepository struct{}

func NewPushRepository() *PushRepository {
	return &PushRepository{}
}

func (r *PushRepository) ListByMemberID(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.PushNotification, error) {
	var notifications []model.PushNotification
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Limit(listLimit).
		Find(&notifications).Error
	return notifications, err
}

func (r *PushRepository) CountOwned(ctx context.Context, db *gorm.DB, memberID uint32, ids []uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.PushNotification{}).
		Where("member_id = ? AND id IN ?", memberID, ids).
		Count(&count).Error
	return count, err
}

func (r *PushRepository) MarkChecked(ctx context.Context, db *gorm.DB, memberID uint32, ids []uint32) error {
	return db.WithContext(ctx).
		Model(&model.PushNotification{}).
		Where("member_id = ? AND id IN ?", memberID, ids).
		Update("is_checked", true).Error
}

func (r *PushRepository) DeleteByMemberID(ctx context.Context, db *gorm.DB, memberID uint32) error {
	return db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Delete(&model.PushNotification{}).Error
}
