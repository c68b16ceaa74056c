package model

import "time"

// PushNotification is a delivered push message kept for the in-app history.
// Rows are written by the push sender; this service only reads them and flips IsChecked.
type PushNotification struct {
	ID        uint32    `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID  uint32    `gorm:"column:member_id;not null;index:idx_push_member"`
	Title     string    `gorm:"column:title;type:VARCHAR(200);not null"`
	Body      string    `gorm:"column:body;type:VARCHAR(1000);not null"`
	IsChecked bool      `gorm:"column:is_checked;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (*PushNotification) TableName() string {
	return "push_notification"
}
