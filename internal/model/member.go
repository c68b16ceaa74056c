package model

import "time"

// MemberStatus is the account state. Only the four constants below are valid.
type MemberStatus string

const (
	MemberStatusActive                   MemberStatus = "ACTIVE"
	MemberStatusAdminVerificationPending MemberStatus = "ADMIN_VERIFICATION_PENDING"
	MemberStatusBanned                   MemberStatus = "BANNED"
	MemberStatusWithdrawal               MemberStatus = "WITHDRAWAL"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusAdminVerificationPending, MemberStatusBanned, MemberStatusWithdrawal:
		return true
	default:
		return false
	}
}

func (s MemberStatus) String() string {
	return string(s)
}

// Member represents a dormitory resident account
type Member struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields (Password는 bcrypt 해시, DormitoryCard는 스토리지 URL)
	Email         string       `gorm:"column:email;type:VARCHAR(255);not null;uniqueIndex:idx_member_email"`
	Password      string       `gorm:"column:password;type:VARCHAR(128);not null"`
	Nickname      string       `gorm:"column:nickname;type:VARCHAR(50);not null"`
	Name          string       `gorm:"column:name;type:VARCHAR(100);not null"`
	PhoneNumber   string       `gorm:"column:phone_number;type:VARCHAR(100);not null"`
	Birthday      time.Time    `gorm:"column:birthday;not null"`
	DormitoryCode string       `gorm:"column:dormitory_code;type:VARCHAR(50);not null"`
	DormitoryCard string       `gorm:"column:dormitory_card;type:VARCHAR(512);not null"`
	Status        MemberStatus `gorm:"column:status;type:VARCHAR(32);not null;index:idx_member_status"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance.
// password must already be hashed.
func NewMember(email, password, nickname, name, phoneNumber, dormitoryCode, dormitoryCard string, birthday time.Time, status MemberStatus) *Member {
	return &Member{
		Email:         email,
		Password:      password,
		Nickname:      nickname,
		Name:          name,
		PhoneNumber:   phoneNumber,
		Birthday:      birthday,
		DormitoryCode: dormitoryCode,
		DormitoryCard: dormitoryCard,
		Status:        status,
	}
}
