package member

import (
	"regexp"
	"testing"
	"time"

	"github.com/dormlife/community-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAnonymize(t *testing.T) {
	original := model.Member{
		ID:            7,
		Email:         "a@b.com",
		Password:      "$2a$04$hash",
		Nickname:      "dormking",
		Name:          "홍길동",
		PhoneNumber:   "010-1234-5678",
		Birthday:      time.Date(2000, 5, 17, 0, 0, 0, 0, time.UTC),
		DormitoryCode: "DORM-A",
		DormitoryCard: "https://cdn.example.com/dormitory_card/x/card.png",
		Status:        model.MemberStatusActive,
	}
	now := time.Date(2026, 3, 2, 1, 30, 0, 0, time.UTC)

	anonymized := Anonymize(original, Anonymization{
		Nickname:         "0123456789ABCDEF0123456789ABCDEF",
		UnusablePassword: "!unusable",
		Now:              now,
	})

	assert.Equal(t, uint32(7), anonymized.ID)
	assert.Equal(t, "a@b.com", anonymized.Email)
	assert.Equal(t, "!unusable", anonymized.Password)
	assert.Equal(t, "0123456789ABCDEF0123456789ABCDEF", anonymized.Nickname)
	assert.Equal(t, "unknown", anonymized.Name)
	assert.Equal(t, "unknown", anonymized.PhoneNumber)
	assert.Equal(t, "unknown", anonymized.DormitoryCode)
	assert.Equal(t, "unknown", anonymized.DormitoryCard)
	assert.Equal(t, model.MemberStatusWithdrawal, anonymized.Status)

	assert.True(t, anonymized.Birthday.Equal(now))
	_, offset := anonymized.Birthday.Zone()
	assert.Equal(t, 9*60*60, offset)
	assert.Equal(t, 10, anonymized.Birthday.Hour())

	// input is untouched
	assert.Equal(t, "홍길동", original.Name)
	assert.Equal(t, model.MemberStatusActive, original.Status)
}

func TestNewAnonymization_NicknameIsRandomUpperHex(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9A-F]{32}$`)

	first := NewAnonymization("!x", time.Now())
	second := NewAnonymization("!x", time.Now())

	assert.Regexp(t, hex32, first.Nickname)
	assert.Regexp(t, hex32, second.Nickname)
	assert.NotEqual(t, first.Nickname, second.Nickname)
}
