package auth

import (
	"mime/multipart"
	"time"

	"github.com/dormlife/community-api/internal/member"
)

// SignupRequest is bound from a multipart form; dormitory_card is the identity image.
type SignupRequest struct {
	Email         string                `form:"email" binding:"required,email,max=50"`
	Password      string                `form:"password" binding:"required,min=4,max=64,maxbytes=72"`
	DormitoryCard *multipart.FileHeader `form:"dormitory_card" binding:"required"`
	DormitoryCode string                `form:"dormitory_code" binding:"required,max=20"`
	Nickname      string                `form:"nickname" binding:"required,max=20"`
	PhoneNumber   string                `form:"phone_number" binding:"required,phone"`
	Name          string                `form:"name" binding:"required,max=20"`
	Birthday      time.Time             `form:"birthday" time_format:"2006-01-02" time_utc:"1" binding:"pastdate"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=64,maxbytes=72"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type SigninResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Member       member.Summary `json:"member"`
}
