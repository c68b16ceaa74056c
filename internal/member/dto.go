package member

import "github.com/dormlife/community-api/internal/model"

const birthdayLayout = "2006-01-02"

type GetProfileResponse struct {
	ID            uint32 `json:"id"`
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Birthday      string `json:"birthday"`
	DormitoryCode string `json:"dormitoryCode"`
	Status        string `json:"status"`
}

// Summary is the member part of the signin response.
type Summary struct {
	ID            uint32 `json:"id"`
	Email         string `json:"email"`
	Nickname      string `json:"nickname"`
	DormitoryCode string `json:"dormitoryCode"`
	Status        string `json:"status"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,max=64,maxbytes=72"`
	NewPassword string `json:"newPassword" binding:"required,min=4,max=64,maxbytes=72"`
}

func NewSummary(m *model.Member) Summary {
	return Summary{
		ID:            m.ID,
		Email:         m.Email,
		Nickname:      m.Nickname,
		DormitoryCode: m.DormitoryCode,
		Status:        m.Status.String(),
	}
}

func newProfileResponse(m *model.Member) *GetProfileResponse {
	return &GetProfileResponse{
		ID:            m.ID,
		Email:         m.Email,
		Nickname:      m.Nickname,
		Name:          m.Name,
		PhoneNumber:   m.PhoneNumber,
		Birthday:      m.Birthday.Format(birthdayLayout),
		DormitoryCode: m.DormitoryCode,
		Status:        m.Status.String(),
	}
}
