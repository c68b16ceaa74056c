package auth

import (
	"net/http"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
)

const (
	invalidRefreshToken  = "INVALID_REFRESH_TOKEN"  // errInfo
	invalidDormitoryCard = "INVALID_DORMITORY_CARD" // errInfo
)

var (
	ErrInvalidRefreshToken  = sharedError.NewDomainError(invalidRefreshToken)
	ErrInvalidDormitoryCard = sharedError.NewDomainError(invalidDormitoryCard)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-005",
		Message: "다시 로그인 해주세요.",
	})

	sharedError.RegisterDomainErrorResponse(invalidDormitoryCard, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-006",
		Message: "기숙사 카드 이미지는 jpeg, png, webp, heic 형식만 업로드할 수 있습니다.",
	})
}
