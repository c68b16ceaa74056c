package push

import (
	"net/http"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
)

const (
	pushNotFound = "PUSH_NOT_FOUND" // errInfo
)

var (
	ErrPushNotFound = sharedError.NewDomainError(pushNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(pushNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PUSH-001",
		Message: "푸시 알림을 찾을 수 없습니다.",
	})
}
