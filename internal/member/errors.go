package member

import (
	"net/http"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
)

const (
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	memberNotFound      = "MEMBER_NOT_FOUND"      // errInfo
	samePassword        = "SAME_PASSWORD"         // errInfo
	wrongPassword       = "WRONG_PASSWORD"        // errInfo
	withdrawnMember     = "WITHDRAWN_MEMBER"      // errInfo
	pendingApproval     = "PENDING_APPROVAL"      // errInfo
	bannedMember        = "BANNED_MEMBER"         // errInfo
	unknownStatus       = "UNKNOWN_MEMBER_STATUS" // errInfo, not registered: surfaces as 500
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
	ErrSamePassword        = sharedError.NewDomainError(samePassword)
	ErrWrongPassword       = sharedError.NewDomainError(wrongPassword)
	ErrWithdrawnMember     = sharedError.NewDomainError(withdrawnMember)
	ErrPendingApproval     = sharedError.NewDomainError(pendingApproval)
	ErrBannedMember        = sharedError.NewDomainError(bannedMember)
	ErrUnknownStatus       = sharedError.NewDomainError(unknownStatus)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 사용자입니다.",
	})

	sharedError.RegisterDomainErrorResponse(samePassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "새 비밀번호가 기존 비밀번호와 같습니다.",
	})

	sharedError.RegisterDomainErrorResponse(wrongPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-001",
		Message: "비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(withdrawnMember, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "AUTH-002",
		Message: "탈퇴한 회원입니다.",
	})

	sharedError.RegisterDomainErrorResponse(pendingApproval, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "AUTH-003",
		Message: "관리자 승인 대기 중인 회원입니다.",
	})

	sharedError.RegisterDomainErrorResponse(bannedMember, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "AUTH-004",
		Message: "이용이 정지된 회원입니다.",
	})
}
