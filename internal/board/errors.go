package board

import (
	"net/http"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
)

const (
	boardNotFound      = "BOARD_NOT_FOUND"      // errInfo
	postNotFound       = "POST_NOT_FOUND"       // errInfo
	commentNotFound    = "COMMENT_NOT_FOUND"    // errInfo
	notAuthor          = "NOT_AUTHOR"           // errInfo
	replyDepthExceeded = "REPLY_DEPTH_EXCEEDED" // errInfo
)

var (
	ErrBoardNotFound      = sharedError.NewDomainError(boardNotFound)
	ErrPostNotFound       = sharedError.NewDomainError(postNotFound)
	ErrCommentNotFound    = sharedError.NewDomainError(commentNotFound)
	ErrNotAuthor          = sharedError.NewDomainError(notAuthor)
	ErrReplyDepthExceeded = sharedError.NewDomainError(replyDepthExceeded)
)

func init() {
	sharedError.RegisterDomainErrorResponse(boardNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOARD-001",
		Message: "게시판을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(postNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOARD-002",
		Message: "게시글을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(commentNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOARD-003",
		Message: "댓글을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(notAuthor, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "BOARD-004",
		Message: "작성자만 수정하거나 삭제할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(replyDepthExceeded, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "BOARD-005",
		Message: "대댓글에는 답글을 달 수 없습니다.",
	})
}
