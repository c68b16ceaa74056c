package member

import (
	"net/http"

	sharedContext "github.com/dormlife/community-api/internal/shared/context"
	"github.com/dormlife/community-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.memberService.GetProfile(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) ChangePassword(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request ChangePasswordRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.ChangePassword(c.Request.Context(), memberID, &request); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *MemberHandler) Withdraw(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	if err := h.memberService.Withdraw(c.Request.Context(), memberID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
