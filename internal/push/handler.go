package push

import (
	"net/http"

	sharedContext "github.com/dormlife/community-api/internal/shared/context"
	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/dormlife/community-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	pushService *PushService
}

func NewPushHandler(pushService *PushService) *PushHandler {
	return &PushHandler{
		pushService: pushService,
	}
}

func (h *PushHandler) List(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.pushService.List(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Check is called right after the client shows the push history.
func (h *PushHandler) Check(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CheckRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.pushService.Check(c.Request.Context(), memberID, &request); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
