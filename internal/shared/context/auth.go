package context

import (
	"strconv"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// MemberIDKey holds the authenticated member id as the decimal string from the token
const MemberIDKey = "member_id"

// SetMemberID records the authenticated member on the gin context and binds it to
// the request logger, so service logs carry member_id without passing it around.
func SetMemberID(c *gin.Context, memberID string) {
	c.Set(MemberIDKey, memberID)
	c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "member_id", memberID))
}

func GetMemberID(c *gin.Context) (uint32, bool) {
	idStr := c.GetString(MemberIDKey)
	if idStr == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint32(id), true
}

// RequireMemberID is GetMemberID for protected handlers: a missing or malformed
// id aborts with 401 AUTH-000 and the handler just returns.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.AbortWithStatusJSON(sharedError.Unauthenticated.Status, sharedError.Unauthenticated)
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.",
			"raw", c.GetString(MemberIDKey))
		return 0, false
	}
	return memberID, true
}
