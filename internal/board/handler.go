package board

import (
	"net/http"

	sharedContext "github.com/dormlife/community-api/internal/shared/context"
	"github.com/dormlife/community-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardService *BoardService
}

func NewBoardHandler(boardService *BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

func (h *BoardHandler) CreatePost(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	boardID, ok := handler.ParamID(c, "boardId")
	if !ok {
		return
	}

	var request PostRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.boardService.CreatePost(c.Request.Context(), memberID, boardID, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BoardHandler) ListPosts(c *gin.Context) {
	boardID, ok := handler.ParamID(c, "boardId")
	if !ok {
		return
	}

	var query ListQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.boardService.ListPosts(c.Request.Context(), boardID, query)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) LatestPosts(c *gin.Context) {
	boardID, ok := handler.ParamID(c, "boardId")
	if !ok {
		return
	}

	response, err := h.boardService.LatestPosts(c.Request.Context(), boardID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) GetPost(c *gin.Context) {
	postID, ok := handler.ParamID(c, "postId")
	if !ok {
		return
	}

	response, err := h.boardService.GetPost(c.Request.Context(), postID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) UpdatePost(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	postID, ok := handler.ParamID(c, "postId")
	if !ok {
		return
	}

	var request PostRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.boardService.UpdatePost(c.Request.Context(), memberID, postID, &request); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *BoardHandler) DeletePost(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	postID, ok := handler.ParamID(c, "postId")
	if !ok {
		return
	}

	if err := h.boardService.DeletePost(c.Request.Context(), memberID, postID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) CreateComment(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	postID, ok := handler.ParamID(c, "postId")
	if !ok {
		return
	}

	var request CommentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.boardService.CreateComment(c.Request.Context(), memberID, postID, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BoardHandler) DeleteComment(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	commentID, ok := handler.ParamID(c, "commentId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteComment(c.Request.Context(), memberID, commentID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) CreateReply(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	commentID, ok := handler.ParamID(c, "commentId")
	if !ok {
		return
	}

	var request CommentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.boardService.CreateReply(c.Request.Context(), memberID, commentID, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BoardHandler) DeleteReply(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}
	replyID, ok := handler.ParamID(c, "replyId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteReply(c.Request.Context(), memberID, replyID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
