package board

import (
	"time"

	"github.com/dormlife/community-api/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
	maxPage         = 10000
	latestPostCount = 5
)

type PostRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=4000"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type ListQuery struct {
	Page int `form:"page" binding:"omitempty,min=1,max=10000"`
	Size int `form:"size" binding:"omitempty,min=1,max=50"`
}

func (q *ListQuery) normalize() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page > maxPage {
		q.Page = maxPage
	}
	if q.Size == 0 {
		q.Size = defaultPageSize
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}
}

type CreatedResponse struct {
	ID uint32 `json:"id"`
}

type AuthorResponse struct {
	ID       uint32 `json:"id"`
	Nickname string `json:"nickname"`
}

type PostSummary struct {
	ID        uint32         `json:"id"`
	BoardID   uint32         `json:"boardId"`
	Title     string         `json:"title"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}

type PostListResponse struct {
	Posts      []PostSummary `json:"posts"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalCount int64         `json:"totalCount"`
}

type CommentResponse struct {
	ID        uint32            `json:"id"`
	Author    AuthorResponse    `json:"author"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	Replies   []CommentResponse `json:"replies,omitempty"`
}

type PostDetailResponse struct {
	ID        uint32            `json:"id"`
	BoardID   uint32            `json:"boardId"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    AuthorResponse    `json:"author"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Comments  []CommentResponse `json:"comments"`
}

func newAuthor(m *model.Member) AuthorResponse {
	return AuthorResponse{ID: m.ID, Nickname: m.Nickname}
}

func newPostSummaries(posts []model.Post) []PostSummary {
	summaries := make([]PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, PostSummary{
			ID:        posts[i].ID,
			BoardID:   posts[i].BoardID,
			Title:     posts[i].Title,
			Author:    newAuthor(&posts[i].Member),
			CreatedAt: posts[i].CreatedAt,
		})
	}
	return summaries
}

// newCommentTree nests replies under their parent. comments must be ordered by id.
func newCommentTree(comments []model.Comment) []CommentResponse {
	tree := make([]CommentResponse, 0, len(comments))
	index := make(map[uint32]int, len(comments))

	for i := range comments {
		c := &comments[i]
		if c.IsReply() {
			continue
		}
		index[c.ID] = len(tree)
		tree = append(tree, newCommentResponse(c))
	}

	for i := range comments {
		c := &comments[i]
		if !c.IsReply() {
			continue
		}
		if pos, ok := index[*c.ParentID]; ok {
			tree[pos].Replies = append(tree[pos].Replies, newCommentResponse(c))
		}
	}
	return tree
}

func newCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Author:    newAuthor(&c.Member),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
