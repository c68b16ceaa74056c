package board

import (
	"context"

	"github.com/dormlife/community-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepository struct{}

func NewBoardRepository() *BoardRepository {
	return &BoardRepository{}
}

func (r *BoardRepository) BoardExists(ctx context.Context, db *gorm.DB, boardID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Board{}).
		Where("id = ?", boardID).
		Count(&count).Error
	return count > 0, err
}

func (r *BoardRepository) CreatePost(ctx context.Context, db *gorm.DB, post *model.Post) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

func (r *BoardRepository) FindPostByID(ctx context.Context, db *gorm.DB, postID uint32) (*model.Post, error) {
	var post model.Post
	err := db.WithContext(ctx).Preload("Member").Where("id = ?", postID).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost writes the editable columns of post; updated_at is refreshed by GORM.
func (r *BoardRepository) UpdatePost(ctx context.Context, db *gorm.DB, post *model.Post) error {
	return db.WithContext(ctx).
		Model(post).
		Select("title", "content", "updated_by").
		Omit(clause.Associations).
		Updates(post).Error
}

func (r *BoardRepository) DeletePost(ctx context.Context, db *gorm.DB, postID uint32) error {
	return db.WithContext(ctx).Where("id = ?", postID).Delete(&model.Post{}).Error
}

// ListPosts returns one page of a board, newest first, plus the total count.
func (r *BoardRepository) ListPosts(ctx context.Context, db *gorm.DB, boardID uint32, offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.Post{}).Where("board_id = ?", boardID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := db.WithContext(ctx).
		Preload("Member").
		Where("board_id = ?", boardID).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *BoardRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *model.Comment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

func (r *BoardRepository) FindCommentByID(ctx context.Context, db *gorm.DB, commentID uint32) (*model.Comment, error) {
	var comment model.Comment
	err := db.WithContext(ctx).Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *BoardRepository) ListComments(ctx context.Context, db *gorm.DB, postID uint32) ([]model.Comment, error) {
	var comments []model.Comment
	err := db.WithContext(ctx).
		Preload("Member").
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *BoardRepository) DeleteCommentsByPostID(ctx context.Context, db *gorm.DB, postID uint32) error {
	return db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Comment{}).Error
}

// DeleteCommentTree removes a comment together with its replies.
func (r *BoardRepository) DeleteCommentTree(ctx context.Context, db *gorm.DB, commentID uint32) error {
	return db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", commentID, commentID).
		Delete(&model.Comment{}).Error
}
