package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/dormlife/community-api/internal/member"
	"github.com/dormlife/community-api/internal/model"
	"github.com/dormlife/community-api/internal/shared/database"
	"github.com/dormlife/community-api/internal/shared/logger"
	"gorm.io/gorm"
)

type BoardService struct {
	db               *gorm.DB
	boardRepository  *BoardRepository
	memberRepository *member.MemberRepository
}

func NewBoardService(db *gorm.DB, boardRepository *BoardRepository, memberRepository *member.MemberRepository) *BoardService {
	return &BoardService{
		db:               db,
		boardRepository:  boardRepository,
		memberRepository: memberRepository,
	}
}

func (s *BoardService) CreatePost(ctx context.Context, memberID, boardID uint32, request *PostRequest) (*CreatedResponse, error) {
	log := logger.FromContext(ctx)
	var post *model.Post

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.requireActiveMember(ctx, tx, memberID); err != nil {
			return err
		}

		exists, err := s.boardRepository.BoardExists(ctx, tx, boardID)
		if err != nil {
			return fmt.Errorf("check board existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("boardID=%d: %w", boardID, ErrBoardNotFound)
		}

		post = &model.Post{
			BoardID:  boardID,
			MemberID: memberID,
			Title:    request.Title,
			Content:  request.Content,
		}
		post.CreatedByMember(memberID)
		if err := s.boardRepository.CreatePost(ctx, tx, post); err != nil {
			log.Error("Failed to create post", "error", err)
			return fmt.Errorf("create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("게시글 작성 완료", "post_id", post.ID, "board_id", boardID)
	return &CreatedResponse{ID: post.ID}, nil
}

func (s *BoardService) GetPost(ctx context.Context, postID uint32) (*PostDetailResponse, error) {
	post, err := s.findPost(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.boardRepository.ListComments(ctx, s.db, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &PostDetailResponse{
		ID:        post.ID,
		BoardID:   post.BoardID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    newAuthor(&post.Member),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Comments:  newCommentTree(comments),
	}, nil
}

func (s *BoardService) UpdatePost(ctx context.Context, memberID, postID uint32, request *PostRequest) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		post, err := s.findPost(ctx, tx, postID)
		if err != nil {
			return err
		}
		if post.MemberID != memberID {
			return fmt.Errorf("update postID=%d memberID=%d: %w", postID, memberID, ErrNotAuthor)
		}

		post.Title = request.Title
		post.Content = request.Content
		post.UpdatedByMember(memberID)
		if err := s.boardRepository.UpdatePost(ctx, tx, post); err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		return nil
	})
}

// DeletePost removes the post and all of its comments.
func (s *BoardService) DeletePost(ctx context.Context, memberID, postID uint32) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		post, err := s.findPost(ctx, tx, postID)
		if err != nil {
			return err
		}
		if post.MemberID != memberID {
			return fmt.Errorf("delete postID=%d memberID=%d: %w", postID, memberID, ErrNotAuthor)
		}

		if err := s.boardRepository.DeleteCommentsByPostID(ctx, tx, postID); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := s.boardRepository.DeletePost(ctx, tx, postID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
}

func (s *BoardService) ListPosts(ctx context.Context, boardID uint32, query ListQuery) (*PostListResponse, error) {
	query.normalize()

	if err := s.requireBoard(ctx, s.db, boardID); err != nil {
		return nil, err
	}

	posts, total, err := s.boardRepository.ListPosts(ctx, s.db, boardID, (query.Page-1)*query.Size, query.Size)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &PostListResponse{
		Posts:      newPostSummaries(posts),
		Page:       query.Page,
		Size:       query.Size,
		TotalCount: total,
	}, nil
}

// LatestPosts returns the five newest posts of a board (home screen preview).
func (s *BoardService) LatestPosts(ctx context.Context, boardID uint32) ([]PostSummary, error) {
	if err := s.requireBoard(ctx, s.db, boardID); err != nil {
		return nil, err
	}

	posts, _, err := s.boardRepository.ListPosts(ctx, s.db, boardID, 0, latestPostCount)
	if err != nil {
		return nil, fmt.Errorf("list latest posts: %w", err)
	}
	return newPostSummaries(posts), nil
}

func (s *BoardService) CreateComment(ctx context.Context, memberID, postID uint32, request *CommentRequest) (*CreatedResponse, error) {
	var comment *model.Comment

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.requireActiveMember(ctx, tx, memberID); err != nil {
			return err
		}
		if _, err := s.findPost(ctx, tx, postID); err != nil {
			return err
		}

		comment = &model.Comment{
			PostID:   postID,
			MemberID: memberID,
			Content:  request.Content,
		}
		comment.CreatedByMember(memberID)
		if err := s.boardRepository.CreateComment(ctx, tx, comment); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: comment.ID}, nil
}

// CreateReply answers a top-level comment. Replies cannot be nested further.
func (s *BoardService) CreateReply(ctx context.Context, memberID, commentID uint32, request *CommentRequest) (*CreatedResponse, error) {
	var reply *model.Comment

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.requireActiveMember(ctx, tx, memberID); err != nil {
			return err
		}

		parent, err := s.findComment(ctx, tx, commentID)
		if err != nil {
			return err
		}
		if parent.IsReply() {
			return fmt.Errorf("commentID=%d: %w", commentID, ErrReplyDepthExceeded)
		}

		reply = &model.Comment{
			PostID:   parent.PostID,
			MemberID: memberID,
			ParentID: &parent.ID,
			Content:  request.Content,
		}
		reply.CreatedByMember(memberID)
		if err := s.boardRepository.CreateComment(ctx, tx, reply); err != nil {
			return fmt.Errorf("create reply: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: reply.ID}, nil
}

// DeleteComment removes a top-level comment and its replies.
func (s *BoardService) DeleteComment(ctx context.Context, memberID, commentID uint32) error {
	return s.deleteComment(ctx, memberID, commentID, false)
}

func (s *BoardService) DeleteReply(ctx context.Context, memberID, replyID uint32) error {
	return s.deleteComment(ctx, memberID, replyID, true)
}

func (s *BoardService) deleteComment(ctx context.Context, memberID, commentID uint32, reply bool) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		comment, err := s.findComment(ctx, tx, commentID)
		if err != nil {
			return err
		}
		if comment.IsReply() != reply {
			return fmt.Errorf("commentID=%d reply=%t: %w", commentID, reply, ErrCommentNotFound)
		}
		if comment.MemberID != memberID {
			return fmt.Errorf("delete commentID=%d memberID=%d: %w", commentID, memberID, ErrNotAuthor)
		}

		if err := s.boardRepository.DeleteCommentTree(ctx, tx, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		return nil
	})
}

func (s *BoardService) requireActiveMember(ctx context.Context, db *gorm.DB, memberID uint32) error {
	m, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("memberID=%d: %w", memberID, member.ErrMemberNotFound)
		}
		return fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member.CheckStatus(m.Status)
}

func (s *BoardService) requireBoard(ctx context.Context, db *gorm.DB, boardID uint32) error {
	exists, err := s.boardRepository.BoardExists(ctx, db, boardID)
	if err != nil {
		return fmt.Errorf("check board existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("boardID=%d: %w", boardID, ErrBoardNotFound)
	}
	return nil
}

func (s *BoardService) findPost(ctx context.Context, db *gorm.DB, postID uint32) (*model.Post, error) {
	post, err := s.boardRepository.FindPostByID(ctx, db, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("postID=%d: %w", postID, ErrPostNotFound)
		}
		return nil, fmt.Errorf("게시글 조회 실패: %w", err)
	}
	return post, nil
}

func (s *BoardService) findComment(ctx context.Context, db *gorm.DB, commentID uint32) (*model.Comment, error) {
	comment, err := s.boardRepository.FindCommentByID(ctx, db, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("commentID=%d: %w", commentID, ErrCommentNotFound)
		}
		return nil, fmt.Errorf("댓글 조회 실패: %w", err)
	}
	return comment, nil
}
