package board_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/dormlife/community-api/internal/board"
	"github.com/dormlife/community-api/internal/member"
	"github.com/dormlife/community-api/internal/model"
	"github.com/dormlife/community-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type boardFixture struct {
	db      *gorm.DB
	service *board.BoardService
	board   *model.Board
	author  *model.Member
	other   *model.Member
}

func setupBoard(t *testing.T) boardFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	return boardFixture{
		db:      db,
		service: board.NewBoardService(db, board.NewBoardRepository(), member.NewMemberRepository()),
		board:   testutil.CreateBoard(t, db, "자유게시판"),
		author:  testutil.CreateMember(t, db, "author@b.com", "Pw1!", model.MemberStatusActive),
		other:   testutil.CreateMember(t, db, "other@b.com", "Pw1!", model.MemberStatusActive),
	}
}

func (f boardFixture) createPost(t *testing.T, title string) uint32 {
	t.Helper()

	created, err := f.service.CreatePost(context.Background(), f.author.ID, f.board.ID, &board.PostRequest{
		Title:   title,
		Content: title + " content",
	})
	require.NoError(t, err)
	return created.ID
}

func TestCreatePost_AndGetPost(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()

	postID := f.createPost(t, "세탁기 고장")

	detail, err := f.service.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "세탁기 고장", detail.Title)
	assert.Equal(t, f.board.ID, detail.BoardID)
	assert.Equal(t, f.author.ID, detail.Author.ID)
	assert.Equal(t, f.author.Nickname, detail.Author.Nickname)
	assert.Empty(t, detail.Comments)
}

func TestCreatePost_BoardNotFound(t *testing.T) {
	f := setupBoard(t)

	_, err := f.service.CreatePost(context.Background(), f.author.ID, 999, &board.PostRequest{Title: "t", Content: "c"})

	assert.ErrorIs(t, err, board.ErrBoardNotFound)
}

func TestCreatePost_InactiveAuthor(t *testing.T) {
	f := setupBoard(t)

	testCases := []struct {
		status model.MemberStatus
		want   error
	}{
		{model.MemberStatusAdminVerificationPending, member.ErrPendingApproval},
		{model.MemberStatusBanned, member.ErrBannedMember},
		{model.MemberStatusWithdrawal, member.ErrWithdrawnMember},
	}

	for i, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			m := testutil.CreateMember(t, f.db, fmt.Sprintf("inactive%d@b.com", i), "Pw1!", tc.status)

			_, err := f.service.CreatePost(context.Background(), m.ID, f.board.ID, &board.PostRequest{Title: "t", Content: "c"})

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdatePost_OnlyAuthor(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()
	postID := f.createPost(t, "before")

	err := f.service.UpdatePost(ctx, f.other.ID, postID, &board.PostRequest{Title: "hijack", Content: "x"})
	assert.ErrorIs(t, err, board.ErrNotAuthor)

	err = f.service.UpdatePost(ctx, f.author.ID, postID, &board.PostRequest{Title: "after", Content: "edited"})
	require.NoError(t, err)

	detail, err := f.service.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "after", detail.Title)
	assert.Equal(t, "edited", detail.Content)

	var stored model.Post
	require.NoError(t, f.db.First(&stored, postID).Error)
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, f.author.ID, *stored.UpdatedBy)
}

func TestDeletePost_RemovesComments(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()
	postID := f.createPost(t, "post")

	comment, err := f.service.CreateComment(ctx, f.other.ID, postID, &board.CommentRequest{Content: "hi"})
	require.NoError(t, err)
	_, err = f.service.CreateReply(ctx, f.author.ID, comment.ID, &board.CommentRequest{Content: "hello"})
	require.NoError(t, err)

	err = f.service.DeletePost(ctx, f.other.ID, postID)
	assert.ErrorIs(t, err, board.ErrNotAuthor)

	require.NoError(t, f.service.DeletePost(ctx, f.author.ID, postID))

	_, err = f.service.GetPost(ctx, postID)
	assert.ErrorIs(t, err, board.ErrPostNotFound)

	var remaining int64
	require.NoError(t, f.db.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestListPosts_PagedNewestFirst(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		f.createPost(t, fmt.Sprintf("post-%d", i))
	}

	page, err := f.service.ListPosts(ctx, f.board.ID, board.ListQuery{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.TotalCount)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, "post-4", page.Posts[0].Title)
	assert.Equal(t, "post-2", page.Posts[2].Title)

	defaults, err := f.service.ListPosts(ctx, f.board.ID, board.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 20, defaults.Size)
	assert.Len(t, defaults.Posts, 7)

	latest, err := f.service.LatestPosts(ctx, f.board.ID)
	require.NoError(t, err)
	require.Len(t, latest, 5)
	assert.Equal(t, "post-7", latest[0].Title)
	assert.Equal(t, f.author.Nickname, latest[0].Author.Nickname)

	_, err = f.service.LatestPosts(ctx, 999)
	assert.ErrorIs(t, err, board.ErrBoardNotFound)
}

func TestListPosts_ClampsOutOfRangePaging(t *testing.T) {
	f := setupBoard(t)
	f.createPost(t, "post-1")

	page, err := f.service.ListPosts(context.Background(), f.board.ID, board.ListQuery{Page: math.MaxInt, Size: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, 10000, page.Page)
	assert.Equal(t, 50, page.Size)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Empty(t, page.Posts)
}

func TestComments_Tree(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()
	postID := f.createPost(t, "post")

	first, err := f.service.CreateComment(ctx, f.other.ID, postID, &board.CommentRequest{Content: "first"})
	require.NoError(t, err)
	second, err := f.service.CreateComment(ctx, f.author.ID, postID, &board.CommentRequest{Content: "second"})
	require.NoError(t, err)
	reply, err := f.service.CreateReply(ctx, f.author.ID, first.ID, &board.CommentRequest{Content: "reply"})
	require.NoError(t, err)

	detail, err := f.service.GetPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, first.ID, detail.Comments[0].ID)
	require.Len(t, detail.Comments[0].Replies, 1)
	assert.Equal(t, reply.ID, detail.Comments[0].Replies[0].ID)
	assert.Equal(t, f.author.Nickname, detail.Comments[0].Replies[0].Author.Nickname)
	assert.Equal(t, second.ID, detail.Comments[1].ID)
	assert.Empty(t, detail.Comments[1].Replies)
}

func TestCreateReply_DepthExceeded(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()
	postID := f.createPost(t, "post")

	comment, err := f.service.CreateComment(ctx, f.other.ID, postID, &board.CommentRequest{Content: "c"})
	require.NoError(t, err)
	reply, err := f.service.CreateReply(ctx, f.author.ID, comment.ID, &board.CommentRequest{Content: "r"})
	require.NoError(t, err)

	_, err = f.service.CreateReply(ctx, f.author.ID, reply.ID, &board.CommentRequest{Content: "rr"})

	assert.ErrorIs(t, err, board.ErrReplyDepthExceeded)
}

func TestDeleteComment_RemovesReplies(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()
	postID := f.createPost(t, "post")

	comment, err := f.service.CreateComment(ctx, f.other.ID, postID, &board.CommentRequest{Content: "c"})
	require.NoError(t, err)
	reply, err := f.service.CreateReply(ctx, f.author.ID, comment.ID, &board.CommentRequest{Content: "r"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.DeleteComment(ctx, f.author.ID, comment.ID), board.ErrNotAuthor)
	assert.ErrorIs(t, f.service.DeleteComment(ctx, f.author.ID, reply.ID), board.ErrCommentNotFound)

	require.NoError(t, f.service.DeleteComment(ctx, f.other.ID, comment.ID))

	var remaining int64
	require.NoError(t, f.db.Model(&model.Comment{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestDeleteReply(t *testing.T) {
	f := setupBoard(t)
	ctx := context.Background()
	postID := f.createPost(t, "post")

	comment, err := f.service.CreateComment(ctx, f.other.ID, postID, &board.CommentRequest{Content: "c"})
	require.NoError(t, err)
	reply, err := f.service.CreateReply(ctx, f.author.ID, comment.ID, &board.CommentRequest{Content: "r"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.DeleteReply(ctx, f.author.ID, comment.ID), board.ErrCommentNotFound)
	assert.ErrorIs(t, f.service.DeleteReply(ctx, f.other.ID, reply.ID), board.ErrNotAuthor)

	require.NoError(t, f.service.DeleteReply(ctx, f.author.ID, reply.ID))

	detail, err := f.service.GetPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Empty(t, detail.Comments[0].Replies)
}
