package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/redis/redistest"
	"Inkwell/internal/repository/memory"
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx      context.Context
	mr       *miniredis.Miniredis
	store    *memory.Store
	posts    PostService
	comments CommentService
	likes    LikeService
	owner    dto.AuthUser
	other    dto.AuthUser
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := redistest.Setup(t)
	store := memory.NewStore()
	store.AddUser(7, "u7")
	store.AddUser(8, "u8")
	likes := NewLikeService(store, store)
	return &fixture{
		ctx:      context.Background(),
		mr:       mr,
		store:    store,
		posts:    NewPostService(store, likes),
		comments: NewCommentService(store, store),
		likes:    likes,
		owner:    dto.AuthUser{UserID: 7, Nickname: "u7"},
		other:    dto.AuthUser{UserID: 8, Nickname: "u8"},
	}
}

func str(s string) *string { return &s }

func (f *fixture) createPost(t *testing.T, title string) uint64 {
	t.Helper()
	require.NoError(t, f.posts.CreatePost(f.ctx, f.owner, &dto.PostBaseDTO{Title: str(title), Content: str("body")}))
	list, err := f.posts.GetPostList(f.ctx)
	require.NoError(t, err)
	return list[0].ID
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture(t)

	err := f.posts.CreatePost(f.ctx, f.owner, &dto.PostBaseDTO{Title: str("   "), Content: str("c")})
	assert.ErrorIs(t, err, ErrPostTitleFormat)
	err = f.posts.CreatePost(f.ctx, f.owner, &dto.PostBaseDTO{Content: str("c")})
	assert.ErrorIs(t, err, ErrPostTitleFormat)
	err = f.posts.CreatePost(f.ctx, f.owner, &dto.PostBaseDTO{Title: str("t"), Content: str("\n")})
	assert.ErrorIs(t, err, ErrPostContentFormat)
	assert.Zero(t, f.store.PostCount())
}

func TestCreatePostStoresAuthor(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "Hello")

	post, err := f.posts.GetPost(f.ctx, id)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, uint64(7), post.UserID)
	assert.Equal(t, "u7", post.Nickname)
	assert.Equal(t, "Hello", post.Title)
}

func TestCreatePostStorageFailure(t *testing.T) {
	f := newFixture(t)
	f.store.Err = memory.ErrInjected

	err := f.posts.CreatePost(f.ctx, f.owner, &dto.PostBaseDTO{Title: str("t"), Content: str("c")})
	assert.ErrorIs(t, err, ErrPostCreateFailed)
}

func TestGetPostListOrderAndDates(t *testing.T) {
	f := newFixture(t)
	f.createPost(t, "first")
	f.createPost(t, "second")

	list, err := f.posts.GetPostList(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
	assert.Equal(t, "2024-01-01", list[0].Date)
	assert.Equal(t, "2024-01-01", list[0].Update)
}

func TestGetPostAbsent(t *testing.T) {
	f := newFixture(t)
	post, err := f.posts.GetPost(f.ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestUpdatePost(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "t")
	req := &dto.PostBaseDTO{Title: str("new"), Content: str("new body")}

	assert.ErrorIs(t, f.posts.UpdatePost(f.ctx, f.owner, id, &dto.PostBaseDTO{Content: str("x")}), ErrTitleFormat)
	assert.ErrorIs(t, f.posts.UpdatePost(f.ctx, f.owner, id, &dto.PostBaseDTO{Title: str("x")}), ErrContentFormat)
	assert.ErrorIs(t, f.posts.UpdatePost(f.ctx, f.owner, 999, req), ErrPostNotFound)
	assert.ErrorIs(t, f.posts.UpdatePost(f.ctx, f.other, id, req), ErrPostUpdateForbidden)

	require.NoError(t, f.posts.UpdatePost(f.ctx, f.owner, id, req))
	post, err := f.posts.GetPost(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "new body", post.Content)
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "t")

	assert.ErrorIs(t, f.posts.DeletePost(f.ctx, f.owner, 999), ErrPostDeleteNotFound)
	assert.ErrorIs(t, f.posts.DeletePost(f.ctx, f.other, id), ErrPostDeleteForbidden)
	assert.Equal(t, 1, f.store.PostCount())

	require.NoError(t, f.posts.DeletePost(f.ctx, f.owner, id))
	assert.Zero(t, f.store.PostCount())
}

func TestToggleLikeRoundTrip(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "t")
	key := consts.PostLikeKey + strconv.FormatUint(id, 10)

	count, err := f.likes.GetPostLikeCount(f.ctx, id)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, f.mr.Exists(key))

	liked, err := f.likes.ToggleLike(f.ctx, f.other, id)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.False(t, f.mr.Exists(key), "toggle must invalidate cached count")
	members, err := f.mr.Members(consts.PostLikeDirtyKey)
	require.NoError(t, err)
	assert.Contains(t, members, strconv.FormatUint(id, 10))

	post, err := f.posts.GetPost(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.LikesCount)

	// 列表与详情在定时同步之前也一致
	list, err := f.posts.GetPostList(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list[0].LikesCount)
	stored, err := f.store.GetPost(f.ctx, id)
	require.NoError(t, err)
	assert.Zero(t, stored.LikesCount)

	liked, err = f.likes.ToggleLike(f.ctx, f.other, id)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, f.store.LikeCount(id))
}

func TestSyncLikesCount(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "t")
	_, err := f.likes.ToggleLike(f.ctx, f.other, id)
	require.NoError(t, err)

	count, err := f.likes.SyncLikesCount(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := f.store.GetPost(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.LikesCount)

	cached, err := f.mr.Get(consts.PostLikeKey + strconv.FormatUint(id, 10))
	require.NoError(t, err)
	assert.Equal(t, "1", cached)
}

func TestToggleLikeMissingPost(t *testing.T) {
	f := newFixture(t)
	_, err := f.likes.ToggleLike(f.ctx, f.owner, 123)
	assert.ErrorIs(t, err, ErrLikePostNotFound)
}

func TestGetLikedPosts(t *testing.T) {
	f := newFixture(t)
	a := f.createPost(t, "a")
	b := f.createPost(t, "b")
	_, err := f.likes.ToggleLike(f.ctx, f.other, a)
	require.NoError(t, err)
	_, err = f.likes.ToggleLike(f.ctx, f.other, b)
	require.NoError(t, err)
	_, err = f.likes.ToggleLike(f.ctx, f.owner, a)
	require.NoError(t, err)

	list, err := f.posts.GetLikedPosts(f.ctx, f.other)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].PostID)
	assert.Equal(t, int64(2), list[0].Likes)
	assert.Equal(t, b, list[1].PostID)
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "t")

	assert.ErrorIs(t, f.comments.CreateComment(f.ctx, f.other, 999, &dto.CommentBaseDTO{}), ErrCommentPostNotFound)
	assert.ErrorIs(t, f.comments.CreateComment(f.ctx, f.other, 999, nil), ErrCommentPostNotFound)
	assert.ErrorIs(t, f.comments.CreateComment(f.ctx, f.other, id, nil), ErrDataFormat)
	assert.ErrorIs(t, f.comments.CreateComment(f.ctx, f.other, id, &dto.CommentBaseDTO{Content: str("")}), ErrCommentContentEmpty)

	require.NoError(t, f.comments.CreateComment(f.ctx, f.other, id, &dto.CommentBaseDTO{Content: str("first")}))
	require.NoError(t, f.comments.CreateComment(f.ctx, f.owner, id, &dto.CommentBaseDTO{Content: str("second")}))

	list, err := f.comments.GetComments(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)
	assert.Equal(t, id, list[1].PostID)
	assert.Equal(t, uint64(8), list[1].UserID)

	_, err = f.comments.GetComments(f.ctx, 999)
	assert.ErrorIs(t, err, ErrCommentPostNotFound)
}

func TestUpdateAndDeleteComment(t *testing.T) {
	f := newFixture(t)
	id := f.createPost(t, "t")
	other := f.createPost(t, "other")
	require.NoError(t, f.comments.CreateComment(f.ctx, f.other, id, &dto.CommentBaseDTO{Content: str("c")}))
	list, err := f.comments.GetComments(f.ctx, id)
	require.NoError(t, err)
	commentID := list[0].ID
	req := &dto.CommentBaseDTO{Content: str("edited")}

	assert.ErrorIs(t, f.comments.UpdateComment(f.ctx, f.other, id, commentID, &dto.CommentBaseDTO{}), ErrCommentContentEmpty)
	assert.ErrorIs(t, f.comments.UpdateComment(f.ctx, f.other, id, 999, req), ErrCommentNotFound)
	assert.ErrorIs(t, f.comments.UpdateComment(f.ctx, f.other, other, commentID, req), ErrCommentNotFound)
	assert.ErrorIs(t, f.comments.UpdateComment(f.ctx, f.owner, id, commentID, req), ErrCommentUpdateForbidden)
	require.NoError(t, f.comments.UpdateComment(f.ctx, f.other, id, commentID, req))

	list, err = f.comments.GetComments(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "edited", list[0].Content)

	assert.ErrorIs(t, f.comments.DeleteComment(f.ctx, f.owner, id, commentID), ErrCommentDeleteForbidden)
	require.NoError(t, f.comments.DeleteComment(f.ctx, f.other, id, commentID))
	assert.ErrorIs(t, f.comments.DeleteComment(f.ctx, f.other, id, commentID), ErrCommentNotFound)
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, isDuplicateError(&mysql.MySQLError{Number: 1062}))
	assert.False(t, isDuplicateError(&mysql.MySQLError{Number: 1452}))
	assert.False(t, isDuplicateError(memory.ErrInjected))
}
