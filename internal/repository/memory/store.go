// Package memory 提供仓储接口的内存实现，供各层单元测试使用
package memory

import (
	"Inkwell/internal/model"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Store 同时实现 UserRepo、PostRepo、CommentRepo、LikeRepo
type Store struct {
	mu       sync.Mutex
	now      time.Time
	seq      map[string]uint64
	users    map[uint64]*model.User
	posts    map[uint64]*model.Post
	comments map[uint64]*model.Comment
	likes    map[uint64]*model.Like

	// Err 非空时所有写操作返回该错误
	Err error
	// ReadErr 非空时帖子、评论、点赞的读操作返回该错误，GetUserById 不受影响
	ReadErr error
}

func NewStore() *Store {
	return &Store{
		now:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		seq:      map[string]uint64{},
		users:    map[uint64]*model.User{},
		posts:    map[uint64]*model.Post{},
		comments: map[uint64]*model.Comment{},
		likes:    map[uint64]*model.Like{},
	}
}

// tick 每次写入推进一秒，保证创建时间严格递增
func (s *Store) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *Store) next(table string) uint64 {
	s.seq[table]++
	return s.seq[table]
}

// AddUser 直接写入用户
func (s *Store) AddUser(id uint64, nickname string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &model.User{ID: id, Nickname: nickname, CreatedAt: s.tick()}
	u.UpdatedAt = u.CreatedAt
	s.users[id] = u
	return u
}

// PostCount 返回帖子总数
func (s *Store) PostCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// LikeCount 返回某帖子的点赞行数
func (s *Store) LikeCount(postID uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLikes(postID)
}

func (s *Store) countLikes(postID uint64) int {
	n := 0
	for _, l := range s.likes {
		if l.PostID == postID {
			n++
		}
	}
	return n
}

func (s *Store) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *Store) CreatePost(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	post.ID = s.next("posts")
	post.CreatedAt = s.tick()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (s *Store) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) GetPostList(_ context.Context) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (s *Store) GetLikedPosts(_ context.Context, userID uint64) ([]*model.LikedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	liked := make([]*model.LikedPost, 0)
	for _, l := range s.likes {
		if l.UserID != userID {
			continue
		}
		p, ok := s.posts[l.PostID]
		if !ok {
			continue
		}
		liked = append(liked, &model.LikedPost{
			PostID:    p.ID,
			UserID:    p.UserID,
			Nickname:  p.Nickname,
			Title:     p.Title,
			CreatedAt: p.CreatedAt,
			Likes:     int64(s.countLikes(p.ID)),
		})
	}
	sort.Slice(liked, func(i, j int) bool {
		if liked[i].Likes != liked[j].Likes {
			return liked[i].Likes > liked[j].Likes
		}
		return liked[i].CreatedAt.After(liked[j].CreatedAt)
	})
	return liked, nil
}

func (s *Store) UpdatePostContent(_ context.Context, postID, userID uint64, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	p, ok := s.posts[postID]
	if !ok || p.UserID != userID {
		return nil
	}
	p.Title, p.Content, p.UpdatedAt = title, content, s.tick()
	return nil
}

func (s *Store) UpdateLikesCount(_ context.Context, postID uint64, count int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if p, ok := s.posts[postID]; ok {
		p.LikesCount = count
	}
	return nil
}

func (s *Store) DeletePost(_ context.Context, postID, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	p, ok := s.posts[postID]
	if !ok || p.UserID != userID {
		return 0, nil
	}
	delete(s.posts, postID)
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}
	for id, l := range s.likes {
		if l.PostID == postID {
			delete(s.likes, id)
		}
	}
	return 1, nil
}

func (s *Store) CreateComment(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.posts[comment.PostID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	comment.ID = s.next("comments")
	comment.CreatedAt = s.tick()
	comment.UpdatedAt = comment.CreatedAt
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func (s *Store) GetCommentByID(_ context.Context, commentID uint64) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	c, ok := s.comments[commentID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *Store) GetCommentsByPostID(_ context.Context, postID uint64) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	comments := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			cp := *c
			comments = append(comments, &cp)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
	return comments, nil
}

func (s *Store) UpdateCommentContent(_ context.Context, commentID, userID uint64, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	c, ok := s.comments[commentID]
	if !ok || c.UserID != userID {
		return nil
	}
	c.Content, c.UpdatedAt = content, s.tick()
	return nil
}

func (s *Store) DeleteComment(_ context.Context, commentID, userID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	c, ok := s.comments[commentID]
	if !ok || c.UserID != userID {
		return 0, nil
	}
	delete(s.comments, commentID)
	return 1, nil
}

func (s *Store) ToggleLike(_ context.Context, like *model.Like) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	if _, ok := s.posts[like.PostID]; !ok {
		return false, gorm.ErrRecordNotFound
	}
	for id, l := range s.likes {
		if l.UserID == like.UserID && l.PostID == like.PostID {
			delete(s.likes, id)
			return false, nil
		}
	}
	like.ID = s.next("likes")
	like.CreatedAt = s.tick()
	cp := *like
	s.likes[like.ID] = &cp
	return true, nil
}

func (s *Store) GetLikeCountByPostID(_ context.Context, postID uint64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return 0, s.ReadErr
	}
	return int64(s.countLikes(postID)), nil
}

// ErrInjected 测试中注入的存储错误
var ErrInjected = errors.New("injected storage failure")
