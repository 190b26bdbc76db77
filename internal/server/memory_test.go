package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"anoa.com/forumapi/internal/entity"
	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	likeDto "anoa.com/forumapi/internal/modules/like/dto"
	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	threadDto "anoa.com/forumapi/internal/modules/thread/dto"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/dto"
)

// memoryStore backs every repository interface with maps so the router can be
// exercised end to end without postgres.
type memoryStore struct {
	mu    sync.Mutex
	seq   int
	clock time.Time

	users    map[string]*entity.User
	tokens   map[string]bool
	threads  map[string]*entity.Thread
	comments []*entity.Comment
	replies  []*entity.Reply
	likes    map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:   map[string]*entity.User{},
		tokens:  map[string]bool{},
		threads: map[string]*entity.Thread{},
		likes:   map[string]bool{},
	}
}

func (s *memoryStore) repositories() Repositories {
	return Repositories{
		Threads:  memThreads{s},
		Comments: memComments{s},
		Replies:  memReplies{s},
		Likes:    memLikes{s},
		Users:    memUsers{s},
		Auths:    memAuths{s},
	}
}

func (s *memoryStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memoryStore) username(id string) string {
	if u, ok := s.users[id]; ok {
		return u.Username
	}
	return ""
}

func (s *memoryStore) comment(id string) *entity.Comment {
	for _, c := range s.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *memoryStore) reply(id string) *entity.Reply {
	for _, r := range s.replies {
		if r.ID == id {
			return r
		}
	}
	return nil
}

type memUsers struct{ s *memoryStore }

func (m memUsers) VerifyAvailableUsername(_ context.Context, username string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Username == username {
			return apperror.BadRequest("username tidak tersedia")
		}
	}
	return nil
}

func (m memUsers) Create(_ context.Context, user *entity.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	user.ID = m.s.nextID("user")
	user.CreatedAt = m.s.tick()
	cp := *user
	m.s.users[user.ID] = &cp
	return nil
}

func (m memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.BadRequest("username tidak ditemukan")
}

func (m memUsers) FindByID(_ context.Context, id string) (*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperror.NotFound("user tidak ditemukan")
}

type memAuths struct{ s *memoryStore }

func (m memAuths) AddToken(_ context.Context, token string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.tokens[token] = true
	return nil
}

func (m memAuths) CheckAvailabilityToken(_ context.Context, token string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if !m.s.tokens[token] {
		return apperror.BadRequest("refresh token tidak ditemukan di database")
	}
	return nil
}

func (m memAuths) DeleteToken(_ context.Context, token string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.tokens, token)
	return nil
}

type memThreads struct{ s *memoryStore }

func (m memThreads) AddThread(_ context.Context, t threadDto.AddThread) (threadDto.AddedThread, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	row := &entity.Thread{ID: m.s.nextID("thread"), Title: t.Title, Body: t.Body, Owner: t.Owner, Date: m.s.tick()}
	m.s.threads[row.ID] = row
	return threadDto.AddedThread{ID: row.ID, Title: row.Title, Owner: row.Owner}, nil
}

func (m memThreads) ValidateThreadAvailability(_ context.Context, threadID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.threads[threadID]; !ok {
		return apperror.NotFound("thread tidak ditemukan")
	}
	return nil
}

func (m memThreads) GetThreadByID(_ context.Context, threadID string) (*threadDto.DetailThread, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	t, ok := m.s.threads[threadID]
	if !ok {
		return nil, apperror.NotFound("thread tidak ditemukan")
	}
	return &threadDto.DetailThread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     dto.FormatDate(t.Date),
		Username: m.s.username(t.Owner),
		Comments: []commentDto.CommentWithReplies{},
	}, nil
}

type memComments struct{ s *memoryStore }

func (m memComments) AddComment(_ context.Context, c commentDto.AddComment) (commentDto.AddedComment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	row := &entity.Comment{ID: m.s.nextID("comment"), Content: c.Content, Owner: c.Owner, ThreadID: c.ThreadID, Date: m.s.tick()}
	m.s.comments = append(m.s.comments, row)
	return commentDto.AddedComment{ID: row.ID, Content: row.Content, Owner: row.Owner}, nil
}

func (m memComments) VerifyCommentAvailability(_ context.Context, ref commentDto.CommentRef) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c := m.s.comment(ref.CommentID)
	if c == nil || c.ThreadID != ref.ThreadID || c.IsDeleted {
		return apperror.NotFound("comment tidak ditemukan")
	}
	return nil
}

func (m memComments) ValidateCommentOwner(_ context.Context, owner commentDto.CommentOwner) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c := m.s.comment(owner.CommentID)
	if c == nil || c.Owner != owner.Owner {
		return apperror.Forbidden("anda tidak memiliki akses terhadap comment ini")
	}
	return nil
}

func (m memComments) DeleteComment(_ context.Context, commentID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c := m.s.comment(commentID)
	if c == nil {
		return apperror.Invariant("gagal menghapus comment")
	}
	c.IsDeleted = true
	return nil
}

func (m memComments) GetCommentsByThreadID(_ context.Context, threadID string) ([]commentDto.CommentRow, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	rows := []commentDto.CommentRow{}
	for _, c := range m.s.comments {
		if c.ThreadID != threadID {
			continue
		}
		rows = append(rows, commentDto.CommentRow{
			ID:        c.ID,
			Username:  m.s.username(c.Owner),
			Date:      dto.FormatDate(c.Date),
			Content:   c.Content,
			IsDeleted: c.IsDeleted,
		})
	}
	return rows, nil
}

type memReplies struct{ s *memoryStore }

func (m memReplies) AddReply(_ context.Context, r replyDto.AddReply) (replyDto.AddedReply, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	row := &entity.Reply{ID: m.s.nextID("reply"), Content: r.Content, Owner: r.Owner, CommentID: r.CommentID, Date: m.s.tick()}
	m.s.replies = append(m.s.replies, row)
	return replyDto.AddedReply{ID: row.ID, Content: row.Content, Owner: row.Owner}, nil
}

func (m memReplies) VerifyReplyAvailability(_ context.Context, ref replyDto.ReplyRef) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r := m.s.reply(ref.ReplyID)
	if r == nil || r.IsDeleted || r.CommentID != ref.CommentID {
		return apperror.NotFound("balasan tidak ditemukan")
	}
	if c := m.s.comment(r.CommentID); c == nil || c.ThreadID != ref.ThreadID {
		return apperror.NotFound("balasan tidak ditemukan")
	}
	return nil
}

func (m memReplies) VerifyReplyOwner(_ context.Context, owner replyDto.ReplyOwner) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r := m.s.reply(owner.ReplyID)
	if r == nil || r.Owner != owner.Owner {
		return apperror.Forbidden("anda tidak memiliki akses terhadap balasan ini")
	}
	return nil
}

func (m memReplies) DeleteReplyByID(_ context.Context, replyID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r := m.s.reply(replyID)
	if r == nil {
		return apperror.Invariant("gagal menghapus balasan")
	}
	r.IsDeleted = true
	return nil
}

func (m memReplies) GetRepliesByThreadID(_ context.Context, threadID string) ([]replyDto.ReplyRow, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	rows := []replyDto.ReplyRow{}
	for _, r := range m.s.replies {
		c := m.s.comment(r.CommentID)
		if c == nil || c.ThreadID != threadID {
			continue
		}
		rows = append(rows, replyDto.ReplyRow{
			ID:        r.ID,
			Content:   r.Content,
			Date:      dto.FormatDate(r.Date),
			Username:  m.s.username(r.Owner),
			CommentID: r.CommentID,
			IsDeleted: r.IsDeleted,
		})
	}
	return rows, nil
}

type memLikes struct{ s *memoryStore }

func likeKey(l likeDto.AddLike) string { return l.CommentID + "/" + l.Owner }

func (m memLikes) VerifyLikeComment(_ context.Context, l likeDto.AddLike) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.s.likes[likeKey(l)], nil
}

func (m memLikes) LikeComment(_ context.Context, l likeDto.AddLike) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.likes[likeKey(l)] = true
	return nil
}

func (m memLikes) UnlikeComment(_ context.Context, l likeDto.AddLike) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.likes, likeKey(l))
	return nil
}

func (m memLikes) GetLikeCountByCommentID(_ context.Context, commentID string) (int, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n := 0
	for k := range m.s.likes {
		if len(k) > len(commentID) && k[:len(commentID)+1] == commentID+"/" {
			n++
		}
	}
	return n, nil
}
