package dto

import (
	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/payload"
)

const DeletedCommentContent = "**komentar telah dihapus**"

const commentWithRepliesEntity = "COMMENT_WITH_REPLIES"

// AddComment is a comment about to be written on a thread.
type AddComment struct {
	Content  string
	Owner    string
	ThreadID string
}

func NewAddComment(p map[string]any) (AddComment, error) {
	if err := payload.Verify("ADD_COMMENT", p,
		payload.String("content"),
		payload.String("owner"),
		payload.String("threadId"),
	); err != nil {
		return AddComment{}, err
	}
	return AddComment{
		Content:  p["content"].(string),
		Owner:    p["owner"].(string),
		ThreadID: p["threadId"].(string),
	}, nil
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(p map[string]any) (AddedComment, error) {
	if err := payload.Verify("ADDED_COMMENT", p,
		payload.String("id"),
		payload.String("content"),
		payload.String("owner"),
	); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{
		ID:      p["id"].(string),
		Content: p["content"].(string),
		Owner:   p["owner"].(string),
	}, nil
}

// DetailComment is a comment as shown inside a thread. A deleted comment
// keeps its position with placeholder content.
type DetailComment struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

func NewDetailComment(p map[string]any) (DetailComment, error) {
	if err := payload.Verify("DETAIL_COMMENT", p,
		payload.String("id"),
		payload.String("username"),
		payload.String("date"),
		payload.String("content"),
		payload.Bool("isDeleted"),
	); err != nil {
		return DetailComment{}, err
	}
	return DetailCommentFromRow(CommentRow{
		ID:        p["id"].(string),
		Username:  p["username"].(string),
		Date:      p["date"].(string),
		Content:   p["content"].(string),
		IsDeleted: p["isDeleted"].(bool),
	}), nil
}

func DetailCommentFromRow(row CommentRow) DetailComment {
	content := row.Content
	if row.IsDeleted {
		content = DeletedCommentContent
	}
	return DetailComment{
		ID:       row.ID,
		Username: row.Username,
		Date:     row.Date,
		Content:  content,
	}
}

// ReplySummary is the part of a reply rendered under its comment.
type ReplySummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// CommentWithReplies is a comment together with its like count and replies.
type CommentWithReplies struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Date      string         `json:"date"`
	Content   string         `json:"content"`
	LikeCount int            `json:"likeCount"`
	Replies   []ReplySummary `json:"replies"`
}

func NewCommentWithReplies(comment DetailComment, replies []replyDto.DetailReply, likeCount int) CommentWithReplies {
	summaries := make([]ReplySummary, 0, len(replies))
	for _, r := range replies {
		summaries = append(summaries, ReplySummary{
			ID:       r.ID,
			Username: r.Username,
			Date:     r.Date,
			Content:  r.Content,
		})
	}
	return CommentWithReplies{
		ID:        comment.ID,
		Username:  comment.Username,
		Date:      comment.Date,
		Content:   comment.Content,
		LikeCount: likeCount,
		Replies:   summaries,
	}
}

// ParseCommentWithReplies builds a CommentWithReplies from a loosely typed payload
// of the form {comment, replies, likeCount}.
func ParseCommentWithReplies(p map[string]any) (CommentWithReplies, error) {
	if err := payload.Verify(commentWithRepliesEntity, p,
		payload.Object("comment"),
		payload.Sequence("replies"),
		payload.Number("likeCount"),
	); err != nil {
		return CommentWithReplies{}, err
	}

	comment, ok := toDetailComment(p["comment"])
	if !ok {
		return CommentWithReplies{}, typeError()
	}
	replies, ok := toDetailReplies(p["replies"])
	if !ok {
		return CommentWithReplies{}, typeError()
	}

	return NewCommentWithReplies(comment, replies, payload.Int(p["likeCount"])), nil
}

func typeError() error {
	return apperror.NewDomainError(commentWithRepliesEntity, apperror.ErrNotMeetDataTypeSpecification)
}

func toDetailComment(v any) (DetailComment, bool) {
	switch c := v.(type) {
	case DetailComment:
		return c, true
	case *DetailComment:
		return *c, true
	case map[string]any:
		fields, ok := stringFields(c, "id", "username", "date", "content")
		if !ok {
			return DetailComment{}, false
		}
		return DetailComment{ID: fields[0], Username: fields[1], Date: fields[2], Content: fields[3]}, true
	}
	return DetailComment{}, false
}

func toDetailReplies(v any) ([]replyDto.DetailReply, bool) {
	switch rs := v.(type) {
	case []replyDto.DetailReply:
		return rs, true
	case []any:
		out := make([]replyDto.DetailReply, 0, len(rs))
		for _, item := range rs {
			switch r := item.(type) {
			case replyDto.DetailReply:
				out = append(out, r)
			case map[string]any:
				fields, ok := stringFields(r, "id", "username", "date", "content")
				if !ok {
					return nil, false
				}
				out = append(out, replyDto.DetailReply{ID: fields[0], Username: fields[1], Date: fields[2], Content: fields[3]})
			default:
				return nil, false
			}
		}
		return out, true
	}
	return nil, false
}

func stringFields(m map[string]any, keys ...string) ([]string, bool) {
	out := make([]string, len(keys))
	for i, k := range keys {
		s, ok := m[k].(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// CommentRow is one comment of a thread as read from storage.
type CommentRow struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

// CommentRef locates a comment inside a thread.
type CommentRef struct {
	CommentID string
	ThreadID  string
}

type CommentOwner struct {
	CommentID string
	Owner     string
}

type CommentParams struct {
	ThreadID string
}
