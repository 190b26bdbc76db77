package dto

import (
	"anoa.com/forumapi/pkg/payload"
)

const DeletedReplyContent = "**balasan telah dihapus**"

// AddReply is a reply about to be written under a comment.
type AddReply struct {
	Content   string
	Owner     string
	CommentID string
}

func NewAddReply(p map[string]any) (AddReply, error) {
	if err := payload.Verify("ADD_REPLY", p,
		payload.String("content"),
		payload.String("owner"),
		payload.String("commentId"),
	); err != nil {
		return AddReply{}, err
	}
	return AddReply{
		Content:   p["content"].(string),
		Owner:     p["owner"].(string),
		CommentID: p["commentId"].(string),
	}, nil
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(p map[string]any) (AddedReply, error) {
	if err := payload.Verify("ADDED_REPLY", p,
		payload.String("id"),
		payload.String("content"),
		payload.String("owner"),
	); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{
		ID:      p["id"].(string),
		Content: p["content"].(string),
		Owner:   p["owner"].(string),
	}, nil
}

// DetailReply is a reply as shown inside a thread. Deleted replies keep their
// place but their content is replaced.
type DetailReply struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Username  string `json:"username"`
	CommentID string `json:"commentId"`
}

func NewDetailReply(p map[string]any) (DetailReply, error) {
	if err := payload.Verify("DETAIL_REPLY", p,
		payload.String("id"),
		payload.String("content"),
		payload.String("date"),
		payload.String("username"),
		payload.String("commentId"),
		payload.Bool("isDeleted"),
	); err != nil {
		return DetailReply{}, err
	}
	return DetailReplyFromRow(ReplyRow{
		ID:        p["id"].(string),
		Content:   p["content"].(string),
		Date:      p["date"].(string),
		Username:  p["username"].(string),
		CommentID: p["commentId"].(string),
		IsDeleted: p["isDeleted"].(bool),
	}), nil
}

func DetailReplyFromRow(row ReplyRow) DetailReply {
	content := row.Content
	if row.IsDeleted {
		content = DeletedReplyContent
	}
	return DetailReply{
		ID:        row.ID,
		Content:   content,
		Date:      row.Date,
		Username:  row.Username,
		CommentID: row.CommentID,
	}
}

// ReplyRow is one reply of a thread as read from storage.
type ReplyRow struct {
	ID        string
	Content   string
	Date      string
	Username  string
	CommentID string
	IsDeleted bool
}

// ReplyRef locates a reply through its thread and comment.
type ReplyRef struct {
	ThreadID  string
	CommentID string
	ReplyID   string
}

type ReplyOwner struct {
	ReplyID string
	Owner   string
}

type ReplyParams struct {
	ThreadID  string
	CommentID string
}
