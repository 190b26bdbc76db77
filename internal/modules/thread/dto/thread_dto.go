package dto

import (
	"unicode/utf8"

	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	"anoa.com/forumapi/pkg/apperror"
	"anoa.com/forumapi/pkg/payload"
)

const TitleMaxChars = 50

// AddThread is a thread about to be created.
type AddThread struct {
	Title string
	Body  string
	Owner string
}

func NewAddThread(p map[string]any) (AddThread, error) {
	if err := payload.Verify("ADD_THREAD", p,
		payload.String("title"),
		payload.String("body"),
		payload.String("owner"),
	); err != nil {
		return AddThread{}, err
	}

	title := p["title"].(string)
	if utf8.RuneCountInString(title) > TitleMaxChars {
		return AddThread{}, apperror.NewDomainError("ADD_THREAD", apperror.ErrTitleLimitChar)
	}

	return AddThread{
		Title: title,
		Body:  p["body"].(string),
		Owner: p["owner"].(string),
	}, nil
}

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(p map[string]any) (AddedThread, error) {
	if err := payload.Verify("ADDED_THREAD", p,
		payload.String("id"),
		payload.String("title"),
		payload.String("owner"),
	); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{
		ID:    p["id"].(string),
		Title: p["title"].(string),
		Owner: p["owner"].(string),
	}, nil
}

// DetailThread is a thread with its comments, as returned by GET /threads/{threadId}.
type DetailThread struct {
	ID       string                          `json:"id"`
	Title    string                          `json:"title"`
	Body     string                          `json:"body"`
	Date     string                          `json:"date"`
	Username string                          `json:"username"`
	Comments []commentDto.CommentWithReplies `json:"comments"`
}

func NewDetailThread(p map[string]any) (DetailThread, error) {
	if err := payload.Verify("DETAIL_THREAD", p,
		payload.String("id"),
		payload.String("title"),
		payload.String("body"),
		payload.String("date"),
		payload.String("username"),
		payload.Sequence("comments"),
	); err != nil {
		return DetailThread{}, err
	}

	comments, err := toComments(p["comments"])
	if err != nil {
		return DetailThread{}, err
	}

	return DetailThread{
		ID:       p["id"].(string),
		Title:    p["title"].(string),
		Body:     p["body"].(string),
		Date:     p["date"].(string),
		Username: p["username"].(string),
		Comments: comments,
	}, nil
}

func toComments(v any) ([]commentDto.CommentWithReplies, error) {
	switch cs := v.(type) {
	case []commentDto.CommentWithReplies:
		return cs, nil
	case []any:
		out := make([]commentDto.CommentWithReplies, 0, len(cs))
		for _, item := range cs {
			switch c := item.(type) {
			case commentDto.CommentWithReplies:
				out = append(out, c)
			case map[string]any:
				parsed, err := commentDto.ParseCommentWithReplies(c)
				if err != nil {
					return nil, err
				}
				out = append(out, parsed)
			default:
				return nil, apperror.NewDomainError("DETAIL_THREAD", apperror.ErrNotMeetDataTypeSpecification)
			}
		}
		return out, nil
	}
	return nil, apperror.NewDomainError("DETAIL_THREAD", apperror.ErrNotMeetDataTypeSpecification)
}

type GetThreadParams struct {
	ThreadID string
}
