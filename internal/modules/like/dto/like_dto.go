package dto

import "anoa.com/forumapi/pkg/payload"

// AddLike identifies one user's like on one comment.
type AddLike struct {
	CommentID string
	Owner     string
}

func NewAddLike(p map[string]any) (AddLike, error) {
	if err := payload.Verify("ADD_LIKE", p,
		payload.String("commentId"),
		payload.String("owner"),
	); err != nil {
		return AddLike{}, err
	}
	return AddLike{
		CommentID: p["commentId"].(string),
		Owner:     p["owner"].(string),
	}, nil
}

type LikeParams struct {
	ThreadID  string
	CommentID string
}
