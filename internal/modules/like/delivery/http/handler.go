package handler

import (
	likeDto "anoa.com/forumapi/internal/modules/like/dto"
	like "anoa.com/forumapi/internal/modules/like/service"
	"anoa.com/forumapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	addLike *like.AddLikeUseCase
}

func NewLikeHandler(addLike *like.AddLikeUseCase) *LikeHandler {
	return &LikeHandler{addLike: addLike}
}

// PutLike toggles the caller's like on a comment.
func (h *LikeHandler) PutLike(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.addLike.Execute(c.Request.Context(), likeDto.LikeParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}, userID); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nil)
}
