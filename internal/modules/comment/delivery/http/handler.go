package handler

import (
	commentDto "anoa.com/forumapi/internal/modules/comment/dto"
	comment "anoa.com/forumapi/internal/modules/comment/service"
	"anoa.com/forumapi/pkg/payload"
	"anoa.com/forumapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	addComment    *comment.AddCommentUseCase
	deleteComment *comment.DeleteCommentUseCase
}

func NewCommentHandler(addComment *comment.AddCommentUseCase, deleteComment *comment.DeleteCommentUseCase) *CommentHandler {
	return &CommentHandler{addComment: addComment, deleteComment: deleteComment}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	body, err := payload.FromRequest(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	addedComment, err := h.addComment.Execute(c.Request.Context(), body, commentDto.CommentParams{
		ThreadID: c.Param("threadId"),
	}, userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, gin.H{"addedComment": addedComment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.deleteComment.Execute(c.Request.Context(), commentDto.CommentRef{
		CommentID: c.Param("commentId"),
		ThreadID:  c.Param("threadId"),
	}, userID); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nil)
}
