package handler

import (
	replyDto "anoa.com/forumapi/internal/modules/reply/dto"
	reply "anoa.com/forumapi/internal/modules/reply/service"
	"anoa.com/forumapi/pkg/payload"
	"anoa.com/forumapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	addReply    *reply.AddReplyUseCase
	deleteReply *reply.DeleteReplyUseCase
}

func NewReplyHandler(addReply *reply.AddReplyUseCase, deleteReply *reply.DeleteReplyUseCase) *ReplyHandler {
	return &ReplyHandler{addReply: addReply, deleteReply: deleteReply}
}

func (h *ReplyHandler) PostReply(c *gin.Context) {
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

	addedReply, err := h.addReply.Execute(c.Request.Context(), body, replyDto.ReplyParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}, userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, gin.H{"addedReply": addedReply})
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.deleteReply.Execute(c.Request.Context(), replyDto.ReplyRef{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		ReplyID:   c.Param("replyId"),
	}, userID); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, nil)
}
