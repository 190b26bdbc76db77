package handler

import (
	threadDto "anoa.com/forumapi/internal/modules/thread/dto"
	thread "anoa.com/forumapi/internal/modules/thread/service"
	"anoa.com/forumapi/pkg/payload"
	"anoa.com/forumapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	addThread *thread.AddThreadUseCase
	getThread *thread.GetThreadUseCase
}

func NewThreadHandler(addThread *thread.AddThreadUseCase, getThread *thread.GetThreadUseCase) *ThreadHandler {
	return &ThreadHandler{addThread: addThread, getThread: getThread}
}

func (h *ThreadHandler) PostThread(c *gin.Context) {
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

	addedThread, err := h.addThread.Execute(c.Request.Context(), body, userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Created(c, gin.H{"addedThread": addedThread})
}

func (h *ThreadHandler) GetThreadByID(c *gin.Context) {
	detail, err := h.getThread.Execute(c.Request.Context(), threadDto.GetThreadParams{
		ThreadID: c.Param("threadId"),
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.OK(c, gin.H{"thread": detail})
}
