package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
	"babygpt/pkg/response"
)

// CreateUser godoc
// @Summary     Register a user and start their conversation
// @Description Activates a conversation session for the username and returns the assistant's opening greeting.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body createUserReq true "User data"
// @Success     200 {object} createUserResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - conversation already started"
// @Router      /api/v1/users [POST]
func (h *handler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{Username: req.Username}
	ch, err := h.uc.Start(ctx, sc)
	if err != nil {
		if errors.Is(err, conversation.ErrAlreadyStarted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, err, nil)
		return
	}

	// HTTP callers get the aggregated greeting; streaming goes over /ws/chat
	var sb strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			h.l.Errorf(ctx, "uc.Start stream: %v", chunk.Err)
		}
		sb.WriteString(chunk.Content)
	}

	response.OK(c, createUserResp{
		Username: req.Username,
		Greeting: sb.String(),
	})
}

// GetHistory godoc
// @Summary     Get conversation history
// @Description Returns the ordered message history for a username. Empty for unknown users.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       username path string true "Username"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/history/{username} [GET]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")
	sc := model.Scope{Username: username}

	messages, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, historyResp{
		Username: username,
		Messages: messages,
	})
}

// GetPlan godoc
// @Summary     Get the pregnancy plan
// @Description Returns the user's pregnancy plan document. Blank content if never written.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       username path string true "Username"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/{username} [GET]
func (h *handler) GetPlan(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")
	sc := model.Scope{Username: username}

	p, err := h.uc.Plan(ctx, sc)
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyUsername) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPlanResp(username, p))
}

// UpdatePlan godoc
// @Summary     Overwrite the pregnancy plan
// @Description Replaces the user's entire plan document and returns the stored snapshot.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       username path string        true "Username"
// @Param       body     body updatePlanReq true "Plan content"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/{username} [POST]
func (h *handler) UpdatePlan(c *gin.Context) {
	ctx := c.Request.Context()

	username := c.Param("username")

	var req updatePlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{Username: username}
	p, err := h.uc.UpdatePlan(ctx, sc, conversation.UpdatePlanInput{Content: req.Content})
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyUsername) || errors.Is(err, conversation.ErrEmptyPlan) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.UpdatePlan: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPlanResp(username, p))
}
