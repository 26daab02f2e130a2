package http

import (
	"babygpt/internal/model"
)

// --- Request DTOs ---

type createUserReq struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
}

type updatePlanReq struct {
	Content string `json:"content" binding:"required"`
}

// --- Response DTOs ---

type createUserResp struct {
	Username string `json:"username"`
	Greeting string `json:"greeting"`
}

type historyResp struct {
	Username string          `json:"username"`
	Messages []model.Message `json:"messages"`
}

type planResp struct {
	Username    string `json:"username"`
	Content     string `json:"content"`
	LastUpdated string `json:"last_updated,omitempty"`
}

func newPlanResp(username string, p model.Plan) planResp {
	return planResp{
		Username:    username,
		Content:     p.Content,
		LastUpdated: p.LastUpdated,
	}
}
