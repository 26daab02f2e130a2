package http

import (
	"github.com/gin-gonic/gin"

	"babygpt/internal/conversation"
	"babygpt/pkg/log"
)

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	CreateUser(c *gin.Context)
	GetHistory(c *gin.Context)
	GetPlan(c *gin.Context)
	UpdatePlan(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
