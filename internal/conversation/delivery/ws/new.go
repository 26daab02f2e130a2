package ws

import (
	"github.com/gin-gonic/gin"

	"babygpt/internal/conversation"
	"babygpt/pkg/log"
)

// Handler is the public interface for the conversation WebSocket delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a new WebSocket handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
