package ws

import (
	"context"
	"encoding/json"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
)

// chatReq is a single inbound frame from the client.
type chatReq struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// chatFrame is an outbound frame. Type is "chunk", "done" or "error".
type chatFrame struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// Chat godoc
// @Summary     Streaming chat over WebSocket
// @Description Upgrades to a WebSocket. Each inbound frame is {"username","message"}; the assistant reply streams back as {"type":"chunk"} frames followed by {"type":"done"}.
// @Tags        Conversation
// @Router      /ws/chat [GET]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	ws, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.l.Warnf(ctx, "ws.Chat accept: %v", err)
		return
	}
	defer ws.Close(websocket.StatusNormalClosure, "chat ended")

	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				h.l.Warnf(ctx, "ws.Chat read: %v", err)
			}
			return
		}

		var req chatReq
		if err := json.Unmarshal(data, &req); err != nil {
			if err := h.writeFrame(ctx, ws, chatFrame{Type: "error", Content: "invalid message format"}); err != nil {
				return
			}
			continue
		}

		sc := model.Scope{Username: req.Username}
		ch, err := h.uc.Process(ctx, sc, conversation.ProcessInput{Content: req.Message})
		if err != nil {
			h.l.Errorf(ctx, "ws.Chat uc.Process: %v", err)
			if err := h.writeFrame(ctx, ws, chatFrame{Type: "error", Content: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := h.streamReply(ctx, ws, ch); err != nil {
			return
		}
	}
}

// streamReply forwards every chunk of one assistant turn to the client and
// terminates the turn with a done frame. A non-nil return means the socket
// is unusable and the connection loop should stop.
func (h *handler) streamReply(ctx context.Context, ws *websocket.Conn, ch <-chan conversation.Chunk) error {
	for chunk := range ch {
		frame := chatFrame{Type: "chunk", Content: chunk.Content}
		if chunk.Err != nil {
			frame.Type = "error"
		}
		if err := h.writeFrame(ctx, ws, frame); err != nil {
			// Drain so the producing goroutine can finish the turn.
			for range ch {
			}
			return err
		}
	}
	return h.writeFrame(ctx, ws, chatFrame{Type: "done"})
}

func (h *handler) writeFrame(ctx context.Context, ws *websocket.Conn, frame chatFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		h.l.Debugf(ctx, "ws.Chat write: %v", err)
		return err
	}
	return nil
}
