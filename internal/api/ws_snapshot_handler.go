package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-moment/internal/publish"
)

var snapshotUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /ws/snapshot
//
// Streams every newly published snapshot to the connected client. The
// current snapshot is sent immediately on connect so a client never
// starts blank, then the handler forwards the publish channel until
// the client goes away.
func WSSnapshotHandler(pub *publish.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := snapshotUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Snapshot upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		ctx := c.Request.Context()

		if snap, err := pub.Latest(ctx); err == nil && snap != nil {
			if raw, err := json.Marshal(snap); err == nil {
				if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
					return
				}
			}
		}

		sub := pub.Subscribe(ctx)
		defer sub.Close()

		// Drain client frames so close frames are processed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					return
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}
