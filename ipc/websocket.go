package ipc

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Harnesses are local tools, not browsers.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsTransport carries one envelope per websocket text message.
type wsTransport struct {
	conn *websocket.Conn
	mu   sync.Mutex // serializes writers
}

func NewWebsocketTransport(conn *websocket.Conn) Transport {
	conn.SetReadLimit(MaxMessageSize)
	return &wsTransport{conn: conn}
}

func (t *wsTransport) ReadEnvelope() (Envelope, error) {
	var env Envelope
	if err := t.conn.ReadJSON(&env); err != nil {
		return Envelope{}, fmt.Errorf("read websocket message: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("websocket message without type")
	}
	return env, nil
}

func (t *wsTransport) WriteEnvelope(env Envelope) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := t.conn.WriteJSON(env); err != nil {
		return fmt.Errorf("write websocket message: %w", err)
	}
	return nil
}

func (t *wsTransport) Close() error {
	t.mu.Lock()
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	t.mu.Unlock()
	return t.conn.Close()
}

func (t *wsTransport) RemoteAddr() string {
	return t.conn.RemoteAddr().String()
}

// WebsocketHandler upgrades each request and hands the transport to onConn,
// which runs on the request goroutine and owns the transport from then on.
func WebsocketHandler(onConn func(Transport)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		slog.Info("websocket client connected", "remote", r.RemoteAddr)
		onConn(NewWebsocketTransport(conn))
	})
}
