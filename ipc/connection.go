package ipc

import (
	"fmt"
	"log/slog"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection represents a single harness instance talking to the engine.
// Each player gets its own connection, identified after the hello handshake.
type Connection struct {
	transport Transport
	handlers  map[string]Handler
	Player    string
}

func NewConnection(t Transport, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		transport: t,
		handlers:  handlers,
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

func (c *Connection) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	return c.transport.WriteEnvelope(env)
}

// ReadLoop blocks until the connection closes or errors. It owns the transport
// lifetime so callers don't need to track cleanup.
func (c *Connection) ReadLoop() {
	defer c.transport.Close()

	for {
		env, err := c.transport.ReadEnvelope()
		if err != nil {
			slog.Info("connection read ended", "player", c.Player, "remote", c.transport.RemoteAddr(), "error", err)
			return
		}

		handler, ok := c.handlers[env.Type]
		if !ok {
			slog.Warn("no handler for message type", "type", env.Type)
			continue
		}

		resp, err := safeHandle(handler, env)
		if err != nil {
			slog.Error("handler error", "type", env.Type, "error", err)
			if sendErr := c.Send(TypeError, ErrorMessage{Type: env.Type, Message: err.Error()}); sendErr != nil {
				slog.Error("failed to send error", "type", env.Type, "error", sendErr)
				return
			}
			continue
		}

		if resp != nil {
			if err := c.transport.WriteEnvelope(*resp); err != nil {
				slog.Error("failed to send response", "type", resp.Type, "error", err)
				return
			}
			slog.Debug("sent response", "type", resp.Type, "player", c.Player)
		}
	}
}

// safeHandle turns a handler panic into an error so one bad message cannot
// take the process down with every other connection.
func safeHandle(h Handler, env Envelope) (resp *Envelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("handler panic", "type", env.Type, "panic", r)
			resp, err = nil, fmt.Errorf("internal error handling %s", env.Type)
		}
	}()
	return h(env)
}
