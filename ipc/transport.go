package ipc

import "net"

// Transport moves envelopes between the engine and one harness instance.
type Transport interface {
	ReadEnvelope() (Envelope, error)
	WriteEnvelope(env Envelope) error
	Close() error
	RemoteAddr() string
}

// streamTransport frames envelopes over a byte stream such as a unix socket.
type streamTransport struct {
	conn net.Conn
}

func NewStreamTransport(conn net.Conn) Transport {
	return &streamTransport{conn: conn}
}

func (t *streamTransport) ReadEnvelope() (Envelope, error) {
	return ReadEnvelope(t.conn)
}

func (t *streamTransport) WriteEnvelope(env Envelope) error {
	return WriteEnvelope(t.conn, env)
}

func (t *streamTransport) Close() error {
	return t.conn.Close()
}

func (t *streamTransport) RemoteAddr() string {
	if addr := t.conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}
