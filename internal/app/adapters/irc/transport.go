package irc

import (
	"bufio"
	"crypto/tls"
	"net"
	"strings"

	"github.com/gorilla/websocket"

	"ircadmin/internal/app/infrastructure/config"
)

// transport abstracts the wire so the same read loop serves plain TCP,
// TLS and IRC-over-WebSocket servers.
type transport interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	Close() error
}

func dial(cfg *config.IRC) (transport, error) {
	if cfg.Transport == "websocket" {
		scheme := "ws"
		if cfg.TLS {
			scheme = "wss"
		}

		ws, _, err := websocket.DefaultDialer.Dial(scheme+"://"+cfg.Server, nil)
		if err != nil {
			return nil, err
		}
		return &wsTransport{ws: ws}, nil
	}

	if cfg.TLS {
		conn, err := tls.Dial("tcp", cfg.Server, &tls.Config{MinVersion: tls.VersionTLS12})
		if err != nil {
			return nil, err
		}
		return &tcpTransport{conn: conn, reader: bufio.NewReader(conn)}, nil
	}

	conn, err := net.Dial("tcp", cfg.Server)
	if err != nil {
		return nil, err
	}
	return &tcpTransport{conn: conn, reader: bufio.NewReader(conn)}, nil
}

type tcpTransport struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (t *tcpTransport) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *tcpTransport) WriteLine(line string) error {
	_, err := t.conn.Write([]byte(line + "\r\n"))
	return err
}

func (t *tcpTransport) Close() error {
	return t.conn.Close()
}

type wsTransport struct {
	ws *websocket.Conn

	// IRC-over-WebSocket servers may batch several lines per frame.
	pending []string
}

func (t *wsTransport) ReadLine() (string, error) {
	for len(t.pending) == 0 {
		_, data, err := t.ws.ReadMessage()
		if err != nil {
			return "", err
		}

		for _, line := range strings.Split(string(data), "\r\n") {
			if line = strings.TrimSpace(line); line != "" {
				t.pending = append(t.pending, line)
			}
		}
	}

	line := t.pending[0]
	t.pending = t.pending[1:]
	return line, nil
}

func (t *wsTransport) WriteLine(line string) error {
	return t.ws.WriteMessage(websocket.TextMessage, []byte(line+"\r\n"))
}

func (t *wsTransport) Close() error {
	return t.ws.Close()
}
