// webterm-bridge bridges browser WebSocket connections to raw TCP byte
// streams, so embedded terminals can reach telnet BBSes directly.
//
// The browser side connects to ws://host/ws?target=bbs.example.org:23 and
// every binary message is relayed verbatim in both directions. When -target
// is given on the command line, the query parameter is ignored and all
// connections are pinned to that destination.
package main

import (
	"flag"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

const (
	connectTimeout = 15 * time.Second
	readBufSize    = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  readBufSize,
	WriteBufferSize: readBufSize,
	// The bridge is meant to be served same-origin or behind a proxy that
	// enforces origin policy.
	CheckOrigin: func(*http.Request) bool { return true },
}

type bridge struct {
	log    *slog.Logger
	target string // fixed destination; empty means per-connection ?target=
}

func main() {
	addr := flag.String("addr", "127.0.0.1:3000", "listen address")
	target := flag.String("target", "", "pin all connections to this host:port")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	b := &bridge{log: log, target: *target}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", b.handleWS)
	mux.Handle("/", http.FileServer(http.Dir("static")))

	log.Info("webterm bridge listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func (b *bridge) handleWS(w http.ResponseWriter, r *http.Request) {
	target := b.target
	if target == "" {
		target = r.URL.Query().Get("target")
	}
	if _, _, err := net.SplitHostPort(target); err != nil {
		http.Error(w, "missing or invalid target", http.StatusBadRequest)
		return
	}

	log := b.log.With("remote", r.RemoteAddr, "target", target)

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket upgrade failed", "error", err)
		return
	}
	defer ws.Close()

	conn, err := net.DialTimeout("tcp", target, connectTimeout)
	if err != nil {
		log.Error("tcp dial failed", "error", err)
		ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "dial failed"))
		return
	}
	defer conn.Close()

	log.Info("bridging connection")

	done := make(chan struct{}, 2)

	// TCP -> WebSocket
	go func() {
		defer func() { done <- struct{}{} }()
		buf := make([]byte, readBufSize)
		for {
			n, err := conn.Read(buf)
			if n > 0 {
				if werr := ws.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					log.Debug("tcp read ended", "error", err)
				}
				return
			}
		}
	}()

	// WebSocket -> TCP
	go func() {
		defer func() { done <- struct{}{} }()
		for {
			msgType, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Debug("websocket read ended", "error", err)
				}
				return
			}
			if msgType != websocket.BinaryMessage && msgType != websocket.TextMessage {
				continue
			}
			if _, err := conn.Write(data); err != nil {
				return
			}
		}
	}()

	// First side to drop tears down both.
	<-done
	log.Info("connection closed")
}
