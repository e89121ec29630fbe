package realtime

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/Dharshana-KM/student-spark/shared/logger"
	mw "github.com/Dharshana-KM/student-spark/shared/middleware"
	"github.com/Dharshana-KM/student-spark/shared/utils"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Authorizer decides whether user may follow channel. user is nil for anonymous callers.
type Authorizer interface {
	CanSubscribe(ctx context.Context, user *domain.User, channel string) error
}

// Handler serves GET /v1/realtime?channel=...&channel=...
type Handler struct {
	hub      *Hub
	authz    Authorizer
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, authz Authorizer, allowedOrigins []string) *Handler {
	return &Handler{
		hub:   hub,
		authz: authz,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin) || slices.Contains(allowedOrigins, "*")
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channels := r.URL.Query()["channel"]
	if len(channels) == 0 {
		utils.WriteErrorAndStatusCode(w, errors.Invalid("At least one channel is required"))
		return
	}
	user := mw.GetUserFromContext(r)
	for _, c := range channels {
		if !domain.ValidChannel(c) {
			utils.WriteErrorAndStatusCode(w, errors.Invalid("Unknown channel "+c))
			return
		}
		if err := h.authz.CanSubscribe(r.Context(), user, c); err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		logger.Log.Debug("websocket upgrade failed", "component", "realtime", "error", err)
		return
	}

	sub := h.hub.Subscribe(channels...)
	go h.serve(conn, sub)
}

// serve pumps events to conn until the peer goes away.
func (h *Handler) serve(conn *websocket.Conn, sub *Subscription) {
	defer sub.Close()
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			// clients never send data; reading drives pong and close handling
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return
		case ev, ok := <-sub.Events():
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
