package apiclient

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/Dharshana-KM/student-spark/shared/utils"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/realtime", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{domain.ChannelPosts, domain.ChannelComments}, r.URL.Query()["channel"])
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		conn.WriteJSON(domain.ChangeEvent{Channel: domain.ChannelPosts, Table: "posts", Op: "INSERT", Id: "p1"})
		conn.WriteJSON(domain.ChangeEvent{Channel: domain.ChannelComments, Table: "comments", Op: "DELETE", Id: "c1"})
	})
	c := newServer(t, mux)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	events, err := c.Subscribe(ctx, domain.ChannelPosts, domain.ChannelComments)
	require.NoError(t, err)

	var got []domain.ChangeEvent
	for ev := range events {
		got = append(got, ev)
	}

	require.Len(t, got, 2, "stream closes after the server hangs up")
	assert.Equal(t, "p1", got[0].Id)
	assert.Equal(t, "DELETE", got[1].Op)
}

func TestSubscribe_CancelClosesStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/realtime", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		// hold the connection open until the client leaves
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	c := newServer(t, mux)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := c.Subscribe(ctx, domain.ChannelPosts)
	require.NoError(t, err)

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("stream stayed open after cancel")
	}
}

func TestSubscribe_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/realtime", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusForbidden, utils.ErrorBody{Error: "Only team members can access the team chat"})
	})
	c := newServer(t, mux)

	_, err := c.Subscribe(context.Background(), domain.TeamMessagesChannel("t1"))

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, errors.StatusCode(err))
	assert.Equal(t, "Only team members can access the team chat", err.Error())
}
