package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/errors"
	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/gorilla/websocket"
)

// Subscribe opens a change stream for channels. The returned channel is
// closed when ctx is done or the connection drops; the caller then refetches
// and subscribes again.
func (c *Client) Subscribe(ctx context.Context, channels ...string) (<-chan domain.ChangeEvent, error) {
	target, err := c.realtimeURL(channels)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	if c.Token != "" {
		header.Set("Authorization", "Bearer "+c.Token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			return nil, responseError(resp)
		}
		return nil, &errors.TransportError{Op: "subscribe", Err: err}
	}

	events := make(chan domain.ChangeEvent)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	go func() {
		defer close(events)
		defer close(done)
		defer conn.Close()
		for {
			var ev domain.ChangeEvent
			if err := conn.ReadJSON(&ev); err != nil {
				if ctx.Err() == nil {
					logger.Log.Debug("change stream ended", "component", "apiclient", "error", err)
				}
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

func (c *Client) realtimeURL(channels []string) (string, error) {
	u, err := url.Parse(c.BaseURL + "/v1/realtime")
	if err != nil {
		return "", err
	}
	switch strings.ToLower(u.Scheme) {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.RawQuery = url.Values{"channel": channels}.Encode()
	return u.String(), nil
}
