package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/lib/pq"
)

// Listener bridges Postgres LISTEN/NOTIFY into a Hub.
type Listener struct {
	pq      *pq.Listener
	hub     *Hub
	channel string
}

func NewListener(dsn, channel string, minReconnect, maxReconnect time.Duration, hub *Hub) (*Listener, error) {
	log := logger.Log.With("component", "listener")
	l := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			log.Info("connected", "channel", channel)
		case pq.ListenerEventDisconnected:
			log.Warn("disconnected", "error", err)
		case pq.ListenerEventReconnected:
			log.Info("reconnected")
		case pq.ListenerEventConnectionAttemptFailed:
			log.Warn("connection attempt failed", "error", err)
		}
	})
	if err := l.Listen(channel); err != nil {
		l.Close()
		return nil, fmt.Errorf("listen %s: %w", channel, err)
	}
	return &Listener{pq: l, hub: hub, channel: channel}, nil
}

// Run dispatches notifications until ctx is done.
func (l *Listener) Run(ctx context.Context) {
	log := logger.Log.With("component", "listener")
	log.Info("started", "channel", l.channel)
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down gracefully")
			return
		case n, ok := <-l.pq.Notify:
			if !ok {
				return
			}
			if n == nil {
				// reconnected: anything may have changed meanwhile
				l.hub.Broadcast(domain.ChangeEvent{Op: OpResync})
				continue
			}
			l.dispatch(n.Extra)
		}
	}
}

func (l *Listener) dispatch(payload string) {
	events, err := Events(payload)
	if err != nil {
		logger.Log.Error("bad notification payload", "component", "listener", "error", err)
		return
	}
	for _, ev := range events {
		l.hub.Publish(ev)
	}
}

// Ping checks the listener connection; pq reconnects on failure.
func (l *Listener) Ping() error {
	return l.pq.Ping()
}

func (l *Listener) Close() error {
	return l.pq.Close()
}
