// Package realtime fans database change notifications out to subscribers.
//
// Events carry no row data; a subscriber reacts to any event by refetching.
// A subscriber that falls behind loses events rather than blocking the hub.
package realtime

import (
	"sync"

	"github.com/Dharshana-KM/student-spark/shared/domain"
	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spark",
		Name:      "realtime_events_published_total",
		Help:      "Change events delivered to subscribers, by channel",
	}, []string{"channel"})

	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "spark",
		Name:      "realtime_events_dropped_total",
		Help:      "Change events dropped because a subscriber buffer was full",
	})

	subscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "spark",
		Name:      "realtime_subscribers",
		Help:      "Open realtime subscriptions",
	})
)

type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextId uint64
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{subs: make(map[uint64]*Subscription), buffer: buffer}
}

// Subscription receives the events of its channels until Close.
type Subscription struct {
	id       uint64
	hub      *Hub
	channels map[string]struct{}
	events   chan domain.ChangeEvent
	once     sync.Once
}

// Events is closed when the subscription is closed.
func (s *Subscription) Events() <-chan domain.ChangeEvent {
	return s.events
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		close(s.events)
		s.hub.mu.Unlock()
		subscribersGauge.Dec()
	})
}

func (s *Subscription) wants(channel string) bool {
	_, ok := s.channels[channel]
	return ok
}

func (h *Hub) Subscribe(channels ...string) *Subscription {
	set := make(map[string]struct{}, len(channels))
	for _, c := range channels {
		set[c] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextId++
	sub := &Subscription{
		id:       h.nextId,
		hub:      h,
		channels: set,
		events:   make(chan domain.ChangeEvent, h.buffer),
	}
	h.subs[sub.id] = sub
	subscribersGauge.Inc()
	return sub
}

// Publish delivers ev to the subscribers of ev.Channel and returns how many got it.
func (h *Hub) Publish(ev domain.ChangeEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, sub := range h.subs {
		if !sub.wants(ev.Channel) {
			continue
		}
		if h.send(sub, ev) {
			delivered++
		}
	}
	eventsPublished.WithLabelValues(ev.Channel).Add(float64(delivered))
	return delivered
}

// Broadcast delivers ev to every subscriber once, on each subscriber's first
// channel. Used after the notification stream was interrupted.
func (h *Hub) Broadcast(ev domain.ChangeEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, sub := range h.subs {
		for c := range sub.channels {
			ev.Channel = c
			break
		}
		if h.send(sub, ev) {
			delivered++
		}
	}
	return delivered
}

// send must be called with h.mu held.
func (h *Hub) send(sub *Subscription, ev domain.ChangeEvent) bool {
	select {
	case sub.events <- ev:
		return true
	default:
		eventsDropped.Inc()
		logger.Log.Debug("subscriber buffer full, event dropped", "component", "realtime", "channel", ev.Channel)
		return false
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close ends every open subscription. Connected clients receive a going-away close frame.
func (h *Hub) Close() {
	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		sub.Close()
	}
}
