// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Flight lifecycle events
const (
	ShotFired      Type = "shot_fired"
	TargetReached  Type = "target_reached"
	ShotMissed     Type = "shot_missed"
	FlightTimedOut Type = "flight_timed_out"
	DartReset      Type = "dart_reset"
	ToastShown     Type = "toast_shown"
	ToastExpired   Type = "toast_expired"
)

// MissReason says what ended a flight without a hit
type MissReason string

const (
	MissWall    MissReason = "wall"
	MissCeiling MissReason = "ceiling"
	MissFloor   MissReason = "floor"
	MissTimeout MissReason = "timeout"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a registered handler
type SubscriptionID uint64

// Subscription is returned by Subscribe. Cancel removes the handler and is
// safe to call more than once.
type Subscription struct {
	ID     SubscriptionID
	Cancel func()
}

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.Unsubscribe(id) },
	}
}

// Unsubscribe removes the handler registered under id. It reports whether
// anything was removed.
func (b *Bus) Unsubscribe(id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, subs := range b.handlers {
		for i, s := range subs {
			if s.id != id {
				continue
			}
			rest := make([]subscription, 0, len(subs)-1)
			rest = append(rest, subs[:i]...)
			rest = append(rest, subs[i+1:]...)
			if len(rest) == 0 {
				delete(b.handlers, eventType)
			} else {
				b.handlers[eventType] = rest
			}
			return true
		}
	}
	return false
}

// Publish sends an event to all subscribed handlers. A nil bus drops the event.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// ShotEvent is published when a dart leaves the hand
type ShotEvent struct {
	BaseEvent
	FlightID string
	DragX    float64
	DragY    float64
	VX       float64
	VY       float64
}

// NewShotEvent creates a new shot event
func NewShotEvent(source interface{}, flightID string, dragX, dragY, vx, vy float64) *ShotEvent {
	return &ShotEvent{
		BaseEvent: BaseEvent{
			EventType: ShotFired,
			Source:    source,
		},
		FlightID: flightID,
		DragX:    dragX,
		DragY:    dragY,
		VX:       vx,
		VY:       vy,
	}
}

// TargetEvent contains information about a target hit
type TargetEvent struct {
	BaseEvent
	FlightID string
	TargetID string
	Label    string
}

// NewTargetEvent creates a new target event
func NewTargetEvent(source interface{}, flightID, targetID, label string) *TargetEvent {
	return &TargetEvent{
		BaseEvent: BaseEvent{
			EventType: TargetReached,
			Source:    source,
		},
		FlightID: flightID,
		TargetID: targetID,
		Label:    label,
	}
}

// MissEvent is published when a flight ends without a hit. Timeouts carry
// the FlightTimedOut type, everything else ShotMissed.
type MissEvent struct {
	BaseEvent
	FlightID string
	Reason   MissReason
	X        float64
	Y        float64
}

// NewMissEvent creates a new miss event
func NewMissEvent(source interface{}, flightID string, reason MissReason, x, y float64) *MissEvent {
	eventType := ShotMissed
	if reason == MissTimeout {
		eventType = FlightTimedOut
	}
	return &MissEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		FlightID: flightID,
		Reason:   reason,
		X:        x,
		Y:        y,
	}
}

// ResetEvent is published when the dart returns to rest
type ResetEvent struct {
	BaseEvent
	FlightID string
	X        float64
	Y        float64
}

// NewResetEvent creates a new reset event
func NewResetEvent(source interface{}, flightID string, x, y float64) *ResetEvent {
	return &ResetEvent{
		BaseEvent: BaseEvent{
			EventType: DartReset,
			Source:    source,
		},
		FlightID: flightID,
		X:        x,
		Y:        y,
	}
}

// ToastEvent covers a toast appearing or expiring
type ToastEvent struct {
	BaseEvent
	ToastID  string
	TargetID string
	Label    string
}

// NewToastEvent creates a new toast event of eventType
func NewToastEvent(eventType Type, source interface{}, toastID, targetID, label string) *ToastEvent {
	return &ToastEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ToastID:  toastID,
		TargetID: targetID,
		Label:    label,
	}
}
