package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

type queuedEvent struct {
	event    Event
	consumed bool
}

// EventQueue is the world's double-buffered event queue.
//
// Systems read the current frame's queue. Events emitted while systems run
// go to a pending buffer that becomes the next frame's queue; the current
// frame's events are retired at the frame boundary whether or not anything
// consumed them. A system that wants to hand an event to a later system of
// the same pass uses PushNow instead.
type EventQueue struct {
	frame       []*queuedEvent
	pending     []Event
	dispatching bool
}

// Push queues an event. Outside a frame it joins the queue the next Update
// will read; during a frame it is held until the frame ends.
func (q *EventQueue) Push(ev Event) {
	if ev == nil {
		return
	}
	if q.dispatching {
		q.pending = append(q.pending, ev)
		return
	}
	q.frame = append(q.frame, &queuedEvent{event: ev})
}

// PushNow appends an event to the queue currently being read, so systems
// later in the same pass see it.
func (q *EventQueue) PushNow(ev Event) {
	if ev == nil {
		return
	}
	q.frame = append(q.frame, &queuedEvent{event: ev})
}

// Each calls fn for every live event of the current frame, in order.
// Returning true consumes the event: later systems of this frame no longer
// see it.
func (q *EventQueue) Each(fn func(ev Event) (consume bool)) {
	n := len(q.frame)
	for i := 0; i < n; i++ {
		qe := q.frame[i]
		if qe.consumed {
			continue
		}
		if fn(qe.event) {
			qe.consumed = true
		}
	}
}

// Live returns the current frame's unconsumed events
func (q *EventQueue) Live() []Event {
	out := make([]Event, 0, len(q.frame))
	for _, qe := range q.frame {
		if !qe.consumed {
			out = append(out, qe.event)
		}
	}
	return out
}

// Len returns the number of unconsumed events in the current frame
func (q *EventQueue) Len() int {
	n := 0
	for _, qe := range q.frame {
		if !qe.consumed {
			n++
		}
	}
	return n
}

// Pending returns the number of events buffered for the next frame
func (q *EventQueue) Pending() int {
	return len(q.pending)
}

func (q *EventQueue) begin() {
	q.dispatching = true
}

// end retires the current frame and promotes the pending buffer.
func (q *EventQueue) end() {
	q.dispatching = false
	next := make([]*queuedEvent, 0, len(q.pending))
	for _, ev := range q.pending {
		next = append(next, &queuedEvent{event: ev})
	}
	q.frame = next
	q.pending = nil
}
