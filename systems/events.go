package systems

import (
	"dicewalk/ecs"
)

// Event type constants
const (
	EventMoveRequest      ecs.EventType = "move_request"
	EventMoveStarted      ecs.EventType = "move_started"
	EventMoveComplete     ecs.EventType = "move_complete"
	EventPlayerMoveIntent ecs.EventType = "player_move_intent"
	EventDamageDealt      ecs.EventType = "damage_dealt"
	EventDefeated         ecs.EventType = "defeated"
	EventTurnEnded        ecs.EventType = "turn_ended"
)

// MoveRequestEvent asks the movement pipeline to tumble an entity one tile
type MoveRequestEvent struct {
	Entity ecs.Entity
	DI, DJ int
}

// Type returns the event type
func (e MoveRequestEvent) Type() ecs.EventType {
	return EventMoveRequest
}

// MoveStartedEvent is emitted when a move request was accepted
type MoveStartedEvent struct {
	Entity       ecs.Entity
	FromI, FromJ int
	DI, DJ       int
}

// Type returns the event type
func (e MoveStartedEvent) Type() ecs.EventType {
	return EventMoveStarted
}

// MoveCompleteEvent is emitted when an entity lands on its new tile. It is
// queued by pointer so systems later in the frame can tag it in place.
type MoveCompleteEvent struct {
	Entity ecs.Entity
	I, J   int // landing tile
	DI, DJ int
	// Set once the die faces were rotated for this move
	OrientationDone bool
	// Set once the move's attacks were applied
	AttackResolved bool
}

// Type returns the event type
func (e *MoveCompleteEvent) Type() ecs.EventType {
	return EventMoveComplete
}

// PlayerMoveIntentEvent is a player move subject to turn gating. A zero
// Entity means the first player entity.
type PlayerMoveIntentEvent struct {
	Entity ecs.Entity
	DI, DJ int
}

// Type returns the event type
func (e PlayerMoveIntentEvent) Type() ecs.EventType {
	return EventPlayerMoveIntent
}

// DamageDealtEvent is emitted for every attack hit
type DamageDealtEvent struct {
	Attacker  ecs.Entity
	Target    ecs.Entity
	Amount    int
	Remaining int
	I, J      int
}

// Type returns the event type
func (e DamageDealtEvent) Type() ecs.EventType {
	return EventDamageDealt
}

// DefeatedEvent is emitted when an entity runs out of hit points
type DefeatedEvent struct {
	Entity   ecs.Entity
	KillerID ecs.Entity
	Player   bool
}

// Type returns the event type
func (e DefeatedEvent) Type() ecs.EventType {
	return EventDefeated
}

// TurnEndedEvent is emitted when every move of a turn has finished
type TurnEndedEvent struct {
	Turn int
}

// Type returns the event type
func (e TurnEndedEvent) Type() ecs.EventType {
	return EventTurnEnded
}
