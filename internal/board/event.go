package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"Sketchpad/internal/state"
)

// EventType names a host input.
type EventType string

const (
	EventDown    EventType = "down"
	EventMove    EventType = "move"
	EventUp      EventType = "up"
	EventLeave   EventType = "leave"
	EventUndo    EventType = "undo"
	EventRedo    EventType = "redo"
	EventClear   EventType = "clear"
	EventBrush   EventType = "brush"
	EventColor   EventType = "color"
	EventSticker EventType = "sticker"
)

// Event is a normalized input from a host: a pointer sample in canvas
// pixels or a tool-bar action.
type Event struct {
	Type  EventType `json:"type"`
	X     float64   `json:"x,omitempty"`
	Y     float64   `json:"y,omitempty"`
	Brush string    `json:"brush,omitempty"`
	Color string    `json:"color,omitempty"`
	Glyph string    `json:"glyph,omitempty"`
}

func (e Event) Point() state.Point { return state.Point{X: e.X, Y: e.Y} }

// Apply dispatches ev. Errors describe bad host input; the board is left
// unchanged when one is returned.
func (b *Board) Apply(ev Event) error {
	switch ev.Type {
	case EventDown:
		b.PointerDown(ev.Point())
	case EventMove:
		b.PointerMove(ev.Point())
	case EventUp:
		b.PointerUp()
	case EventLeave:
		b.PointerLeave()
	case EventUndo:
		b.Undo()
	case EventRedo:
		b.Redo()
	case EventClear:
		b.Clear()
	case EventBrush:
		if !b.SelectBrushID(ev.Brush) {
			return fmt.Errorf("unknown brush %q", ev.Brush)
		}
	case EventColor:
		c, err := state.ParseColor(ev.Color)
		if err != nil {
			return err
		}
		b.SetStrokeColor(c)
	case EventSticker:
		if _, ok := b.AddSticker(ev.Glyph); !ok {
			return errors.New("empty sticker glyph")
		}
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// ReadEvents decodes a JSON array of events.
func ReadEvents(r io.Reader) ([]Event, error) {
	var events []Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// Replay applies events in order and stops at the first bad one.
func (b *Board) Replay(events []Event) error {
	for i, ev := range events {
		if err := b.Apply(ev); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.Type, err)
		}
	}
	return nil
}
