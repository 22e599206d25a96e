package events

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventToss, Toss: 1})
	q.Push(GameEvent{Type: EventImpact, Toss: 1})
	q.Push(GameEvent{Type: EventRollResolved, Toss: 1})

	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	got := q.Consume()
	want := []EventType{EventToss, EventImpact, EventRollResolved}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("event %d: got %v, want %v", i, ev.Type, want[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained: %d", q.Len())
	}
	if q.Consume() != nil {
		t.Error("empty Consume should return nil")
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	audio := &recordingHandler{types: []EventType{EventToss, EventImpact}}
	stream := &recordingHandler{types: []EventType{EventToss, EventRollResolved, EventReset}}
	r.Register(audio)
	r.Register(stream)

	if r.HandlerCount(EventToss) != 2 {
		t.Errorf("HandlerCount(toss) = %d, want 2", r.HandlerCount(EventToss))
	}
	if r.HasHandlers(EventMatchEnd) {
		t.Error("no handler registered for match end")
	}

	q.Push(GameEvent{Type: EventToss})
	q.Push(GameEvent{Type: EventImpact})
	q.Push(GameEvent{Type: EventMatchEnd})
	q.Push(GameEvent{Type: EventReset})

	if n := r.DispatchAll(); n != 4 {
		t.Fatalf("DispatchAll = %d, want 4", n)
	}
	if len(audio.seen) != 2 || audio.seen[1] != EventImpact {
		t.Errorf("audio saw %v", audio.seen)
	}
	if len(stream.seen) != 2 || stream.seen[0] != EventToss || stream.seen[1] != EventReset {
		t.Errorf("stream saw %v", stream.seen)
	}
	if r.DispatchAll() != 0 {
		t.Error("second dispatch should find nothing")
	}
}

func TestHandlerFunc(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)
	count := 0
	r.Register(HandlerFunc{Types: []EventType{EventTurnEnd}, Func: func(GameEvent) { count++ }})

	q.Push(GameEvent{Type: EventTurnEnd})
	q.Push(GameEvent{Type: EventTurnEnd})
	r.DispatchAll()
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestEventTypeNames(t *testing.T) {
	for et := EventToss; et <= EventReset; et++ {
		name := et.String()
		if name == "unknown" {
			t.Errorf("type %d has no name", et)
		}
		back, ok := ParseEventType(name)
		if !ok || back != et {
			t.Errorf("ParseEventType(%q) = %v, %v", name, back, ok)
		}
	}
	if _, ok := ParseEventType("nope"); ok {
		t.Error("unknown name parsed")
	}
}

func TestGameEventJSON(t *testing.T) {
	ev := GameEvent{Type: EventImpact, Payload: &ImpactPayload{Pig: 1, Speed: 2.5}, Toss: 3}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"type":"impact"`) || !strings.Contains(s, `"pig":1`) {
		t.Errorf("unexpected json: %s", s)
	}
}

func TestGameEventJSONDecode(t *testing.T) {
	var ev GameEvent
	if err := json.Unmarshal([]byte(`{"type":"match_end","toss":7}`), &ev); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ev.Type != EventMatchEnd || ev.Toss != 7 {
		t.Errorf("decoded %+v", ev)
	}
	if err := json.Unmarshal([]byte(`{"type":"oink"}`), &ev); err == nil {
		t.Error("expected error for unknown event type")
	}
}
