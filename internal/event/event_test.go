package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name   string
	events []Event
	log    *[]string
	onCall func()
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	if r.onCall != nil {
		r.onCall()
	}
}

func TestDispatch_DeliversToSubscribersOfType(t *testing.T) {
	d := NewDispatcher()
	score := &recorder{}
	moved := &recorder{}
	d.Subscribe(ScoreChanged, score)
	d.Subscribe(TargetMoved, moved)

	d.Dispatch(Event{Type: ScoreChanged, Data: 3})

	require.Len(t, score.events, 1)
	assert.Equal(t, 3, score.events[0].Data)
	assert.Empty(t, moved.events)
}

func TestDispatch_SubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	a := &recorder{name: "a", log: &order}
	b := &recorder{name: "b", log: &order}
	d.Subscribe(ScoreChanged, a)
	d.Subscribe(ScoreChanged, b)

	d.Dispatch(Event{Type: ScoreChanged})

	assert.Equal(t, []string{"a", "b"}, order)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ScoreChanged, r)
	d.Unsubscribe(ScoreChanged, r)

	d.Dispatch(Event{Type: ScoreChanged})

	assert.Empty(t, r.events)
	assert.Equal(t, 0, d.Count(ScoreChanged))
}

func TestUnsubscribe_UnknownListenerIsNoop(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	other := &recorder{}
	d.Subscribe(ScoreChanged, r)

	d.Unsubscribe(ScoreChanged, other)
	d.Unsubscribe(GameStopped, r)

	assert.Equal(t, 1, d.Count(ScoreChanged))
}

func TestUnsubscribe_DuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var order []string
	second := &recorder{name: "second", log: &order}
	first := &recorder{name: "first", log: &order}
	first.onCall = func() { d.Unsubscribe(ScoreChanged, second) }
	d.Subscribe(ScoreChanged, first)
	d.Subscribe(ScoreChanged, second)

	require.NotPanics(t, func() { d.Dispatch(Event{Type: ScoreChanged}) })
	// the in-flight dispatch still sees its snapshot
	assert.Equal(t, []string{"first", "second"}, order)

	d.Dispatch(Event{Type: ScoreChanged})
	assert.Equal(t, []string{"first", "second", "first"}, order)
}
