package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()

	var order []int
	d.Register(func(Event) { order = append(order, 1) })
	d.Register(func(Event) { order = append(order, 2) })
	d.Register(func(Event) { order = append(order, 3) })

	d.Emit(Event{Type: TypeAdd})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestDispatcherPassesThePayload(t *testing.T) {
	d := NewDispatcher()

	var got Event
	d.Register(func(ev Event) { got = ev })

	d.Emit(Event{Type: TypeGoldChange, Gold: 75})

	require.Equal(t, TypeGoldChange, got.Type)
	assert.Equal(t, 75, got.Gold)
}

func TestDispatcherIsolatesPanickingListener(t *testing.T) {
	d := NewDispatcher()

	d.Register(func(Event) { panic("boom") })

	reached := false
	d.Register(func(Event) { reached = true })

	assert.NotPanics(t, func() {
		d.Emit(Event{Type: TypeAdd})
	})
	assert.True(t, reached)
}

func TestDispatcherIgnoresNilListener(t *testing.T) {
	d := NewDispatcher()
	d.Register(nil)

	assert.NotPanics(t, func() {
		d.Emit(Event{Type: TypeAdd})
	})
}

func TestDispatcherEmitWithNoListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Emit(Event{Type: TypeRemove})
	})
}
