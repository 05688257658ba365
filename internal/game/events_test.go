package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink records every snapshot passed to Emit, deep-copied already
// by GameState.Snapshot, so later mutation of live state cannot retroactively
// change what was recorded.
type recordingSink struct {
	snapshots []Snapshot
	tags      []EventTag
}

func (r *recordingSink) Emit(tag EventTag, snapshot Snapshot) {
	r.tags = append(r.tags, tag)
	r.snapshots = append(r.snapshots, snapshot)
}

func TestActionEventSeesHistoryAfterTheTriggeringAction(t *testing.T) {
	g := newTestState(t, []int{1000, 1000})
	sink := &recordingSink{}
	d := NewBettingRoundDriver(checkOrCallSource(), sink, nil)

	d.Run(g)

	require.NotEmpty(t, sink.snapshots)
	for i, tag := range sink.tags {
		if tag != EventAction {
			continue
		}
		require.NotEmpty(t, sink.snapshots[i].History,
			"action event's snapshot must already contain the action that triggered it")
	}
}

func TestNopEventSinkDiscardsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		NopEventSink{}.Emit(EventAction, Snapshot{})
	})
}
