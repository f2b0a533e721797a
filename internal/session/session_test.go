package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhaseCountingDown(t *testing.T) {
	assert.False(t, Idle.CountingDown())
	assert.True(t, Working.CountingDown())
	assert.True(t, OnBreak.CountingDown())
	assert.False(t, Alerting.CountingDown())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Alerting", Alerting.String())
	assert.Equal(t, "Unknown", Phase(42).String())
}

func TestKindPhase(t *testing.T) {
	assert.Equal(t, Working, Work.Phase())
	assert.Equal(t, OnBreak, ShortBreak.Phase())
	assert.Equal(t, OnBreak, LongBreak.Phase())
	assert.False(t, Work.IsBreak())
}

func TestSnapshotElapsed(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{"idle", Snapshot{Phase: Idle, Remaining: 10, Duration: 20}, 0},
		{"alerting", Snapshot{Phase: Alerting}, 1},
		{"halfway", Snapshot{Phase: Working, Remaining: 750, Duration: 1500}, 0.5},
		{"zero duration", Snapshot{Phase: OnBreak}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.snap.Elapsed(), 1e-9)
		})
	}
}

func TestSnapshotEndTime(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s := &Session{StartTime: start, Duration: 1500, Phase: Working}

	assert.Equal(t, start.Add(25*time.Minute), s.Snapshot(4).EndTime())
	assert.Equal(t, 4, s.Snapshot(4).LongBreakInterval)
}
