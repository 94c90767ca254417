package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"breeze/internal/breath"
)

func TestEnvelopeGainShape(t *testing.T) {
	e := &envelope{total: 1000, attack: 100}

	assert.Equal(t, 0.0, e.gain(0))
	assert.InDelta(t, 0.5, e.gain(50), 1e-9)
	assert.InDelta(t, 1.0, e.gain(100), 1e-9)
	assert.InDelta(t, 0.5, e.gain(550), 1e-9)
	assert.InDelta(t, 0.0, e.gain(1000), 1e-9)
	assert.Equal(t, 0.0, e.gain(2000), "past the end stays silent")
}

func TestEnvelopeGainDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, (&envelope{}).gain(0))
	assert.Equal(t, 1.0, (&envelope{total: 10, attack: 10}).gain(10), "no decay span means full gain")
}

func TestEnvelopeStreamAppliesGain(t *testing.T) {
	e := &envelope{src: constStreamer{}, total: 100, attack: 0}

	buf := make([][2]float64, 10)
	n, ok := e.Stream(buf)
	assert.Equal(t, 10, n)
	assert.True(t, ok)

	// Decay only: each sample strictly quieter than the one before.
	for i := 1; i < n; i++ {
		assert.Less(t, buf[i][0], buf[i-1][0])
		assert.Equal(t, buf[i][0], buf[i][1], "both channels shaped identically")
	}
}

func TestChimeFreqPerPhase(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range []breath.Phase{breath.PhaseInhale, breath.PhaseHold, breath.PhaseExhale, breath.PhaseRest} {
		f := chimeFreq(p)
		assert.Greater(t, f, 0)
		seen[f] = true
	}
	assert.Len(t, seen, 4, "every phase has its own pitch")
}

// constStreamer emits a constant full-scale signal.
type constStreamer struct{}

func (constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }
