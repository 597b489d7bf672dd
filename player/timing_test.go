package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepDuration(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(250*time.Millisecond, StepDuration(120))
	assert.Equal(500*time.Millisecond, StepDuration(60))
	assert.Equal(150*time.Millisecond, StepDuration(200))

	// Faster tempo, shorter step.
	assert.Less(StepDuration(180), StepDuration(90))
}

func TestSwingOffsetStraightensEvenSteps(t *testing.T) {
	assert := assert.New(t)

	for _, step := range []int{0, 2, 4, 6} {
		assert.Zero(SwingOffset(step, 120, 0.7), "step %d", step)
	}
}

func TestSwingOffsetPushesOddStepsLate(t *testing.T) {
	assert := assert.New(t)

	// Half swing at 120 BPM: 0.5 * (60/120)/2 = 125ms.
	assert.Equal(125*time.Millisecond, SwingOffset(1, 120, 0.5))
	assert.Equal(SwingOffset(1, 120, 0.5), SwingOffset(3, 120, 0.5))

	// No swing, no push.
	assert.Zero(SwingOffset(1, 120, 0))

	// More swing pushes later.
	assert.Greater(SwingOffset(1, 120, 0.8), SwingOffset(1, 120, 0.2))
}
