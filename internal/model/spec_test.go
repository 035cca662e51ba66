package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutsWithDefaults(t *testing.T) {
	timeouts := Timeouts{Build: 10}.WithDefaults()

	assert.Equal(t, 10, timeouts.Build)
	assert.Equal(t, DefaultStudentTestsTimeout, timeouts.StudentTests)
	assert.Equal(t, DefaultInstructorTestsTimeout, timeouts.InstructorTests)
	assert.Equal(t, DefaultMutantsTimeout, timeouts.Mutants)
	assert.Equal(t, 10*time.Second, timeouts.BuildTimeout())
	assert.Equal(t, 30*time.Minute, timeouts.MutantsTimeout())
}

func TestInstructorTestsEnabled(t *testing.T) {
	disabled := false

	assert.True(t, BuildConfig{}.InstructorTestsEnabled())
	assert.False(t, BuildConfig{RunInstructorTests: &disabled}.InstructorTestsEnabled())
}

func TestTotalScore(t *testing.T) {
	units := []FeedbackUnit{
		{Score: 2.5, MaxScore: 5},
		{Score: 0, MaxScore: 0},
		{Score: 3, MaxScore: 3},
	}

	assert.InDelta(t, 5.5, TotalScore(units), 1e-9)
	assert.InDelta(t, 8, TotalMaxScore(units), 1e-9)
	assert.Zero(t, TotalScore(nil))
}
