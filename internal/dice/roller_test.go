package dice_test

import (
	"testing"

	"github.com/KirkDiggler/thalassophobia/internal/dice"
	mockdice "github.com/KirkDiggler/thalassophobia/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRoll(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []float64
		chance   float64
		want     bool
		wantUsed int
	}{
		{name: "roll under chance succeeds", rolls: []float64{19.9}, chance: 20, want: true, wantUsed: 1},
		{name: "roll equal to chance fails", rolls: []float64{20}, chance: 20, want: false, wantUsed: 1},
		{name: "zero chance never rolls", rolls: []float64{0}, chance: 0, want: false, wantUsed: 0},
		{name: "certain chance never rolls", rolls: []float64{99}, chance: 100, want: true, wantUsed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller(tt.rolls...)

			got, err := dice.CheckRoll(roller, tt.chance)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUsed, roller.Used())
		})
	}
}

func TestCheckRoll_ExhaustedMock(t *testing.T) {
	_, err := dice.CheckRoll(mockdice.NewManualMockRoller(), 50)
	assert.Error(t, err)
}

func TestSeededRoller_Deterministic(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 10; i++ {
		ra, err := a.Percent()
		require.NoError(t, err)
		rb, err := b.Percent()
		require.NoError(t, err)

		assert.Equal(t, ra, rb)
		assert.GreaterOrEqual(t, ra, 0.0)
		assert.Less(t, ra, 100.0)
	}
}
