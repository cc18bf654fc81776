package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartGoal(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantStart Cell
		wantGoal  Cell
	}{
		{
			name:      "16x16 centered goal floors to (7,7)",
			cfg:       Config{Width: 16, Height: 16, GoalInCenter: true},
			wantStart: Cell{X: 0, Y: 0},
			wantGoal:  Cell{X: 7, Y: 7},
		},
		{
			name:      "16x16 corner goal",
			cfg:       Config{Width: 16, Height: 16, GoalInCenter: false},
			wantStart: Cell{X: 0, Y: 0},
			wantGoal:  Cell{X: 15, Y: 15},
		},
		{
			name:      "5x5 centered goal",
			cfg:       Config{Width: 5, Height: 5, GoalInCenter: true},
			wantStart: Cell{X: 0, Y: 0},
			wantGoal:  Cell{X: 2, Y: 2},
		},
		{
			name:      "non-square corner goal",
			cfg:       Config{Width: 9, Height: 4, GoalInCenter: false},
			wantStart: Cell{X: 0, Y: 0},
			wantGoal:  Cell{X: 8, Y: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, goal := StartGoal(tt.cfg)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantGoal, goal)
		})
	}
}
