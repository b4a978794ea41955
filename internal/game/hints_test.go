package game

import (
	"fmt"
	"testing"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestHint(t *testing.T) {
	tests := []struct {
		total    int
		upcard   string
		expected Action
	}{
		{8, "Th", ActionHit},
		{11, "2c", ActionHit},
		{12, "3h", ActionHit},
		{12, "4h", ActionStand},
		{12, "6d", ActionStand},
		{12, "7s", ActionHit},
		{13, "2c", ActionStand},
		{16, "6d", ActionStand},
		{16, "7s", ActionHit},
		{16, "Ah", ActionHit},
		{17, "Ah", ActionStand},
		{20, "Th", ActionStand},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d vs %s", tt.total, tt.upcard), func(t *testing.T) {
			upcard := deck.MustParseCards(tt.upcard)[0]
			assert.Equal(t, tt.expected, Hint(tt.total, upcard))
		})
	}
}
