package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeUnits(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		buy      int
		free     int
		want     int
	}{
		{name: "below threshold", quantity: 2, buy: 3, free: 1, want: 0},
		{name: "exactly one set", quantity: 3, buy: 3, free: 1, want: 1},
		{name: "buy 3 get 1 with 7", quantity: 7, buy: 3, free: 1, want: 2},
		{name: "buy 2 get 1 with 10", quantity: 10, buy: 2, free: 1, want: 5},
		{name: "zero quantity", quantity: 0, buy: 3, free: 1, want: 0},
		{name: "capped at quantity", quantity: 4, buy: 1, free: 2, want: 4},
		{name: "free equals buy", quantity: 6, buy: 2, free: 2, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FreeUnits(tt.quantity, tt.buy, tt.free))
		})
	}
}

func TestFreeUnits_MalformedRule(t *testing.T) {
	assert.Equal(t, 0, FreeUnits(10, 0, 1))
	assert.Equal(t, 0, FreeUnits(10, -3, 1))
	assert.Equal(t, 0, FreeUnits(10, 3, 0))
	assert.Equal(t, 0, FreeUnits(10, 3, -1))
}

// Free units can never exceed the purchased quantity, and no units are
// free below the buy threshold, whatever the rule says.
func TestFreeUnits_Invariants(t *testing.T) {
	for quantity := 0; quantity <= 50; quantity++ {
		for buy := 1; buy <= 10; buy++ {
			for free := 1; free <= 10; free++ {
				got := FreeUnits(quantity, buy, free)
				assert.LessOrEqual(t, got, quantity, "q=%d buy=%d free=%d", quantity, buy, free)
				assert.GreaterOrEqual(t, got, 0, "q=%d buy=%d free=%d", quantity, buy, free)
				if quantity < buy {
					assert.Zero(t, got, "q=%d buy=%d free=%d", quantity, buy, free)
				}
			}
		}
	}
}
