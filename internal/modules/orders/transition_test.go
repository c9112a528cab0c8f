package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from, action string
		want         string
		wantErr      bool
	}{
		{StatusPending, "pay", StatusPaid, false},
		{StatusPaid, "ship", StatusShipped, false},
		{StatusShipped, "deliver", StatusDelivered, false},
		{StatusPending, "cancel", StatusCancelled, false},
		{StatusPaid, "cancel", StatusCancelled, false},

		{StatusPending, "ship", "", true},
		{StatusShipped, "cancel", "", true},
		{StatusDelivered, "deliver", "", true},
		{StatusCancelled, "pay", "", true},
		{StatusPending, "teleport", "", true},
	}
	for _, tt := range tests {
		got, err := nextStatus(tt.from, tt.action)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s+%s", tt.from, tt.action)
			continue
		}
		assert.NoError(t, err, "%s+%s", tt.from, tt.action)
		assert.Equal(t, tt.want, got)
	}
}
