package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationCreatedEvent_HasRecipient(t *testing.T) {
	tests := []struct {
		name     string
		event    ReservationCreatedEvent
		expected bool
	}{
		{
			name: "with customer email",
			event: ReservationCreatedEvent{
				EventID:       uuid.New(),
				Code:          "CT-7K2M9QXA",
				CustomerEmail: "guest@example.com",
			},
			expected: true,
		},
		{
			name: "without customer email",
			event: ReservationCreatedEvent{
				EventID: uuid.New(),
				Code:    "CT-7K2M9QXA",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.HasRecipient())
		})
	}
}

func TestReservationCreatedEvent_JSONOmitsEmptyFlight(t *testing.T) {
	event := ReservationCreatedEvent{
		EventID:        uuid.New(),
		ReservationID:  12,
		Code:           "CT-7K2M9QXA",
		TransferType:   TransferTypePrivate,
		TransferDate:   time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC),
		PassengerCount: 3,
		TotalPrice:     85,
		Currency:       "EUR",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "flight_number")
	assert.Contains(t, string(data), `"transfer_type":"private"`)
}

func TestReservationStatus(t *testing.T) {
	assert.True(t, ReservationStatusPaid.Valid())
	assert.False(t, ReservationStatus("archived").Valid())
	assert.True(t, ReservationStatusCancelled.Final())
	assert.False(t, ReservationStatusPending.Final())
}

func TestSharedPriceTier_Covers(t *testing.T) {
	tier := SharedPriceTier{MinPassengers: 2, MaxPassengers: 4, PricePerPerson: 20}

	assert.False(t, tier.Covers(1))
	assert.True(t, tier.Covers(2))
	assert.True(t, tier.Covers(4))
	assert.False(t, tier.Covers(5))
}

func TestExpense_DetailsTotal(t *testing.T) {
	e := Expense{Details: []ExpenseDetail{{Amount: 10.10}, {Amount: 20.20}, {Amount: 0.01}}}
	assert.Equal(t, 30.31, e.DetailsTotal())
}
