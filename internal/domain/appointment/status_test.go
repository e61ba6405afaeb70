package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPending, StatusPending, true},

		{StatusPending, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusPending, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s → %s", tc.from, tc.to)
		} else {
			assert.True(t, httperr.IsValidation(err), "%s → %s", tc.from, tc.to)
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	err := CanTransition(StatusPending, Status("whatever"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancelCompletedFails(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Cancel(ap, time.Now())

	assert.True(t, httperr.IsValidation(err))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}
