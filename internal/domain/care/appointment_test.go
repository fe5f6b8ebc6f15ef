package care

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppointmentTransitions(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDeclined, false},
		{StatusConfirmed, StatusPending, false},
		{StatusDeclined, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusPending, StatusPending, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentStatusHelpers(t *testing.T) {
	require.True(t, StatusPending.Active())
	require.True(t, StatusConfirmed.Active())
	require.False(t, StatusDeclined.Active())
	require.True(t, StatusDeclined.Terminal())
	require.True(t, StatusCancelled.Terminal())
	require.False(t, StatusPending.Terminal())

	st, ok := ParseAppointmentStatus("confirmed")
	require.True(t, ok)
	require.Equal(t, StatusConfirmed, st)
	_, ok = ParseAppointmentStatus("done")
	require.False(t, ok)
}
