package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistrationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    RegistrationStatus
		to      RegistrationStatus
		allowed bool
	}{
		{RegistrationStatusPending, RegistrationStatusConfirmed, true},
		{RegistrationStatusPending, RegistrationStatusRejected, true},
		{RegistrationStatusPending, RegistrationStatusWithdrawn, true},
		{RegistrationStatusConfirmed, RegistrationStatusWithdrawn, true},
		{RegistrationStatusConfirmed, RegistrationStatusPending, false},
		{RegistrationStatusConfirmed, RegistrationStatusRejected, false},
		{RegistrationStatusRejected, RegistrationStatusPending, false},
		{RegistrationStatusRejected, RegistrationStatusConfirmed, false},
		{RegistrationStatusWithdrawn, RegistrationStatusPending, false},
		{RegistrationStatusWithdrawn, RegistrationStatusConfirmed, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestRegistrationStatusIsTerminal(t *testing.T) {
	require.False(t, RegistrationStatusPending.IsTerminal())
	require.False(t, RegistrationStatusConfirmed.IsTerminal())
	require.True(t, RegistrationStatusRejected.IsTerminal())
	require.True(t, RegistrationStatusWithdrawn.IsTerminal())
}

func TestRegistrationStatusValid(t *testing.T) {
	require.True(t, RegistrationStatusPending.Valid())
	require.True(t, RegistrationStatusWithdrawn.Valid())
	require.False(t, RegistrationStatus("CANCELLED").Valid())
	require.False(t, RegistrationStatus("").Valid())
}
