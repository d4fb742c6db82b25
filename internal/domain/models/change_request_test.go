package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[RequestStatus][]RequestStatus{
		RequestStatusPending:  {RequestStatusApproved, RequestStatusRolledBack},
		RequestStatusApproved: {RequestStatusDeployed},
	}
	for _, from := range AllRequestStatuses {
		for _, to := range AllRequestStatuses {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			require.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestParseEnums(t *testing.T) {
	ut, ok := ParseUserType("ADMIN")
	require.True(t, ok)
	require.Equal(t, UserTypeAdmin, ut)

	_, ok = ParseUserType("owner")
	require.False(t, ok)

	st, ok := ParseRequestStatus(" RolledBack ")
	require.True(t, ok)
	require.Equal(t, RequestStatusRolledBack, st)

	rt, ok := ParseRequestType("bug_fix")
	require.True(t, ok)
	require.Equal(t, RequestTypeBugFix, rt)

	_, ok = ParseUserStatus("banned")
	require.False(t, ok)
}

func TestUserReport_Add(t *testing.T) {
	var r UserReport
	r.Add(RequestStatusPending, 2)
	r.Add(RequestStatusDeployed, 1)
	require.Equal(t, 3, r.Total)
	require.Equal(t, 2, r.Pending)
	require.Equal(t, 1, r.Deployed)
}
