package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleReviewer.IsValid())
	assert.True(t, RoleStaff.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("instructor").IsValid())

	assert.True(t, RoleAdmin.IsPrivileged())
	assert.True(t, RoleStaff.IsPrivileged())
	assert.False(t, RoleUser.IsPrivileged())
	assert.False(t, RoleReviewer.IsPrivileged())
}

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusApproved))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusDenied))

	assert.False(t, RequestStatusApproved.CanTransitionTo(RequestStatusDenied))
	assert.False(t, RequestStatusDenied.CanTransitionTo(RequestStatusApproved))
	assert.False(t, RequestStatusApproved.CanTransitionTo(RequestStatusPending))
	assert.False(t, RequestStatusNone.CanTransitionTo(RequestStatusApproved))
	assert.False(t, RequestStatusPending.CanTransitionTo(RequestStatusPending))
}

func TestFlaggedUser(t *testing.T) {
	u := User{Username: "spam", Rating: FlaggedRating}
	assert.True(t, u.IsFlagged())

	u.Rating = 0
	assert.False(t, u.IsFlagged())
}
