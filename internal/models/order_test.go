package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		cur  string
		next string
		want bool
	}{
		{"pending_to_approved", OrderStatusPending, OrderStatusApproved, true},
		{"approved_to_on_the_way", OrderStatusApproved, OrderStatusOnTheWay, true},
		{"pending_to_on_the_way", OrderStatusPending, OrderStatusOnTheWay, true},
		{"reapply_approved", OrderStatusApproved, OrderStatusApproved, true},
		{"reapply_on_the_way", OrderStatusOnTheWay, OrderStatusOnTheWay, true},
		{"on_the_way_back_to_approved", OrderStatusOnTheWay, OrderStatusApproved, false},
		{"approved_back_to_pending", OrderStatusApproved, OrderStatusPending, false},
		{"unknown_current", "shipped", OrderStatusApproved, false},
		{"unknown_target", OrderStatusPending, "shipped", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.cur, tt.next))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(OrderStatusPending))
	assert.True(t, ValidStatus(OrderStatusApproved))
	assert.True(t, ValidStatus(OrderStatusOnTheWay))
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleMember.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}
