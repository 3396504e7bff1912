package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadows/nblb-console/internal/domain"
)

func TestOrderStatusShippable(t *testing.T) {
	assert.True(t, domain.StatusPaid.Shippable())
	assert.True(t, domain.StatusWaitingDelivery.Shippable())

	assert.False(t, domain.StatusPending.Shippable())
	assert.False(t, domain.StatusConfirmed.Shippable())
	assert.False(t, domain.StatusShipped.Shippable())
	assert.False(t, domain.StatusDelivered.Shippable())
	assert.False(t, domain.StatusCancelled.Shippable())
}

func TestOrderStatusBadge(t *testing.T) {
	cases := []struct {
		status domain.OrderStatus
		want   string
	}{
		{domain.StatusPending, "warning"},
		{domain.StatusConfirmed, "warning"},
		{domain.StatusPaid, "info"},
		{domain.StatusWaitingDelivery, "info"},
		{domain.StatusShipped, "success"},
		{domain.StatusDelivered, "success"},
		{domain.StatusCancelled, "danger"},
		{domain.OrderStatus("ALGO_RARO"), "secondary"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.status.Badge(), "badge de %s", tc.status)
	}
}
