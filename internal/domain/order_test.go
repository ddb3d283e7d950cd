package domain_test

import (
	"testing"

	"github.com/easy-order/go-backend/internal/domain"
	"github.com/easy-order/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems() []domain.OrderItem {
	return []domain.OrderItem{
		{ProductID: "p-1", Quantity: 2, Price: 1550},
		{ProductID: "p-2", Quantity: 1, Price: 1000},
	}
}

func TestNewOrder_Ok(t *testing.T) {
	order, err := domain.NewOrder("o-1", domain.OrderStatusOpen, makeItems())
	require.NoError(t, err)

	assert.Equal(t, "o-1", order.ID)
	assert.Equal(t, domain.OrderStatusOpen, order.Status)
	// 2*1550 + 1*1000
	assert.Equal(t, int64(4100), order.Total)
}

func TestNewOrder_DefaultStatusIsOpen(t *testing.T) {
	order, err := domain.NewOrder("o-1", "", makeItems())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusOpen, order.Status)
}

func TestNewOrder_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  domain.OrderStatus
		items   []domain.OrderItem
		wantErr error
	}{
		{
			name:    "no items",
			status:  domain.OrderStatusOpen,
			items:   nil,
			wantErr: e.ErrOrderItemsRequired,
		},
		{
			name:    "unknown status",
			status:  "SHIPPED",
			items:   makeItems(),
			wantErr: e.ErrUnknownOrderStatus,
		},
		{
			name:   "zero quantity",
			status: domain.OrderStatusOpen,
			items: []domain.OrderItem{
				{ProductID: "p-1", Quantity: 0, Price: 1550},
			},
			wantErr: e.ErrQuantityMustBePositive,
		},
		{
			name:   "negative item price",
			status: domain.OrderStatusOpen,
			items: []domain.OrderItem{
				{ProductID: "p-1", Quantity: 1, Price: -5},
			},
			wantErr: e.ErrItemPriceNegative,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewOrder("o-1", tc.status, tc.items)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestItemsTotal(t *testing.T) {
	assert.Equal(t, int64(0), domain.ItemsTotal(nil))
	assert.Equal(t, int64(4100), domain.ItemsTotal(makeItems()))
}

func TestOrderStatusIsUpdatable(t *testing.T) {
	cases := []struct {
		status domain.OrderStatus
		want   bool
	}{
		{domain.OrderStatusOpen, true},
		{domain.OrderStatusPending, true},
		{domain.OrderStatusDone, false},
		{domain.OrderStatusCanceled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.status.IsUpdatable(), "status %s", tc.status)
	}
}
