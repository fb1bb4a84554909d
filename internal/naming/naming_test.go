package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Order", Capitalize("order"))
	assert.Equal(t, "OrderItem", Capitalize("orderItem"))
	assert.Equal(t, "Order", Capitalize("Order"))
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "createOrderCommandHandler", LowerFirst("CreateOrderCommandHandler"))
	assert.Equal(t, "", LowerFirst(""))
}

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"order":    "orders",
		"category": "categories",
		"box":      "boxes",
		"address":  "addresses",
		"batch":    "batches",
		"wish":     "wishes",
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Pluralize(in), "pluralize %q", in)
	}
}

func TestSuffixHelpers(t *testing.T) {
	assert.Equal(t, "CreateOrderCommand", WithSuffix("createOrder", "Command"))
	assert.Equal(t, "CreateOrderCommand", WithSuffix("CreateOrderCommand", "Command"))
	assert.Equal(t, "Order", WithoutSuffix("OrderController", "Controller"))
	assert.Equal(t, "Order", WithoutSuffix("order", "Controller"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "create_users_table", Slug("Create users-table"))
	assert.Equal(t, "order", Lower("ORDER"))
}
