package domain

import "testing"

func TestValidStatusTransition(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tr := range allowed {
		if !ValidStatusTransition(tr[0], tr[1]) {
			t.Errorf("%s -> %s should be allowed", tr[0], tr[1])
		}
	}

	rejected := [][2]string{
		{OrderStatusPending, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusShipped},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusPending, OrderStatusPending},
		{OrderStatusDelivered, "cancelled"},
	}
	for _, tr := range rejected {
		if ValidStatusTransition(tr[0], tr[1]) {
			t.Errorf("%s -> %s should be rejected", tr[0], tr[1])
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered} {
		if !ValidOrderStatus(s) {
			t.Errorf("%q should be a valid status", s)
		}
	}
	for _, s := range []string{"", "cancelled", "PENDING"} {
		if ValidOrderStatus(s) {
			t.Errorf("%q should not be a valid status", s)
		}
	}
}

func TestProductUnitPrice(t *testing.T) {
	rentable := Product{PurchasePrice: 500, RentalPrice: 50}
	saleOnly := Product{PurchasePrice: 100}

	if got := rentable.UnitPrice(OrderTypeRental); got != 50 {
		t.Errorf("rentable rental price = %v, want 50", got)
	}
	if got := rentable.UnitPrice(OrderTypePurchase); got != 500 {
		t.Errorf("rentable purchase price = %v, want 500", got)
	}
	// sale-only products fall back to the purchase price
	if got := saleOnly.UnitPrice(OrderTypeRental); got != 100 {
		t.Errorf("sale-only rental price = %v, want 100", got)
	}

	if saleOnly.RentalAvailable() {
		t.Error("zero rental price should mean sale-only")
	}
	if !rentable.RentalAvailable() {
		t.Error("positive rental price should mean rentable")
	}
}
