package metrics

import (
	"math"
	"testing"

	"github.com/atrilhq/atril/internal/libreria"
)

func TestActiveCount(t *testing.T) {
	authors := []libreria.Author{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
	}
	got := ActiveCount(authors, func(a libreria.Author) bool { return a.Active })
	if got != 2 {
		t.Fatalf("ActiveCount = %d, want 2", got)
	}
	if got := ActiveCount(nil, func(a libreria.Author) bool { return a.Active }); got != 0 {
		t.Fatalf("ActiveCount(nil) = %d, want 0", got)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	memberships := []libreria.Membership{
		{
			ID:    1,
			Price: 9.99,
			Subscriptions: []libreria.Subscription{
				{ID: 1, Active: true},
				{ID: 2, Active: true},
				{ID: 3, Active: false},
			},
		},
		{
			ID:    2,
			Price: 19.99,
			Subscriptions: []libreria.Subscription{
				{ID: 4, Active: true},
			},
		},
		{ID: 3, Price: 49.99}, // no subscriptions on the wire
	}

	got := MonthlyRevenue(memberships)
	want := 9.99*2 + 19.99
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("MonthlyRevenue = %v, want %v", got, want)
	}

	if got := MonthlyRevenue(nil); got != 0 {
		t.Fatalf("MonthlyRevenue(nil) = %v, want 0", got)
	}
}

func TestSubscribersPerMembership(t *testing.T) {
	memberships := []libreria.Membership{
		{ID: 1, Subscriptions: []libreria.Subscription{{Active: true}, {Active: false}}},
		{ID: 2},
	}
	got := SubscribersPerMembership(memberships)
	if got[1] != 1 {
		t.Fatalf("plan 1 subscribers = %d, want 1", got[1])
	}
	if got[2] != 0 {
		t.Fatalf("plan 2 subscribers = %d, want 0 for missing slice", got[2])
	}
}

func TestOrderAggregates(t *testing.T) {
	orders := []libreria.Order{
		{ID: 1, Status: "pendiente", Total: 10.5},
		{ID: 2, Status: "enviado", Total: 20},
		{ID: 3, Status: "pendiente", Total: 5},
	}
	counts := CountByStatus(orders)
	if counts["pendiente"] != 2 || counts["enviado"] != 1 {
		t.Fatalf("CountByStatus = %v, want pendiente=2 enviado=1", counts)
	}
	if got := OrdersTotal(orders); math.Abs(got-35.5) > 1e-9 {
		t.Fatalf("OrdersTotal = %v, want 35.5", got)
	}
}
