// Package metrics computes read-only aggregates over cached collections for
// the overview screen. Every helper is a pure function and treats missing
// nested collections as empty.
package metrics

import "github.com/atrilhq/atril/internal/libreria"

// ActiveCount counts records whose active flag is set.
func ActiveCount[T any](items []T, active func(T) bool) int {
	if active == nil {
		return 0
	}
	count := 0
	for _, item := range items {
		if active(item) {
			count++
		}
	}
	return count
}

// CountByStatus buckets orders by their fulfillment status.
func CountByStatus(orders []libreria.Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// OrdersTotal sums the order totals of the given collection.
func OrdersTotal(orders []libreria.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.Total
	}
	return sum
}

// MonthlyRevenue sums membership price × active subscriptions across every
// plan. Plans without subscriptions contribute nothing.
func MonthlyRevenue(memberships []libreria.Membership) float64 {
	var total float64
	for _, m := range memberships {
		active := 0
		for _, sub := range m.Subscriptions {
			if sub.Active {
				active++
			}
		}
		total += m.Price * float64(active)
	}
	return total
}

// SubscribersPerMembership maps each plan id to its active subscriber count.
func SubscribersPerMembership(memberships []libreria.Membership) map[int64]int {
	counts := make(map[int64]int, len(memberships))
	for _, m := range memberships {
		active := 0
		for _, sub := range m.Subscriptions {
			if sub.Active {
				active++
			}
		}
		counts[m.ID] = active
	}
	return counts
}

// BenefitCount returns the number of benefits attached to a plan, treating
// the absent slice as empty.
func BenefitCount(m libreria.Membership) int {
	return len(m.Benefits)
}
