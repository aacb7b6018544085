// Package services holds the domain logic that works across several records:
// RouteOptimizer sequences a courier's stops and StatsAggregator sums up the
// courier's completed work. Both are pure and do no I/O.
package services
