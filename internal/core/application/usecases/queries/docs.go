// Package queries contains the read side of the courier core. Handlers read
// with raw SQL through GORM and return flat read models; the route and the
// stats are computed by the domain services from what was read.
package queries
