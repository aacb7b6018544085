// Package kernel holds the value objects shared by every aggregate of the
// courier domain:
//   - UUID: identifiers that can never be the nil UUID
//   - Coordinates: validated latitude/longitude pairs
//   - DistanceKm and CalculateRouteMetrics: the great-circle geometry used for
//     route planning and travel time estimates
//
// Everything here is immutable and has no dependencies beyond the errs and
// guard helpers.
package kernel
