// Package user models the read-only view of platform accounts used by the
// courier core: who a user is and whether they may drive deliveries.
package user
