// Package delivery contains the Delivery aggregate: the record that binds a
// courier to an order, follows it through pickup and drop-off, tracks the
// courier's position and finally carries the customer's rating.
package delivery
