// Package services contains stateless domain services.
//
// OfferCalculator prices open shipments for a courier position: it measures
// the pickup and delivery legs with the great-circle distance and applies the
// base fare plus per-kilometre rate. It also estimates the remaining travel
// time for shipments that are out for delivery.
package services
