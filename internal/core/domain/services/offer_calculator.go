package services

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
)

// Pricing and routing constants for offer computation.
const (
	// BaseFare is the fixed part of a courier's earning for any shipment.
	BaseFare = 20.0
	// PerKmRate is the earning per kilometre of total route distance.
	PerKmRate = 2.5
	// AverageSpeedKmh is the assumed courier travel speed used for
	// estimated time of arrival while a shipment is out for delivery.
	AverageSpeedKmh = 40.0
)

// Offer is a shipment presented to a courier together with the route
// distances and the earning the courier would collect for delivering it.
type Offer struct {
	Shipment         *shipment.Shipment
	DistanceToPickup float64
	TotalDistance    float64
	EstimatedEarning float64
}

// OfferCalculator is a domain service that prices shipments for couriers.
//
// Business rules:
//   - The total distance is the pickup point to the delivery point measured
//     with the great-circle distance; the courier's approach leg is reported
//     separately and does not enter the price.
//   - The earning is BaseFare plus PerKmRate per kilometre of total distance.
//   - Pricing is purely positional, the shipment's measure does not enter
//     the formula.
type OfferCalculator struct{}

// NewOfferCalculator creates a new OfferCalculator instance.
func NewOfferCalculator() OfferCalculator {
	return OfferCalculator{}
}

// Calculate prices a single shipment for a courier standing at the given
// position.
func (o OfferCalculator) Calculate(s *shipment.Shipment, courierLocation kernel.Location) (Offer, error) {
	if err := s.Validate(); err != nil {
		return Offer{}, err
	}

	toPickup, err := courierLocation.DistanceTo(s.PickupLocation())
	if err != nil {
		return Offer{}, err
	}
	total, err := s.PickupLocation().DistanceTo(s.DeliveryLocation())
	if err != nil {
		return Offer{}, err
	}

	return Offer{
		Shipment:         s,
		DistanceToPickup: toPickup,
		TotalDistance:    total,
		EstimatedEarning: o.Earning(total),
	}, nil
}

// CalculateAll prices every shipment in the slice for the same courier
// position. The input order is preserved.
func (o OfferCalculator) CalculateAll(shipments []*shipment.Shipment, courierLocation kernel.Location) ([]Offer, error) {
	offers := make([]Offer, 0, len(shipments))
	for _, s := range shipments {
		offer, err := o.Calculate(s, courierLocation)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// Earning returns the courier's payout for a route of the given total length.
func (o OfferCalculator) Earning(totalDistanceKm float64) float64 {
	return BaseFare + PerKmRate*totalDistanceKm
}

// EstimatedMinutesRemaining returns the estimated minutes until delivery for
// a courier at the given position heading to the delivery point, assuming
// travel at AverageSpeedKmh.
func (o OfferCalculator) EstimatedMinutesRemaining(courierLocation, deliveryLocation kernel.Location) (float64, error) {
	distance, err := courierLocation.DistanceTo(deliveryLocation)
	if err != nil {
		return 0, err
	}
	return distance / AverageSpeedKmh * 60.0, nil
}
