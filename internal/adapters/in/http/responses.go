package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// LocationPayload mirrors kernel.Location on the wire.
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OfferResponse is one entry of GET /api/v1/couriers/offers.
type OfferResponse struct {
	ShipmentID       string         `json:"shipmentId"`
	PickupAddress    AddressPayload `json:"pickupAddress"`
	DeliveryAddress  AddressPayload `json:"deliveryAddress"`
	Description      string         `json:"description"`
	DistanceToPickup float64        `json:"distanceToPickupKm"`
	TotalDistance    float64        `json:"totalDistanceKm"`
	EstimatedEarning float64        `json:"estimatedEarning"`
}

// TrackResponse is the public tracking view of GET /api/v1/track/:code.
type TrackResponse struct {
	Status           string          `json:"status"`
	CurrentLocation  LocationPayload `json:"currentLocation"`
	DeliveryAddress  AddressPayload  `json:"deliveryAddress"`
	CourierName      string          `json:"courierName,omitempty"`
	CourierPhone     string          `json:"courierPhone,omitempty"`
	DeliveredAt      *time.Time      `json:"deliveredAt,omitempty"`
	DeliveryNote     string          `json:"deliveryNote,omitempty"`
	EstimatedMinutes *float64        `json:"estimatedMinutes,omitempty"`
}

// ShipmentSummaryResponse is one entry of GET /api/v1/shipments.
type ShipmentSummaryResponse struct {
	ID               string         `json:"id"`
	Status           string         `json:"status"`
	PickupAddress    AddressPayload `json:"pickupAddress"`
	DeliveryAddress  AddressPayload `json:"deliveryAddress"`
	VerificationCode string         `json:"verificationCode"`
	CourierID        *string        `json:"courierId,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// ShipmentDetailResponse is the full shipment view of GET /api/v1/shipments/:id.
type ShipmentDetailResponse struct {
	ID               string          `json:"id"`
	Status           string          `json:"status"`
	Pickup           EndpointPayload `json:"pickup"`
	Delivery         EndpointPayload `json:"delivery"`
	Measure          MeasurePayload  `json:"measure"`
	RecipientPhone   string          `json:"recipientPhone"`
	Description      string          `json:"description"`
	VerificationCode string          `json:"verificationCode"`
	CourierID        *string         `json:"courierId,omitempty"`
	PickupTime       *time.Time      `json:"pickupTime,omitempty"`
	DeliveryTime     *time.Time      `json:"deliveryTime,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// DeliveredSummaryResponse is one recently delivered shipment on a dashboard.
type DeliveredSummaryResponse struct {
	ShipmentID      string         `json:"shipmentId"`
	DeliveryAddress AddressPayload `json:"deliveryAddress"`
	DeliveredAt     time.Time      `json:"deliveredAt"`
}

// CourierDashboardResponse is the body of GET /api/v1/couriers/dashboard.
type CourierDashboardResponse struct {
	CourierID       string                     `json:"courierId"`
	AverageRating   float64                    `json:"averageRating"`
	TotalReviews    int                        `json:"totalReviews"`
	TotalDelivered  int                        `json:"totalDelivered"`
	ActiveShipments int                        `json:"activeShipments"`
	RecentDelivered []DeliveredSummaryResponse `json:"recentDelivered"`
}

// DistributorDashboardResponse is the body of GET /api/v1/distributors/dashboard.
type DistributorDashboardResponse struct {
	DistributorID   string                     `json:"distributorId"`
	TotalShipments  int                        `json:"totalShipments"`
	ActiveShipments int                        `json:"activeShipments"`
	TotalDelivered  int                        `json:"totalDelivered"`
	TotalCancelled  int                        `json:"totalCancelled"`
	RecentDelivered []DeliveredSummaryResponse `json:"recentDelivered"`
}

// RatingResponse is the body of GET /api/v1/couriers/:id/rating.
type RatingResponse struct {
	CourierID     string  `json:"courierId"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// PendingDocumentResponse is one entry of GET /api/v1/admin/documents/pending.
type PendingDocumentResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	OwnerRole  string    `json:"ownerRole"`
	Kind       string    `json:"kind"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// AvailableCourierResponse is one entry of GET /api/internal/couriers/available.
type AvailableCourierResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Transport string          `json:"transport"`
	Location  LocationPayload `json:"location"`
}

func deliveredSummariesToPayload(summaries []queries.DeliveredShipmentSummary) []DeliveredSummaryResponse {
	out := make([]DeliveredSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = DeliveredSummaryResponse{
			ShipmentID:      s.ShipmentID.String(),
			DeliveryAddress: addressToPayload(s.DeliveryAddress),
			DeliveredAt:     s.DeliveredAt,
		}
	}
	return out
}

func shipmentDetailToPayload(r queries.GetShipmentQueryResponse) ShipmentDetailResponse {
	response := ShipmentDetailResponse{
		ID:     r.ShipmentID.String(),
		Status: r.Status.String(),
		Pickup: EndpointPayload{
			Latitude:  r.PickupLocation.Latitude(),
			Longitude: r.PickupLocation.Longitude(),
			Address:   addressToPayload(r.PickupAddress),
		},
		Delivery: EndpointPayload{
			Latitude:  r.DeliveryLocation.Latitude(),
			Longitude: r.DeliveryLocation.Longitude(),
			Address:   addressToPayload(r.DeliveryAddress),
		},
		Measure: MeasurePayload{
			Weight: r.Measure.Weight(),
			Width:  r.Measure.Width(),
			Length: r.Measure.Length(),
			Height: r.Measure.Height(),
			Size:   r.Measure.Size().String(),
		},
		RecipientPhone:   r.RecipientPhone,
		Description:      r.Description,
		VerificationCode: r.VerificationCode,
		PickupTime:       r.PickupTime,
		DeliveryTime:     r.DeliveryTime,
		CreatedAt:        r.CreatedAt,
	}
	if r.CourierID != nil {
		id := r.CourierID.String()
		response.CourierID = &id
	}
	return response
}
