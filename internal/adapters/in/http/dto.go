package http

import (
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/review"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"
)

// Request payloads. Enumerated fields travel as their string names
// ("Motorbike", "Active", "DriversLicense") and are parsed into domain
// values before a command is built.

// RegisterCourierRequest is the body of POST /api/v1/couriers.
type RegisterCourierRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Transport string `json:"transport"`
}

// RegisterDistributorRequest is the body of POST /api/v1/distributors.
type RegisterDistributorRequest struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Address AddressPayload `json:"address"`
}

// SetCourierStatusRequest is the body of POST /api/v1/couriers/status.
// Couriers report their position together with every status change.
type SetCourierStatusRequest struct {
	Status    string  `json:"status"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Pickup         EndpointPayload `json:"pickup"`
	Delivery       EndpointPayload `json:"delivery"`
	Measure        MeasurePayload  `json:"measure"`
	RecipientPhone string          `json:"recipientPhone"`
	Description    string          `json:"description"`
}

// EndpointPayload carries one end of a shipment route.
type EndpointPayload struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Address   AddressPayload `json:"address"`
}

// AddressPayload mirrors kernel.Address on the wire.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
}

// MeasurePayload carries the physical properties of a shipment.
type MeasurePayload struct {
	Weight float64 `json:"weight"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Size   string  `json:"size"`
}

// AddDeliveryNoteRequest is the body of POST /api/v1/track/:code/note.
type AddDeliveryNoteRequest struct {
	Note string `json:"note"`
}

// AddReviewRequest is the body of POST /api/v1/track/:code/review.
type AddReviewRequest struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Reviewer string `json:"reviewer"`
}

// UploadDocumentRequest is the body of POST /api/v1/documents.
type UploadDocumentRequest struct {
	OwnerID   string `json:"ownerId"`
	OwnerRole string `json:"ownerRole"`
	Kind      string `json:"kind"`
	FileURL   string `json:"fileUrl"`
}

// RejectDocumentRequest is the body of POST /api/v1/admin/documents/:id/reject.
type RejectDocumentRequest struct {
	Reason string `json:"reason"`
}

// CreatedResponse is returned by endpoints that register a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

func addressFromPayload(p AddressPayload) kernel.Address {
	return kernel.Address{
		Street:     p.Street,
		City:       p.City,
		District:   p.District,
		PostalCode: p.PostalCode,
	}
}

func addressToPayload(a kernel.Address) AddressPayload {
	return AddressPayload{
		Street:     a.Street,
		City:       a.City,
		District:   a.District,
		PostalCode: a.PostalCode,
	}
}

func parseTransport(s string) (courier.Transport, error) {
	switch s {
	case "Motorbike":
		return courier.TransportMotorbike, nil
	case "Car":
		return courier.TransportCar, nil
	case "Van":
		return courier.TransportVan, nil
	}
	return courier.TransportUnknown, errs.NewValueIsInvalidErrorWithCause("transport",
		fmt.Errorf("%q is not a transport kind", s))
}

func parseCourierStatus(s string) (courier.Status, error) {
	switch s {
	case "Offline":
		return courier.StatusOffline, nil
	case "Inactive":
		return courier.StatusInactive, nil
	case "Active":
		return courier.StatusActive, nil
	case "DestinationBased":
		return courier.StatusDestinationBased, nil
	}
	return courier.StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a courier status", s))
}

func parseSizeClass(s string) (shipment.SizeClass, error) {
	switch s {
	case "Small":
		return shipment.SizeSmall, nil
	case "Medium":
		return shipment.SizeMedium, nil
	case "Large":
		return shipment.SizeLarge, nil
	}
	return shipment.SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size",
		fmt.Errorf("%q is not a size class", s))
}

func parseDocumentKind(s string) (document.Kind, error) {
	switch s {
	case "DriversLicense":
		return document.KindDriversLicense, nil
	case "VehicleRegistration":
		return document.KindVehicleRegistration, nil
	case "Identity":
		return document.KindIdentity, nil
	case "CriminalRecord":
		return document.KindCriminalRecord, nil
	}
	return document.KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a document kind", s))
}

func parseOwnerRole(s string) (document.Role, error) {
	switch s {
	case "Courier":
		return document.RoleCourier, nil
	case "Distributor":
		return document.RoleDistributor, nil
	}
	return document.RoleUnknown, errs.NewValueIsInvalidErrorWithCause("ownerRole",
		fmt.Errorf("%q is not an owner role", s))
}

func parseReviewer(s string) (review.Reviewer, error) {
	switch s {
	case "Customer":
		return review.ReviewerCustomer, nil
	case "Distributor":
		return review.ReviewerDistributor, nil
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("reviewer",
		fmt.Errorf("%q is not a reviewer kind", s))
}
