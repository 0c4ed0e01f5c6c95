// Package shipment contains the Shipment aggregate and its supporting value
// objects: the lifecycle Status state machine and the package Measure.
//
// A shipment moves through a fixed lifecycle:
//
//	Created ──> Assigned ──> PickedUp ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. A shipment is claimed by at most one
// courier, exclusively, at the Created → Assigned transition; reassignment is
// not supported. The aggregate enforces the invariant that a courier is
// recorded exactly when the status is Assigned, PickedUp, or Delivered.
package shipment
