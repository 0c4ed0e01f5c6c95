// Package distributor contains the Distributor aggregate.
//
// A distributor is a sender account that creates shipments and can cancel
// them before pickup. Distributors do not go through document verification.
package distributor
