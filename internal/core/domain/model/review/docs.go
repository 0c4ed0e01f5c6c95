// Package review contains the Review aggregate.
//
// A review is a rating from 1 to 5 with an optional comment, left for the
// courier of a delivered shipment. Each shipment accepts at most one review
// and reviews are immutable once recorded. A courier's reputation is the
// plain average of their ratings, 0.0 while they have none.
package review
