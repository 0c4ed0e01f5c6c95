// Package courier contains the Courier aggregate: operational availability,
// last known position, vehicle type, and the account-enabled flag.
//
// A courier registers in Offline status with enabled=false and no recorded
// location. The account stays disabled until every uploaded verification
// document is approved; once granted, activation is never revoked. Status and
// location are overwritten unconditionally on every availability update;
// any state is reachable from any state, and the position is never
// historized.
package courier
