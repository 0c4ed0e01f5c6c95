// Package document contains the Document aggregate of the verification
// workflow that gates courier account activation.
//
// Each uploaded document is reviewed independently: Pending → Approved or
// Pending → Rejected, both terminal for that document. A rejected document is
// replaced by uploading a new Pending one; the old record keeps its rejection
// for audit. A courier account becomes enabled when its document set is
// non-empty and every document is approved. Activation is never revoked,
// even if a later re-submission is rejected.
package document
