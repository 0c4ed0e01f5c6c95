// Package notifications provides asynchronous delivery of out-of-band
// messages to account holders.
//
// Commands enqueue notifications into an in-memory Queue; a scheduled job
// drains the queue and hands each message to a Sender. The queue decouples
// request handling from delivery, a slow or failing sender never blocks a
// command. Messages are lost on process restart, which is acceptable for
// advisory notices like document rejections.
package notifications
