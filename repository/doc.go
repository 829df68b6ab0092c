// Package repository exposes a record.Store through deferred query handles.
//
// PersonRepository never reads the store when a handle is created. Each
// terminal call on a handle starts a new evaluation, which:
//
//   - gets a fresh evaluation id (a UUID)
//   - opens a span (repository.get_by_id or repository.find_all)
//   - counts the records it reads from the store
//
// When the terminal has its final outcome, the span ends, the query metrics
// (if configured) are recorded and a log line is written. The outcome includes
// failures raised after the store was read, so a Single with no match or a
// failing Map is recorded as a failed evaluation. Cardinality violations are
// logged at info, other failures at warn and successes at debug.
package repository
