// Package record holds the in-memory people records that queries read from.
//
// A Store is built once from a list of records and never changes afterwards.
// It hands out copies, so nothing a caller does to a returned slice can reach
// the stored data.
package record
