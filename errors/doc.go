// Package errors provides the error taxonomy shared by the query engine,
// the record store and the CLI.
//
// Every failure that crosses a package boundary is an *AppError carrying a
// machine-readable ErrorCode. Absence of a value is never an error; only
// cardinality violations, transformation failures and invalid input are.
package errors
