// Package logger provides structured logging backed by zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("peopleq").WithComponent("repository")
//	log.Debug("evaluation finished", logger.Fields("operation", "find_all", "records", 4))
package logger
