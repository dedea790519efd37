// Package service contains the business logic.
//
// It sits between the command layer and the repository layer.
// Each operation owns its connection scope: it acquires a
// connection, runs its statements, commits writes and releases
// the connection before returning. Store failures leave this
// package classified (internal/sqlerr) and carrying a stack trace.
package service
