// Package corestream is a composable engine for producing, transforming and
// combining time-varying sequences of values under strict thread-safety and
// cancellation guarantees.
package corestream
