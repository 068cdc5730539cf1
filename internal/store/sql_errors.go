// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. Repositories use it to turn driver errors
// into the sentinel errors of this package.
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and for anything the
	// classifier does not recognise.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks a failed UNIQUE or PRIMARY KEY constraint.
	UniqueViolation

	// ConstraintViolation marks any other integrity failure, including the
	// append-only triggers on audit_log.
	ConstraintViolation

	// Transient marks errors that may succeed when attempted again
	// (locked database, lost connection, serialization failure).
	Transient
)

// String returns a short label used in log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ConstraintViolation:
		return "constraint_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
