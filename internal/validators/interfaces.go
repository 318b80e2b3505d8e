// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// [Validator] is a generic interface to validate domain values with optional
// field-level scoping. [RecordValidator] covers the typed records of every
// collection plus the room and push payloads accepted by the hub;
// [ValidateRecord] applies it to a raw replica record.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
