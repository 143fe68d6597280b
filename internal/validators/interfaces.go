// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound relay requests before they reach the
// session store.
//
// Core concepts:
//   - Validator: generic interface to validate a request value.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Inject a Validator into the session service.
//  2. Call Validate with context, value, and optional field names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
