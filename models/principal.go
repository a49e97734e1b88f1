// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package models

// Principal is the authenticated actor for a single request. It only exists
// after successful credential verification, is constructed fresh per request,
// and is never persisted.
type Principal struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
