// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is what an operator types into the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
