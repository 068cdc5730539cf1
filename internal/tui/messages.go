// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-stock-keeper/models"

const (
	pageLogin        = "login"
	pageMenu         = "menu"
	pageSuppliers    = "suppliers"
	pageSupplierForm = "supplier_form"
	pageAudit        = "audit"
	pagePassword     = "password"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page.
type LoginResult struct {
	Identity        models.Identity
	DefaultPassword bool
	Err             error
}

// Notice is a one-line status shown by the receiving page.
type Notice struct {
	Text string
}

// CommandRejected is emitted when the gate turned a command away.
type CommandRejected struct {
	Command string
}

// EditSupplier opens the supplier form. A nil Supplier means a new one.
// Back names the page esc returns to.
type EditSupplier struct {
	Supplier *models.Supplier
	Back     string
}

type suppliersLoadedMsg struct {
	items []models.Supplier
	err   error
}

type supplierSavedMsg struct {
	supplier models.Supplier
	err      error
}

type supplierDeletedMsg struct {
	id  string
	err error
}

type auditLoadedMsg struct {
	records []models.AuditRecord
	err     error
}

type passwordChangedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}
