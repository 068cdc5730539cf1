// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Supplier is a truck supplier of the stock-control domain.
type Supplier struct {
	ID      string `json:"supplier_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// TableName returns the name of the database table
// associated with the Supplier model.
func (s Supplier) TableName() string {
	return "suppliers"
}
