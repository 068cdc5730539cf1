// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	supplierFieldID = iota
	supplierFieldName
	supplierFieldAddress
	supplierFieldPhone
	supplierFieldEmail
)

var supplierFieldLabels = []string{
	"Код     ",
	"Название",
	"Адрес   ",
	"Телефон ",
	"E-mail  ",
}

// SupplierFormModel creates a supplier or edits an existing one. The code
// of an existing supplier cannot be changed.
type SupplierFormModel struct {
	ctx        context.Context
	dispatcher service.CommandDispatcher
	suppliers  service.SupplierService

	inputs     []textinput.Model
	focus      int
	editing    bool
	back       string
	submitting bool
	errMsg     string
}

func NewSupplierFormModel(ctx context.Context, dispatcher service.CommandDispatcher, suppliers service.SupplierService) *SupplierFormModel {
	m := &SupplierFormModel{
		ctx:        ctx,
		dispatcher: dispatcher,
		suppliers:  suppliers,
		back:       pageMenu,
	}
	m.reset(nil)
	return m
}

func (m *SupplierFormModel) reset(supplier *models.Supplier) {
	inputs := make([]textinput.Model, len(supplierFieldLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = validators.MaxSupplierFieldLength
	}
	inputs[supplierFieldID].CharLimit = 32

	m.inputs = inputs
	m.editing = supplier != nil
	m.submitting = false
	m.errMsg = ""
	m.focus = supplierFieldID

	if supplier != nil {
		inputs[supplierFieldID].SetValue(supplier.ID)
		inputs[supplierFieldName].SetValue(supplier.Name)
		inputs[supplierFieldAddress].SetValue(supplier.Address)
		inputs[supplierFieldPhone].SetValue(supplier.Phone)
		inputs[supplierFieldEmail].SetValue(supplier.Email)
		m.focus = supplierFieldName
	}
	m.inputs[m.focus].Focus()
}

func (m *SupplierFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SupplierFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EditSupplier:
		m.reset(msg.Supplier)
		if msg.Back != "" {
			m.back = msg.Back
		}
		return m, textinput.Blink
	case supplierSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageSuppliers, Notice{Text: "Поставщик " + msg.supplier.ID + " сохранён"})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(m.back, Notice{})
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdSave(m.value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SupplierFormModel) View() string {
	var b strings.Builder

	for i, label := range supplierFieldLabels {
		b.WriteString(label)
		b.WriteString(" │ [")
		if i == supplierFieldID && m.editing {
			b.WriteString(m.inputs[i].Value())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	}
	renderStatus(&b, "", m.errMsg)

	title := "НОВЫЙ ПОСТАВЩИК"
	if m.editing {
		title = "ПОСТАВЩИК " + m.inputs[supplierFieldID].Value()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func (m *SupplierFormModel) value() models.Supplier {
	return models.Supplier{
		ID:      strings.TrimSpace(m.inputs[supplierFieldID].Value()),
		Name:    strings.TrimSpace(m.inputs[supplierFieldName].Value()),
		Address: strings.TrimSpace(m.inputs[supplierFieldAddress].Value()),
		Phone:   strings.TrimSpace(m.inputs[supplierFieldPhone].Value()),
		Email:   strings.TrimSpace(m.inputs[supplierFieldEmail].Value()),
	}
}

func (m *SupplierFormModel) moveFocus(step int) {
	first := supplierFieldID
	if m.editing {
		first = supplierFieldName
	}
	count := len(m.inputs) - first

	m.inputs[m.focus].Blur()
	m.focus = first + ((m.focus-first+step)%count+count)%count
	m.inputs[m.focus].Focus()
}

func (m *SupplierFormModel) cmdSave(supplier models.Supplier) tea.Cmd {
	name := "addSupplier"
	save := m.suppliers.AddSupplier
	if m.editing {
		name = "updateSupplier"
		save = m.suppliers.UpdateSupplier
	}

	var saved models.Supplier
	op := func(ctx context.Context) error {
		var err error
		saved, err = save(ctx, supplier)
		return err
	}

	return dispatch(m.ctx, m.dispatcher, name, true, op, func(err error) tea.Msg {
		return supplierSavedMsg{supplier: saved, err: err}
	})
}
