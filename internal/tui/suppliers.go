// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// SuppliersModel lists suppliers and starts edit and delete commands.
// Loading the list is a sensitive read and is recorded in the audit trail.
type SuppliersModel struct {
	ctx        context.Context
	dispatcher service.CommandDispatcher
	suppliers  service.SupplierService

	table   table.Model
	items   []models.Supplier
	loading bool

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	status string
	errMsg string
}

func NewSuppliersModel(ctx context.Context, dispatcher service.CommandDispatcher, suppliers service.SupplierService) *SuppliersModel {
	return &SuppliersModel{
		ctx:        ctx,
		dispatcher: dispatcher,
		suppliers:  suppliers,
		table: newTable([]table.Column{
			{Title: "Код", Width: 8},
			{Title: "Название", Width: 24},
			{Title: "Телефон", Width: 16},
			{Title: "E-mail", Width: 24},
		}),
	}
}

func (m *SuppliersModel) Init() tea.Cmd {
	m.loading = true
	m.showConfirm = false
	return m.cmdLoad()
}

func (m *SuppliersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.status = msg.Text
		m.errMsg = ""
		return m, m.Init()
	case suppliersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setItems(msg.items)
		return m, nil
	case supplierDeletedMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Поставщик " + msg.id + " удалён"
		m.errMsg = ""
		return m, m.cmdLoad()
	case tea.KeyMsg:
		if m.showConfirm {
			return m.updateConfirm(msg)
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, Notice{})
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.newItem):
			return m, navigate(pageSupplierForm, EditSupplier{Back: pageSuppliers})
		case key.Matches(msg, keys.enter):
			if supplier, ok := m.selected(); ok {
				return m, navigate(pageSupplierForm, EditSupplier{Supplier: &supplier, Back: pageSuppliers})
			}
			return m, nil
		case key.Matches(msg, keys.delete):
			if supplier, ok := m.selected(); ok {
				m.showConfirm = true
				m.pendingDelete = supplier.ID
				m.confirm = confirmModel{message: supplier.Name}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *SuppliersModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(msg, keys.no):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m *SuppliersModel) View() string {
	if m.showConfirm {
		return renderPage("ПОСТАВЩИКИ", m.confirm.View(), "y: удалить │ n: отмена")
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет поставщиков\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if supplier, ok := m.selected(); ok {
			b.WriteString("\nАдрес: ")
			b.WriteString(valueOrDash(supplier.Address))
			b.WriteString("\n")
		}
	}

	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ПОСТАВЩИКИ", strings.TrimRight(b.String(), "\n"), "enter: изменить │ n: новый │ d: удалить │ r: обновить │ esc: назад")
}

func (m *SuppliersModel) setItems(items []models.Supplier) {
	m.items = items

	rows := make([]table.Row, 0, len(items))
	for _, s := range items {
		rows = append(rows, table.Row{s.ID, fitText(s.Name, 24), valueOrDash(s.Phone), fitText(valueOrDash(s.Email), 24)})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *SuppliersModel) selected() (models.Supplier, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return models.Supplier{}, false
	}
	return m.items[idx], true
}

func (m *SuppliersModel) cmdLoad() tea.Cmd {
	var items []models.Supplier

	op := func(ctx context.Context) error {
		var err error
		items, err = m.suppliers.ListSuppliers(ctx)
		return err
	}

	return dispatch(m.ctx, m.dispatcher, "listSuppliers", true, op, func(err error) tea.Msg {
		return suppliersLoadedMsg{items: items, err: err}
	})
}

func (m *SuppliersModel) cmdDelete(id string) tea.Cmd {
	op := func(ctx context.Context) error {
		return m.suppliers.DeleteSupplier(ctx, id)
	}

	return dispatch(m.ctx, m.dispatcher, "deleteSupplier", true, op, func(err error) tea.Msg {
		return supplierDeletedMsg{id: id, err: err}
	})
}
