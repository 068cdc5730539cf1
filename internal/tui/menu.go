// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

type menuItem struct {
	title   string
	command string
	open    func() tea.Msg
}

type MenuModel struct {
	ctx        context.Context
	dispatcher service.CommandDispatcher
	session    service.SessionManager

	items  []menuItem
	idx    int
	status string
}

func NewMenuModel(ctx context.Context, dispatcher service.CommandDispatcher, session service.SessionManager) *MenuModel {
	return &MenuModel{
		ctx:        ctx,
		dispatcher: dispatcher,
		session:    session,
		items: []menuItem{
			{title: "Добавить поставщика", command: "addSupplier", open: func() tea.Msg {
				return NavigateTo{Page: pageSupplierForm, Payload: EditSupplier{Back: pageMenu}}
			}},
			{title: "Поставщики", command: "listSuppliers", open: func() tea.Msg {
				return NavigateTo{Page: pageSuppliers}
			}},
			{title: "Журнал действий", command: "listAuditHistory", open: func() tea.Msg {
				return NavigateTo{Page: pageAudit}
			}},
			{title: "Сменить пароль", command: "changePassword", open: func() tea.Msg {
				return NavigateTo{Page: pagePassword}
			}},
			{title: "Выйти из учётной записи", command: "logout"},
			{title: "Завершить работу", command: "quit"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.status = msg.Text
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			m.status = ""
			return m, m.selected()
		}
	}

	return m, nil
}

func (m *MenuModel) selected() tea.Cmd {
	item := m.items[m.idx]

	switch item.command {
	case "quit":
		return tea.Quit
	case "logout":
		return dispatch(m.ctx, m.dispatcher, item.command, false, m.session.Logout, func(err error) tea.Msg {
			return loggedOutMsg{err: err}
		})
	}

	// opening a page is itself a gated command
	noop := func(context.Context) error { return nil }
	return dispatch(m.ctx, m.dispatcher, item.command, true, noop, func(error) tea.Msg {
		return item.open()
	})
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if identity, ok := m.session.CurrentUser(); ok {
		b.WriteString(fmt.Sprintf("Пользователь: %s (%s)\n\n", identity.Username, identity.Role))
	}

	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	renderStatus(&b, m.status, "")

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
