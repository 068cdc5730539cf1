// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// auditPageSize caps the records the activity log screen loads at once.
const auditPageSize = 200

// AuditModel shows the newest audit records.
type AuditModel struct {
	ctx        context.Context
	dispatcher service.CommandDispatcher
	audit      service.AuditService

	table   table.Model
	count   int
	loading bool
	errMsg  string
}

func NewAuditModel(ctx context.Context, dispatcher service.CommandDispatcher, audit service.AuditService) *AuditModel {
	return &AuditModel{
		ctx:        ctx,
		dispatcher: dispatcher,
		audit:      audit,
		table: newTable([]table.Column{
			{Title: "№", Width: 6},
			{Title: "Время (UTC)", Width: 19},
			{Title: "Пользователь", Width: 14},
			{Title: "Действие", Width: 8},
			{Title: "Объект", Width: 22},
			{Title: "Подробности", Width: 28},
		}),
	}
}

func (m *AuditModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case auditLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		m.setRecords(msg.records)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, Notice{})
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *AuditModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case m.count == 0 && m.errMsg == "":
		b.WriteString("Журнал пуст\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage("ЖУРНАЛ ДЕЙСТВИЙ", strings.TrimRight(b.String(), "\n"), "↑/↓: прокрутка │ r: обновить │ esc: назад")
}

func (m *AuditModel) setRecords(records []models.AuditRecord) {
	m.count = len(records)

	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		object := r.EntityType
		if r.EntityID != "" {
			object += ":" + r.EntityID
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(r.LogID, 10),
			r.Timestamp.UTC().Format(time.DateTime),
			fitText(r.Username, 14),
			string(r.Action),
			fitText(object, 22),
			fitText(valueOrDash(r.Detail), 28),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *AuditModel) cmdLoad() tea.Cmd {
	var records []models.AuditRecord

	op := func(ctx context.Context) error {
		for record, err := range m.audit.Query(ctx, models.AuditFilter{Limit: auditPageSize}) {
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	}

	return dispatch(m.ctx, m.dispatcher, "listAuditHistory", true, op, func(err error) tea.Msg {
		return auditLoadedMsg{records: records, err: err}
	})
}
