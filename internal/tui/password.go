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
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// PasswordModel changes the password of the logged-in operator.
type PasswordModel struct {
	ctx         context.Context
	dispatcher  service.CommandDispatcher
	credentials service.CredentialService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewPasswordModel(ctx context.Context, dispatcher service.CommandDispatcher, credentials service.CredentialService) *PasswordModel {
	m := &PasswordModel{
		ctx:         ctx,
		dispatcher:  dispatcher,
		credentials: credentials,
	}
	m.reset()
	return m
}

func (m *PasswordModel) reset() {
	m.inputs = make([]textinput.Model, 2)
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].CharLimit = 256
		m.inputs[i].EchoMode = textinput.EchoPassword
		m.inputs[i].EchoCharacter = '*'
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = ""
}

func (m *PasswordModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordChangedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageMenu, Notice{Text: "Пароль изменён"})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, Notice{})
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			m.inputs[m.focus].Focus()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			password := m.inputs[0].Value()
			if password == "" {
				m.errMsg = "Пароль не может быть пустым"
				return m, nil
			}
			if password != m.inputs[1].Value() {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdChange(password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PasswordModel) View() string {
	var b strings.Builder
	b.WriteString("Новый пароль │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Повтор       │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	renderStatus(&b, "", m.errMsg)

	return renderPage("СМЕНА ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func (m *PasswordModel) cmdChange(password string) tea.Cmd {
	op := func(ctx context.Context) error {
		actor, ok := utils.ActorFromContext(ctx)
		if !ok {
			return service.ErrNotAuthenticated
		}
		return m.credentials.ChangePassword(ctx, actor.UserID, password)
	}

	return dispatch(m.ctx, m.dispatcher, "changePassword", true, op, func(err error) tea.Msg {
		return passwordChangedMsg{err: err}
	})
}
