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
	"github.com/MKhiriev/go-stock-keeper/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (username and password) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel], which
// opens the main menu.
type LoginModel struct {
	ctx         context.Context
	dispatcher  service.CommandDispatcher
	session     service.SessionManager
	credentials service.CredentialService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, dispatcher service.CommandDispatcher, session service.SessionManager, credentials service.CredentialService) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:         ctx,
		dispatcher:  dispatcher,
		session:     session,
		credentials: credentials,
		inputs:      []textinput.Model{loginInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, populates errMsg.
//   - [Notice]       shows a status line, e.g. after logout.
//   - tab            moves focus to the next input.
//   - shift+tab      moves focus to the previous input.
//   - enter          dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		m.inputs[1].SetValue("")
		if msg.Err != nil {
			m.status = ""
			m.errMsg = humanizeError(msg.Err)
		} else {
			m.errMsg = ""
		}
		return m, nil
	case Notice:
		m.status = msg.Text
		m.errMsg = ""
		return m, textinput.Blink
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := m.inputs[0].Value()
			password := m.inputs[1].Value()
			if strings.TrimSpace(username) == "" || password == "" {
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table with
// username and password inputs, a submission indicator, and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	var result LoginResult

	op := func(ctx context.Context) error {
		identity, err := m.session.Login(ctx, username, password)
		if err != nil {
			return err
		}
		result.Identity = identity

		// lookup errors leave DefaultPassword false
		result.DefaultPassword, _ = m.credentials.UsesDefaultPassword(ctx, identity.UserID)
		return nil
	}

	return dispatch(m.ctx, m.dispatcher, "login", false, op, func(err error) tea.Msg {
		result.Err = err
		if err != nil {
			result.Identity = models.Identity{}
		}
		return result
	})
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
