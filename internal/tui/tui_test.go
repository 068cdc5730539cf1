// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var alice = models.Identity{UserID: "U2", Username: "alice", Role: models.RoleStandard}

func newTestDispatcher(session service.SessionManager) service.CommandDispatcher {
	return service.NewCommandDispatcher(service.NewAuthorizationGate(session, logger.Nop()), logger.Nop())
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestRootModel_CommandRejected_OpensLogin(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageMenu, models.AppBuildInfo{})

	_, cmd := root.Update(CommandRejected{Command: "addSupplier"})

	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)
	assert.IsType(t, Notice{}, nav.Payload)
}

func TestRootModel_SuccessfulLogin_OpensMenuWithWarning(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{}, pageLogin, models.AppBuildInfo{})

	_, cmd := root.Update(LoginResult{Identity: alice, DefaultPassword: true})

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Contains(t, nav.Payload.(Notice).Text, "по умолчанию")
}

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	credentials := mock.NewMockCredentialService(ctrl)
	ctx := context.Background()

	session.EXPECT().Login(gomock.Any(), "alice", "s3cret").Return(alice, nil)
	credentials.EXPECT().UsesDefaultPassword(gomock.Any(), "U2").Return(false, nil)

	m := NewLoginModel(ctx, newTestDispatcher(session), session, credentials)
	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("s3cret")

	_, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, alice, result.Identity)
	assert.False(t, result.DefaultPassword)
}

func TestLoginModel_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	credentials := mock.NewMockCredentialService(ctrl)

	session.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(models.Identity{}, service.ErrInvalidCredentials)

	m := NewLoginModel(context.Background(), newTestDispatcher(session), session, credentials)
	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("wrong")

	_, cmd := m.Update(enter())
	msg := cmd()
	m.Update(msg)

	assert.False(t, m.submitting)
	assert.Equal(t, "Неверный логин или пароль", m.errMsg)
	assert.Empty(t, m.inputs[1].Value())
}

func TestLoginModel_EmptyInput_NoCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)

	m := NewLoginModel(context.Background(), newTestDispatcher(session), session, mock.NewMockCredentialService(ctrl))

	_, cmd := m.Update(enter())

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestMenuModel_GatedItem_WhenAnonymous_IsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	session.EXPECT().CurrentUser().Return(models.Identity{}, false).AnyTimes()

	m := NewMenuModel(context.Background(), newTestDispatcher(session), session)

	_, cmd := m.Update(enter())

	assert.Equal(t, CommandRejected{Command: "addSupplier"}, cmd())
}

func TestMenuModel_GatedItem_WhenLoggedIn_OpensPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	session.EXPECT().CurrentUser().Return(alice, true).AnyTimes()

	m := NewMenuModel(context.Background(), newTestDispatcher(session), session)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(enter())

	assert.Equal(t, NavigateTo{Page: pageAudit}, cmd())
	assert.Contains(t, m.View(), "alice")
}

func TestSupplierFormModel_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)
	suppliers := mock.NewMockSupplierService(ctrl)
	session.EXPECT().CurrentUser().Return(alice, true).AnyTimes()

	supplier := models.Supplier{ID: "S1", Name: "Volvo Trucks"}
	suppliers.EXPECT().AddSupplier(gomock.Any(), supplier).Return(supplier, nil)

	m := NewSupplierFormModel(context.Background(), newTestDispatcher(session), suppliers)
	m.Update(EditSupplier{Back: pageMenu})
	m.inputs[supplierFieldID].SetValue(" S1 ")
	m.inputs[supplierFieldName].SetValue("Volvo Trucks")

	_, cmd := m.Update(enter())
	saved, ok := cmd().(supplierSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)

	_, cmd = m.Update(saved)
	nav := cmd().(NavigateTo)
	assert.Equal(t, pageSuppliers, nav.Page)
}

func TestSupplierFormModel_EditKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionManager(ctrl)

	m := NewSupplierFormModel(context.Background(), newTestDispatcher(session), mock.NewMockSupplierService(ctrl))
	m.Update(EditSupplier{Supplier: &models.Supplier{ID: "S1", Name: "Volvo"}, Back: pageSuppliers})

	assert.True(t, m.editing)
	assert.Equal(t, supplierFieldName, m.focus)
	for range 10 {
		m.moveFocus(-1)
		assert.NotEqual(t, supplierFieldID, m.focus)
	}
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Поставщик не найден", humanizeError(fmt.Errorf("wrap: %w", service.ErrSupplierNotFound)))
	assert.Equal(t, "boom", humanizeError(fmt.Errorf("boom")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "Пос...", fitText("Поставщик", 6))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
