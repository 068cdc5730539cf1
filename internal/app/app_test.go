// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

type fakeShell struct {
	calls int
	err   error
}

func (f *fakeShell) Run(context.Context) error {
	f.calls++
	return f.err
}

func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func TestApp_Run_BootstrapFaultIsLoggedAndSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockBootstrapService(ctrl)
	bootstrap.EXPECT().EnsureAdministrator(gomock.Any()).Return(false, service.ErrStorageFault)

	var buf bytes.Buffer
	shell := &fakeShell{}
	a := newApp(nil, &service.Services{BootstrapService: bootstrap}, shell, newBufferLogger(&buf))

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 1, shell.calls)
	assert.Contains(t, buf.String(), MsgSetupSkipped)
}

func TestApp_Run_CreatedAdministratorIsAnnounced(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockBootstrapService(ctrl)
	bootstrap.EXPECT().EnsureAdministrator(gomock.Any()).Return(true, nil)

	var buf bytes.Buffer
	a := newApp(nil, &service.Services{BootstrapService: bootstrap}, &fakeShell{}, newBufferLogger(&buf))

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, buf.String(), MsgDefaultAdminCreated)
}

func TestApp_Run_ShellError(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockBootstrapService(ctrl)
	bootstrap.EXPECT().EnsureAdministrator(gomock.Any()).Return(false, nil)

	shellErr := errors.New("terminal is gone")
	a := newApp(nil, &service.Services{BootstrapService: bootstrap}, &fakeShell{err: shellErr}, logger.Nop())

	err := a.Run(context.Background())

	assert.ErrorIs(t, err, shellErr)
}
