package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/urlsmith/internal/application/port/mocks"
	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/domain/entity"
	"github.com/bnema/urlsmith/internal/domain/repository"
	repomocks "github.com/bnema/urlsmith/internal/domain/repository/mocks"
)

func checksByID(out *usecase.DiagnoseOutput) map[usecase.CheckID]usecase.CheckStatus {
	m := make(map[usecase.CheckID]usecase.CheckStatus, len(out.Checks))
	for _, c := range out.Checks {
		m[c.ID] = c
	}
	return m
}

func foundPath(name string) (string, error) { return "/usr/bin/" + name, nil }

func TestDiagnoseUseCase_AllHealthy(t *testing.T) {
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Keys(mock.Anything).Return([]string{usecase.QueryOptionsKey}, nil)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).
		Return([]byte(`{"version":1,"entries":[{"key":"q","values":["go"]}]}`), nil)

	tabs := portmocks.NewMockTabProvider(t)
	tabs.EXPECT().QueryTabs(mock.Anything, focusedQuery).
		Return([]entity.BrowserTab{{ID: "1", URL: "https://a.com/", Active: true}}, nil)

	uc := usecase.NewDiagnoseUseCase(repo, usecase.NewAutocompleteCacheUseCase(repo),
		usecase.NewResolveActiveTabUseCase(tabs), foundPath)

	out := uc.Execute(testContext(), usecase.DiagnoseInput{OpenCommand: "xdg-open", ClipboardAvailable: true})

	assert.True(t, out.OK)
	checks := checksByID(out)
	require.Len(t, checks, 5)
	for id, c := range checks {
		assert.True(t, c.OK, "check %s: %s", id, c.Detail)
	}
	assert.Equal(t, "1 keys remembered", checks[usecase.CheckHistory].Detail)
	assert.Equal(t, "https://a.com/", checks[usecase.CheckTabSource].Detail)
	assert.Equal(t, "/usr/bin/xdg-open", checks[usecase.CheckOpener].Detail)
}

func TestDiagnoseUseCase_StorageFailureFails(t *testing.T) {
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Keys(mock.Anything).Return(nil, errors.New("disk I/O error"))
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return(nil, errors.New("disk I/O error"))

	tabs := portmocks.NewMockTabProvider(t)
	tabs.EXPECT().QueryTabs(mock.Anything, mock.Anything).Return(nil, nil)

	uc := usecase.NewDiagnoseUseCase(repo, usecase.NewAutocompleteCacheUseCase(repo),
		usecase.NewResolveActiveTabUseCase(tabs), foundPath)

	out := uc.Execute(testContext(), usecase.DiagnoseInput{OpenCommand: "xdg-open"})

	assert.False(t, out.OK)
	checks := checksByID(out)
	assert.False(t, checks[usecase.CheckStorage].OK)
	assert.Contains(t, checks[usecase.CheckStorage].Detail, "disk I/O error")
	assert.False(t, checks[usecase.CheckHistory].OK)
	assert.Contains(t, checks[usecase.CheckHistory].Detail, "unreadable")
	assert.False(t, checks[usecase.CheckTabSource].OK)
	assert.Contains(t, checks[usecase.CheckTabSource].Detail, "no active tab")
	assert.False(t, checks[usecase.CheckClipboard].OK)
}

func TestDiagnoseUseCase_NewerHistoryVersion(t *testing.T) {
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Keys(mock.Anything).Return([]string{usecase.QueryOptionsKey}, nil)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return([]byte(`{"version":99,"entries":[]}`), nil)

	uc := usecase.NewDiagnoseUseCase(repo, usecase.NewAutocompleteCacheUseCase(repo), nil, foundPath)
	out := uc.Execute(testContext(), usecase.DiagnoseInput{OpenCommand: "xdg-open", ClipboardAvailable: true})

	assert.False(t, out.OK)
	assert.False(t, checksByID(out)[usecase.CheckHistory].OK)
}

func TestDiagnoseUseCase_OptionalFailuresKeepOK(t *testing.T) {
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Keys(mock.Anything).Return([]string{}, nil)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return(nil, repository.ErrNotFound)

	notFound := func(string) (string, error) { return "", errors.New("not found") }
	uc := usecase.NewDiagnoseUseCase(repo, usecase.NewAutocompleteCacheUseCase(repo), nil, notFound)

	out := uc.Execute(testContext(), usecase.DiagnoseInput{OpenCommand: "firefox --new-tab"})

	assert.True(t, out.OK)
	checks := checksByID(out)
	assert.Equal(t, "firefox not found in PATH", checks[usecase.CheckOpener].Detail)
	assert.Equal(t, "0 keys remembered", checks[usecase.CheckHistory].Detail)
}
