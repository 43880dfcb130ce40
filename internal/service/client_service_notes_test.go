// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-deal-watch/internal/adapter"
	"github.com/MKhiriev/go-deal-watch/internal/config"
	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/MKhiriev/go-deal-watch/internal/mock"
	"github.com/MKhiriev/go-deal-watch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingNavigator remembers every navigation target.
type recordingNavigator struct {
	mu      sync.Mutex
	targets []string
}

func (n *recordingNavigator) Navigate(_ context.Context, target string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	return nil
}

func (n *recordingNavigator) Targets() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.targets...)
}

// ── with mocks ───────────────────────────────────────────────────────────────

func TestNoteService_Delete_NavigatesAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockNavigator := mock.NewMockNavigator(ctrl)

	noteID := models.NewNoteID("abc123")
	gomock.InOrder(
		mockAdapter.EXPECT().DeleteNote(gomock.Any(), noteID).Return(nil).Times(1),
		mockNavigator.EXPECT().Navigate(gomock.Any(), RootPath).Return(nil).Times(1),
	)

	svc := NewNoteService(mockAdapter, mockNavigator, logger.Nop())
	require.NoError(t, svc.Delete(context.Background(), noteID))
}

func TestNoteService_Delete_NoNavigationOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockNavigator := mock.NewMockNavigator(ctrl)

	mockAdapter.EXPECT().DeleteNote(gomock.Any(), gomock.Any()).Return(adapter.ErrInternalServerError)
	// Navigate deliberately has no expectation: any call fails the test.

	svc := NewNoteService(mockAdapter, mockNavigator, logger.Nop())
	err := svc.Delete(context.Background(), models.NewNoteID("abc123"))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestNoteService_Delete_NavigationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockNavigator := mock.NewMockNavigator(ctrl)

	navErr := errors.New("page unavailable")
	mockAdapter.EXPECT().DeleteNote(gomock.Any(), gomock.Any()).Return(nil)
	mockNavigator.EXPECT().Navigate(gomock.Any(), RootPath).Return(navErr)

	svc := NewNoteService(mockAdapter, mockNavigator, logger.Nop())
	err := svc.Delete(context.Background(), models.NewNoteID(5))

	assert.ErrorIs(t, err, navErr)
}

func TestNoteService_Delete_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewNoteService(mock.NewMockServerAdapter(ctrl), mock.NewMockNavigator(ctrl), logger.Nop())

	err := svc.Delete(context.Background(), models.NoteID{})
	assert.ErrorIs(t, err, ErrEmptyNoteID)
}

// ── against an HTTP server ───────────────────────────────────────────────────

func newHTTPAdapter(t *testing.T, url string) adapter.ServerAdapter {
	t.Helper()
	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: url}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNoteService_Delete_SendsSinglePost(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, adapter.DeleteNotePath, r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	svc := NewNoteService(newHTTPAdapter(t, srv.URL), nav, logger.Nop())

	require.NoError(t, svc.Delete(context.Background(), models.NewNoteID("abc123")))

	require.Len(t, bodies, 1)
	assert.JSONEq(t, `{"noteId":"abc123"}`, bodies[0])
	assert.Equal(t, []string{"/"}, nav.Targets())
}

func TestNoteService_Delete_FailedRequestDoesNotNavigate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	nav := &recordingNavigator{}
	svc := NewNoteService(newHTTPAdapter(t, srv.URL), nav, logger.Nop())

	assert.Error(t, svc.Delete(context.Background(), models.NewNoteID("abc123")))
	assert.Empty(t, nav.Targets())
}

func TestNoteService_Delete_UnreachableServerDoesNotNavigate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	nav := &recordingNavigator{}
	svc := NewNoteService(newHTTPAdapter(t, url), nav, logger.Nop())

	assert.Error(t, svc.Delete(context.Background(), models.NewNoteID("abc123")))
	assert.Empty(t, nav.Targets())
}
