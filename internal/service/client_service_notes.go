package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deal-watch/internal/adapter"
	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/MKhiriev/go-deal-watch/models"
)

type noteService struct {
	serverAdapter adapter.ServerAdapter
	navigator     Navigator

	logger *logger.Logger
}

// NewNoteService returns a NoteService that deletes notes through
// serverAdapter and navigates with navigator.
func NewNoteService(serverAdapter adapter.ServerAdapter, navigator Navigator, logger *logger.Logger) NoteService {
	return &noteService{serverAdapter: serverAdapter, navigator: navigator, logger: logger}
}

// Delete implements NoteService.
func (s *noteService) Delete(ctx context.Context, noteID models.NoteID) error {
	if noteID.IsZero() {
		return ErrEmptyNoteID
	}

	if err := s.serverAdapter.DeleteNote(ctx, noteID); err != nil {
		s.logger.Warn().Err(err).Interface("note_id", noteID.Value()).Msg("delete note failed")
		return fmt.Errorf("delete note: %w", err)
	}

	s.logger.Info().Interface("note_id", noteID.Value()).Msg("note deleted")

	if err := s.navigator.Navigate(ctx, RootPath); err != nil {
		return fmt.Errorf("navigate to %s: %w", RootPath, err)
	}

	return nil
}
