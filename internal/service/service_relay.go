package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-relay/internal/adapter"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/store"
	"github.com/MKhiriev/go-form-relay/models"
)

type relayService struct {
	uploads  store.UploadStorage
	bot      adapter.BotAdapter
	renderer *MessageRenderer

	logger *logger.Logger
}

func NewRelayService(uploads store.UploadStorage, bot adapter.BotAdapter, renderer *MessageRenderer, logger *logger.Logger) RelayService {
	return &relayService{
		uploads:  uploads,
		bot:      bot,
		renderer: renderer,
		logger:   logger,
	}
}

// Relay persists the photo first so that a local storage failure is reported
// before anything reaches the chat. The text goes out next; the photo is only
// sent once the text was accepted. The stored file is removed on return.
func (s *relayService) Relay(ctx context.Context, submission models.Submission) (models.RelayResult, error) {
	log := logger.FromContext(ctx)
	var result models.RelayResult

	var upload *models.UploadedFile
	if submission.HasPhoto() {
		saved, err := s.uploads.Save(ctx, *submission.Photo)
		if err != nil {
			return result, fmt.Errorf("%w: %w", ErrStoreUpload, err)
		}
		upload = &saved
		result.PhotoAttached = true
		defer s.cleanup(ctx, saved.Path)
	}

	if err := s.bot.SendMessage(ctx, s.renderer.Render(submission), s.renderer.ParseMode()); err != nil {
		return result, fmt.Errorf("%w: %w", ErrSendText, err)
	}
	result.TextSent = true
	log.Info().Int("fields", len(submission.Fields)).Msg("submission text relayed")

	if upload == nil {
		return result, nil
	}

	if err := s.bot.SendPhoto(ctx, upload.Path, s.renderer.Caption(submission)); err != nil {
		result.PhotoErr = fmt.Errorf("%w: %w", ErrSendPhoto, err)
		log.Warn().Err(err).Str("file", upload.Name).Msg("photo was not relayed")
		return result, nil
	}
	result.PhotoSent = true
	log.Info().Str("file", upload.Name).Int64("size", upload.Size).Msg("submission photo relayed")

	return result, nil
}

func (s *relayService) cleanup(ctx context.Context, path string) {
	if err := s.uploads.Remove(context.WithoutCancel(ctx), path); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to remove uploaded photo")
	}
}
