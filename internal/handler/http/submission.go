package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-relay/internal/app"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/service"
	"github.com/MKhiriev/go-form-relay/internal/utils"
	"github.com/MKhiriev/go-form-relay/internal/validators"
	"github.com/MKhiriev/go-form-relay/models"
)

const (
	// formOverhead is the body allowance for text fields and multipart framing
	// on top of the file ceiling.
	formOverhead    = 1 << 20
	// multipartMemory is kept in memory before the parser spills to disk.
	multipartMemory = 1 << 20
)

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.form.maxFileSize+formOverhead)

	submission, release, err := h.parseSubmission(r)
	defer release()
	if err != nil {
		log.Err(err).Msg("submission could not be parsed")
		h.writeSubmissionError(w, r, err)
		return
	}

	log.Debug().
		Int("fields", len(submission.Fields)).
		Bool("photo", submission.HasPhoto()).
		Msg("submission received")

	result, err := h.services.RelayService.Relay(ctx, submission)
	if err != nil {
		h.writeSubmissionError(w, r, err)
		return
	}

	response := models.SubmitResponse{Success: true, Message: app.MsgSubmitted}
	if result.Partial() {
		response.Message = app.MsgPartiallySubmitted
		response.Partial = true
		response.PhotoError = upstreamReason(result.PhotoErr)
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

// parseSubmission reads the configured fields and the file field. The returned
// release func closes the file and removes the parser's temporary files; it
// is safe to call even when err is not nil.
func (h *Handler) parseSubmission(r *http.Request) (models.Submission, func(), error) {
	release := func() {}
	submission := models.Submission{
		Fields:     make(map[string]string, len(h.form.fieldKeys)),
		ReceivedAt: time.Now(),
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return submission, release, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
	}

	switch mediaType {
	case "multipart/form-data":
		if err = r.ParseMultipartForm(multipartMemory); err != nil {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
			return submission, release, classifyBodyError(err)
		}
		form := r.MultipartForm
		h.collectFields(submission.Fields, form.Value)

		var file multipart.File
		release = func() {
			if file != nil {
				_ = file.Close()
			}
			if err := form.RemoveAll(); err != nil {
				logger.FromRequest(r).Err(err).Msg("failed to remove multipart temp files")
			}
		}

		headers := form.File[h.form.fileField]
		if len(headers) == 0 {
			return submission, release, nil
		}

		header := headers[0]
		file, err = header.Open()
		if err != nil {
			return submission, release, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		submission.Photo = &models.Photo{
			FileName: header.Filename,
			Size:     header.Size,
			Content:  file,
		}

	case "application/x-www-form-urlencoded":
		if err = r.ParseForm(); err != nil {
			return submission, release, classifyBodyError(err)
		}
		h.collectFields(submission.Fields, r.PostForm)

	case "application/json":
		var body map[string]any
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		if err = decoder.Decode(&body); err != nil {
			return submission, release, classifyBodyError(err)
		}
		for _, key := range h.form.fieldKeys {
			value, ok := body[key]
			if !ok || value == nil {
				continue
			}
			text, err := jsonScalar(value)
			if err != nil {
				return submission, release, fmt.Errorf("%w: field %q: %w", ErrInvalidForm, key, err)
			}
			submission.Fields[key] = text
		}

	default:
		return submission, release, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}

	return submission, release, nil
}

func (h *Handler) collectFields(dst map[string]string, values map[string][]string) {
	for _, key := range h.form.fieldKeys {
		if v := values[key]; len(v) > 0 {
			dst[key] = v[0]
		}
	}
}

// jsonScalar renders a decoded JSON value as field text. Objects and arrays
// have no single-line form and are rejected.
func jsonScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", errNotScalar
	}
}

func classifyBodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) ||
		errors.Is(err, multipart.ErrMessageTooLarge) ||
		strings.Contains(err.Error(), "request body too large") {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}

// writeSubmissionError answers with {error, details}. Details never carry
// local paths or wrapped upstream messages.
func (h *Handler) writeSubmissionError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var missing *validators.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		log.Info().Strs("missing", missing.Missing).Msg("submission rejected")
		_, _ = utils.WriteError(w, http.StatusBadRequest, app.MsgFieldsRequired, missing.Required)

	case isTooLarge(err):
		log.Info().Err(err).Msg("submission rejected")
		_, _ = utils.WriteError(w, h.form.oversizeStatus, app.MsgFileTooLarge,
			fmt.Sprintf("File size must be less than %s", humanSize(h.form.maxFileSize)))

	case errors.Is(err, validators.ErrUnsupportedFileType):
		log.Info().Err(err).Msg("submission rejected")
		_, _ = utils.WriteError(w, http.StatusBadRequest, app.MsgOnlyImages,
			fmt.Sprintf("Allowed extensions: %s", strings.Join(h.form.allowedExtensions, ", ")))

	case errors.Is(err, validators.ErrFileRequired):
		log.Info().Err(err).Msg("submission rejected")
		_, _ = utils.WriteError(w, http.StatusBadRequest, app.MsgPhotoRequired,
			fmt.Sprintf("No file was uploaded in field %q", h.form.fileField))

	case errors.Is(err, ErrUnsupportedContentType):
		_, _ = utils.WriteError(w, http.StatusUnsupportedMediaType, app.MsgUnsupportedContentType,
			"Use multipart/form-data, application/x-www-form-urlencoded or application/json")

	case errors.Is(err, ErrInvalidForm):
		_, _ = utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidForm, nil)

	case errors.Is(err, service.ErrSendText):
		log.Err(err).Msg("submission was not relayed")
		_, _ = utils.WriteError(w, statusFromError(err), app.MsgSubmissionFailed, upstreamReason(err))

	default:
		log.Err(err).Msg("submission failed")
		_, _ = utils.WriteError(w, statusFromError(err), app.MsgSubmissionFailed, nil)
	}
}

func humanSize(size int64) string {
	switch {
	case size >= 1<<20 && size%(1<<20) == 0:
		return fmt.Sprintf("%dMB", size>>20)
	case size >= 1<<10 && size%(1<<10) == 0:
		return fmt.Sprintf("%dKB", size>>10)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
