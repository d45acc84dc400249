// attachment_service.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/qms/internal/models"
	"github.com/localnerve/qms/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// DefaultMaxUploadBytes is the attachment size limit, 25 MiB
	DefaultMaxUploadBytes int64 = 25 << 20
	// DefaultSignedURLTTL is how long a download link stays valid
	DefaultSignedURLTTL = time.Hour
)

// AllowedMimeTypes are the attachment content types accepted for upload
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ErrFileRejected is returned for uploads outside the type allow-list or over the size limit
var ErrFileRejected = fmt.Errorf("%w: file rejected", ErrValidation)

// AttachmentService stores complaint attachments in the object store and their metadata in the database
type AttachmentService struct {
	db       *gorm.DB
	store    storage.ObjectStore
	log      *zap.Logger
	maxBytes int64
	ttl      time.Duration
}

// AttachmentOptions tunes upload limits and link lifetime. Zero values take the defaults.
type AttachmentOptions struct {
	MaxUploadBytes int64
	SignedURLTTL   time.Duration
}

// NewAttachmentService creates an AttachmentService
func NewAttachmentService(db *gorm.DB, store storage.ObjectStore, log *zap.Logger, opts AttachmentOptions) *AttachmentService {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.SignedURLTTL <= 0 {
		opts.SignedURLTTL = DefaultSignedURLTTL
	}
	return &AttachmentService{
		db:       db,
		store:    store,
		log:      log,
		maxBytes: opts.MaxUploadBytes,
		ttl:      opts.SignedURLTTL,
	}
}

// Upload is one file received from a client
type Upload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Open         func() (io.ReadCloser, error)
}

// UploadedAttachment is the stored metadata plus a fresh download link
type UploadedAttachment struct {
	models.Attachment
	DownloadURL string `json:"download_url"`
}

// DownloadLink is a freshly minted signed URL for one attachment
type DownloadLink struct {
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MaxUploadBytes returns the configured size limit
func (s *AttachmentService) MaxUploadBytes() int64 {
	return s.maxBytes
}

// CheckUpload applies the type allow-list and size limit
func (s *AttachmentService) CheckUpload(u Upload) (string, error) {
	mediaType, _, err := mime.ParseMediaType(u.ContentType)
	if err != nil || !slices.Contains(AllowedMimeTypes, strings.ToLower(mediaType)) {
		return "", fmt.Errorf("%w: content type %q is not allowed", ErrFileRejected, u.ContentType)
	}
	if u.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrFileRejected, u.Size, s.maxBytes)
	}
	return strings.ToLower(mediaType), nil
}

// Upload writes the file to the object store and then records its metadata.
// Nothing reaches the store unless the file passes CheckUpload. A metadata
// insert failure leaves the object in place.
func (s *AttachmentService) Upload(ctx context.Context, complaintID string, u Upload, actorID string) (*UploadedAttachment, error) {
	mediaType, err := s.CheckUpload(u)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	ok, err := complaintExists(db, complaintID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("complaint")
	}

	data, err := s.read(u)
	if err != nil {
		return nil, err
	}

	key := complaintID + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(u.OriginalName))
	if err := s.store.Put(ctx, key, mediaType, data); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	attachment := models.Attachment{
		ComplaintID:  complaintID,
		Filename:     key,
		OriginalName: filepath.Base(u.OriginalName),
		StoragePath:  s.store.URI(key),
		FileSize:     int64(len(data)),
		MimeType:     mediaType,
		UploadedBy:   emptyToNil(&actorID),
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attachment).Error; err != nil {
			return err
		}
		return recordAudit(tx, attachment.TableName(), attachment.ID, models.AuditInsert, attachment.UploadedBy, nil, attachment)
	})
	if err != nil {
		s.log.Error("attachment metadata insert failed, object left in store",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	url, err := s.store.SignedURL(ctx, key, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign download url: %w", err)
	}

	return &UploadedAttachment{Attachment: attachment, DownloadURL: url}, nil
}

func (s *AttachmentService) read(u Upload) ([]byte, error) {
	if u.Open == nil {
		return nil, fmt.Errorf("%w: no file content", ErrFileRejected)
	}
	rc, err := u.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(rc, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if n > s.maxBytes {
		return nil, fmt.Errorf("%w: upload exceeds the %d byte limit", ErrFileRejected, s.maxBytes)
	}
	return buf.Bytes(), nil
}

func (s *AttachmentService) find(ctx context.Context, complaintID, attachmentID string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := s.db.WithContext(ctx).
		Where("id = ? AND complaint_id = ?", attachmentID, complaintID).
		First(&attachment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("attachment")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load attachment: %w", err)
	}
	return &attachment, nil
}

// List returns the attachments of a complaint oldest first
func (s *AttachmentService) List(ctx context.Context, complaintID string) ([]models.Attachment, error) {
	db := s.db.WithContext(ctx)
	ok, err := complaintExists(db, complaintID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("complaint")
	}

	attachments := []models.Attachment{}
	if err := db.Where("complaint_id = ?", complaintID).Order("created_at ASC").Find(&attachments).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// DownloadURL mints a new signed URL. Links are never stored.
func (s *AttachmentService) DownloadURL(ctx context.Context, complaintID, attachmentID string) (*DownloadLink, error) {
	attachment, err := s.find(ctx, complaintID, attachmentID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.ttl)
	url, err := s.store.SignedURL(ctx, attachment.Filename, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign download url: %w", err)
	}

	return &DownloadLink{
		URL:       url,
		Filename:  attachment.OriginalName,
		ExpiresAt: expiresAt,
	}, nil
}

// Delete removes the object on a best-effort basis, then the metadata row.
// Only a missing metadata row is an error.
func (s *AttachmentService) Delete(ctx context.Context, complaintID, attachmentID, actorID string) error {
	attachment, err := s.find(ctx, complaintID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, attachment.Filename); err != nil {
		s.log.Warn("attachment object delete failed",
			zap.String("key", attachment.Filename),
			zap.Error(err),
		)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Attachment{}, "id = ?", attachment.ID).Error; err != nil {
			return err
		}
		return recordAudit(tx, attachment.TableName(), attachment.ID, models.AuditDelete, emptyToNil(&actorID), attachment, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
