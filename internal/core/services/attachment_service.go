package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/golder/bank_statements_api/internal/apperrors"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portsrepo "github.com/golder/bank_statements_api/internal/core/ports/repositories"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/utils/images"
)

// webBaseURLParam is the config_parameters key holding the public base URL.
const webBaseURLParam = "web.base.url"

// imageRoute is appended to the base URL to build attachment links.
const imageRoute = "/bank/statements/image/"

type attachmentService struct {
	BaseService
	attachmentRepo  portsrepo.AttachmentRepositoryFacade
	statementRepo   portsrepo.StatementReader
	journalRepo     portsrepo.JournalReader
	configRepo      portsrepo.ConfigParamReader
	fallbackBaseURL string
}

// NewAttachmentService creates a new AttachmentSvc.
func NewAttachmentService(
	attachmentRepo portsrepo.AttachmentRepositoryFacade,
	statementRepo portsrepo.StatementReader,
	journalRepo portsrepo.JournalReader,
	configRepo portsrepo.ConfigParamReader,
	fallbackBaseURL string,
) portssvc.AttachmentSvc {
	return &attachmentService{
		attachmentRepo:  attachmentRepo,
		statementRepo:   statementRepo,
		journalRepo:     journalRepo,
		configRepo:      configRepo,
		fallbackBaseURL: strings.TrimRight(fallbackBaseURL, "/"),
	}
}

var _ portssvc.AttachmentSvc = (*attachmentService)(nil)

// GetPublicImage returns image bytes only for statement images of public journals.
func (s *attachmentService) GetPublicImage(ctx context.Context, attachmentID int64) (*domain.Attachment, error) {
	if attachmentID <= 0 {
		return nil, apperrors.ErrNotFound
	}

	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment.Owner.Kind != domain.OwnerStatement || !attachment.IsImage() {
		return nil, apperrors.ErrNotFound
	}

	statement, err := s.statementRepo.FindStatementByID(ctx, attachment.Owner.ID)
	if err != nil {
		return nil, err
	}
	journal, err := s.journalRepo.FindJournalByID(ctx, statement.JournalID)
	if err != nil {
		return nil, err
	}
	if !journal.PublicCanView {
		return nil, apperrors.ErrNotFound
	}
	return attachment, nil
}

// baseURL prefers the stored web.base.url parameter over the configured fallback.
func (s *attachmentService) baseURL(ctx context.Context) string {
	value, err := s.configRepo.GetParam(ctx, webBaseURLParam)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read base URL parameter, using configured fallback")
		}
		return s.fallbackBaseURL
	}
	if value = strings.TrimRight(strings.TrimSpace(value), "/"); value == "" {
		return s.fallbackBaseURL
	}
	return value
}

// ImageURL builds the public URL of an attachment.
func ImageURL(baseURL string, attachmentID int64) string {
	return fmt.Sprintf("%s%s%d", baseURL, imageRoute, attachmentID)
}

// ImageLinks returns image metadata and URLs keyed by statement id.
// Callers pass ids of statements they already checked to be public.
func (s *attachmentService) ImageLinks(ctx context.Context, statementIDs []int64) (map[int64][]domain.AttachmentLink, error) {
	links := make(map[int64][]domain.AttachmentLink, len(statementIDs))
	if len(statementIDs) == 0 {
		return links, nil
	}

	byOwner, err := s.attachmentRepo.ListImageAttachmentsByOwners(ctx, domain.OwnerStatement, statementIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statement images")
		return nil, err
	}
	if len(byOwner) == 0 {
		return links, nil
	}

	base := s.baseURL(ctx)
	for ownerID, attachments := range byOwner {
		for _, a := range attachments {
			if !a.IsImage() {
				continue
			}
			links[ownerID] = append(links[ownerID], domain.AttachmentLink{
				AttachmentID: a.AttachmentID,
				Description:  a.Description,
				URL:          ImageURL(base, a.AttachmentID),
			})
		}
	}
	return links, nil
}

// UploadStatementImage stores an image attachment for a statement.
// The content type is detected from the bytes, not taken from the client.
func (s *attachmentService) UploadStatementImage(ctx context.Context, statementID int64, name, description string, data []byte, userID string) (*domain.Attachment, error) {
	if err := validateStatementID(statementID); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: attachment is empty", apperrors.ErrValidation)
	}

	mimeType := mimetype.Detect(data).String()
	if !domain.IsImageMimeType(mimeType) {
		return nil, fmt.Errorf("%w: attachment is not an image (%s)", apperrors.ErrValidation, mimeType)
	}
	if domain.IsScriptableImageMimeType(mimeType) {
		return nil, fmt.Errorf("%w: %s images are not accepted", apperrors.ErrValidation, mimeType)
	}

	if _, err := s.statementRepo.FindStatementByID(ctx, statementID); err != nil {
		return nil, err
	}

	data, resized, err := images.Normalize(data, mimeType, images.MaxWidth)
	if err != nil {
		if errors.Is(err, images.ErrCorrupt) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		s.LogError(ctx, err, "Failed to normalize statement image", slog.Int64("statement_id", statementID))
		return nil, err
	}
	if resized {
		s.LogDebug(ctx, "Statement image scaled down", slog.Int64("statement_id", statementID), slog.Int("max_width", images.MaxWidth))
	}

	attachment := domain.Attachment{
		Owner:       domain.OwnerRef{Kind: domain.OwnerStatement, ID: statementID},
		Name:        name,
		Description: description,
		MimeType:    mimeType,
		Data:        data,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   userID,
	}
	id, err := s.attachmentRepo.SaveAttachment(ctx, attachment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save statement image", slog.Int64("statement_id", statementID))
		return nil, err
	}
	attachment.AttachmentID = id

	s.LogInfo(ctx, "Statement image uploaded",
		slog.Int64("statement_id", statementID),
		slog.Int64("attachment_id", id),
		slog.String("mimetype", mimeType))
	return &attachment, nil
}
