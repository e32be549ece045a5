package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/golder/bank_statements_api/internal/core/domain"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/golder/bank_statements_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImageSize bounds statement image uploads.
const maxImageSize = 5 << 20

// adminHandler serves the authenticated back-office endpoints.
type adminHandler struct {
	journalService    portssvc.JournalWriterSvc
	statementService  portssvc.StatementWriterSvc
	reconciler        portssvc.ReconcilerSvc
	attachmentService portssvc.AttachmentSvc
}

func newAdminHandler(services *portssvc.ServiceContainer) *adminHandler {
	return &adminHandler{
		journalService:    services.Journal,
		statementService:  services.Statement,
		reconciler:        services.Reconciler,
		attachmentService: services.Attachment,
	}
}

// registerAdminRoutes mounts the back-office endpoints on an authenticated group.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services)

	journals := rg.Group("/journals/:journalID")
	{
		journals.PUT("/visibility", h.setVisibility)
		journals.POST("/statements", h.createStatement)
	}

	statements := rg.Group("/statements/:statementID")
	{
		statements.PUT("", h.updateStatement)
		statements.POST("/sort", h.runReconcileAction(h.reconciler.ReorderLines, "sort"))
		statements.POST("/align", h.runReconcileAction(h.reconciler.AlignBalances, "align"))
		statements.POST("/reconcile", h.runReconcileAction(h.reconciler.Reconcile, "reconcile"))
		statements.POST("/attachments", h.uploadImage)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Status: dto.StatusError, Error: msg})
}

// operator returns the authenticated operator id or aborts with 401.
func operator(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Status: dto.StatusError, Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// setVisibility godoc
// @Summary Set journal visibility
// @Description Toggles whether a journal is exposed on the public endpoints and sets its slug
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param journalID path int true "Journal ID"
// @Param request body dto.SetJournalVisibilityRequest true "Visibility"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/journals/{journalID}/visibility [put]
func (h *adminHandler) setVisibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	journalID, ok := parseID(c, "journalID")
	if !ok {
		badRequest(c, "Invalid journal ID")
		return
	}

	var req dto.SetJournalVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind visibility request", slog.String("error", err.Error()))
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, ok := operator(c, logger)
	if !ok {
		return
	}

	journal, err := h.journalService.SetVisibility(c.Request.Context(), journalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to set journal visibility")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// createStatement godoc
// @Summary Create a statement
// @Description Creates a statement with its lines, then orders the lines and aligns the balances
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param journalID path int true "Journal ID"
// @Param request body dto.StatementRequest true "Statement"
// @Success 201 {object} dto.ReconcileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/journals/{journalID}/statements [post]
func (h *adminHandler) createStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	journalID, ok := parseID(c, "journalID")
	if !ok {
		badRequest(c, "Invalid journal ID")
		return
	}

	var req dto.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind statement request", slog.String("error", err.Error()))
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, ok := operator(c, logger)
	if !ok {
		return
	}

	result, err := h.statementService.CreateStatement(c.Request.Context(), journalID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create statement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReconcileResponse(result))
}

// updateStatement godoc
// @Summary Update a statement
// @Description Replaces a statement header and lines, then orders the lines and aligns the balances
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param statementID path int true "Statement ID"
// @Param request body dto.StatementRequest true "Statement"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/statements/{statementID} [put]
func (h *adminHandler) updateStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statementID, ok := parseID(c, "statementID")
	if !ok {
		badRequest(c, "Invalid statement ID")
		return
	}

	var req dto.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind statement request", slog.String("error", err.Error()))
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, ok := operator(c, logger)
	if !ok {
		return
	}

	result, err := h.statementService.UpdateStatement(c.Request.Context(), statementID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconcileResponse(result))
}

// reconcileAction is one of the ReconcilerSvc operations.
type reconcileAction func(ctx context.Context, statementID int64) (*domain.ReconcileResult, error)

// runReconcileAction godoc
// @Summary Run a reconcile action
// @Description sort orders lines by date, align recomputes balances, reconcile does both
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param statementID path int true "Statement ID"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/statements/{statementID}/sort [post]
// @Router /admin/statements/{statementID}/align [post]
// @Router /admin/statements/{statementID}/reconcile [post]
func (h *adminHandler) runReconcileAction(action reconcileAction, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("action", name))

		statementID, ok := parseID(c, "statementID")
		if !ok {
			badRequest(c, "Invalid statement ID")
			return
		}

		result, err := action(c.Request.Context(), statementID)
		if err != nil {
			respondError(c, logger, err, "Reconcile action failed")
			return
		}
		logger.Info("Reconcile action done",
			slog.Int64("statement_id", statementID),
			slog.Bool("mismatch", result.Mismatch))
		c.JSON(http.StatusOK, dto.ToReconcileResponse(result))
	}
}

// uploadImage godoc
// @Summary Upload a statement image
// @Description Stores an image for a statement. The content type is detected from the file bytes.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param statementID path int true "Statement ID"
// @Param file formData file true "Image file"
// @Param description formData string false "Description"
// @Success 201 {object} dto.AttachmentUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/statements/{statementID}/attachments [post]
func (h *adminHandler) uploadImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statementID, ok := parseID(c, "statementID")
	if !ok {
		badRequest(c, "Invalid statement ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "A file form field is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		badRequest(c, fmt.Sprintf("File exceeds %d bytes", maxImageSize))
		return
	}

	userID, ok := operator(c, logger)
	if !ok {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, logger, err, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		respondError(c, logger, err, "Failed to read uploaded file")
		return
	}
	if len(data) > maxImageSize {
		badRequest(c, fmt.Sprintf("File exceeds %d bytes", maxImageSize))
		return
	}

	attachment, err := h.attachmentService.UploadStatementImage(c.Request.Context(), statementID, fileHeader.Filename, c.PostForm("description"), data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to store statement image")
		return
	}
	c.JSON(http.StatusCreated, dto.AttachmentUploadResponse{
		Status:   dto.StatusOK,
		ID:       attachment.AttachmentID,
		MimeType: attachment.MimeType,
	})
}
