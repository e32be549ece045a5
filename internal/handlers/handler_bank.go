package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/dto"
	"github.com/golder/bank_statements_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// latestStatementID selects the most recent statement of a journal.
const latestStatementID = "latest"

// bankHandler serves the public read-only bank endpoints.
type bankHandler struct {
	journalService    portssvc.JournalReaderSvc
	statementService  portssvc.StatementReaderSvc
	attachmentService portssvc.AttachmentSvc
}

func newBankHandler(journalService portssvc.JournalReaderSvc, statementService portssvc.StatementReaderSvc, attachmentService portssvc.AttachmentSvc) *bankHandler {
	return &bankHandler{
		journalService:    journalService,
		statementService:  statementService,
		attachmentService: attachmentService,
	}
}

// registerBankRoutes mounts the public endpoints on rg.
func registerBankRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBankHandler(services.Journal, services.Statement, services.Attachment)

	rg.GET("/balances", h.listBalances)
	rg.GET("/journals", h.listJournals)
	rg.GET("/statements", h.listStatements)
	rg.GET("/statements/image/:attachmentID", h.getImage)
	rg.GET("/statements/:slug", h.listStatementsBySlug)
	rg.GET("/statements/:slug/:statementID", h.getStatement)
}

// listBalances godoc
// @Summary Latest balance of every public journal
// @Description Returns the ending balance of the most recent statement of each public journal and their total
// @Tags bank
// @Produce json
// @Success 200 {object} dto.BalancesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank/balances [get]
func (h *bankHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.journalService.ListBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalancesResponse(report))
}

// listJournals godoc
// @Summary Public journals
// @Description Lists every public journal with its slug and latest statement
// @Tags bank
// @Produce json
// @Success 200 {object} dto.JournalsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank/journals [get]
func (h *bankHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overviews, err := h.journalService.ListPublicJournals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalsResponse(overviews))
}

// listStatements godoc
// @Summary Public statements
// @Description Lists all statements of public journals, newest first
// @Tags bank
// @Produce json
// @Success 200 {object} dto.StatementsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank/statements [get]
func (h *bankHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statements, err := h.statementService.ListPublicStatements(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list statements")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementsResponse(statements))
}

// listStatementsBySlug godoc
// @Summary Statements of one journal
// @Description Lists the statements of a public journal, newest first, with their images
// @Tags bank
// @Produce json
// @Param slug path string true "Journal slug"
// @Success 200 {object} dto.JournalStatementsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank/statements/{slug} [get]
func (h *bankHandler) listStatementsBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	views, err := h.statementService.ListStatementsBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, logger, err, "Failed to list statements by slug")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalStatementsResponse(slug, views))
}

// getStatement godoc
// @Summary One statement
// @Description Returns the header, lines and images of a statement. Use "latest" as id for the most recent one.
// @Tags bank
// @Produce json
// @Param slug path string true "Journal slug"
// @Param statementID path string true "Statement ID or latest"
// @Success 200 {object} dto.StatementDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank/statements/{slug}/{statementID} [get]
func (h *bankHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	if c.Param("statementID") == latestStatementID {
		view, err := h.statementService.GetLatestStatement(c.Request.Context(), slug)
		if err != nil {
			respondError(c, logger, err, "Failed to get latest statement")
			return
		}
		c.JSON(http.StatusOK, dto.ToStatementDetailResponse(view))
		return
	}

	statementID, ok := parseID(c, "statementID")
	if !ok {
		respondNotFound(c)
		return
	}

	view, err := h.statementService.GetStatement(c.Request.Context(), slug, statementID)
	if err != nil {
		respondError(c, logger, err, "Failed to get statement")
		return
	}
	logger.Debug("Statement retrieved", slog.Int64("statement_id", statementID))
	c.JSON(http.StatusOK, dto.ToStatementDetailResponse(view))
}

// getImage godoc
// @Summary Statement image
// @Description Returns the raw bytes of an image attached to a statement of a public journal
// @Tags bank
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param attachmentID path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bank/statements/image/{attachmentID} [get]
func (h *bankHandler) getImage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	attachmentID, ok := parseID(c, "attachmentID")
	if !ok {
		respondNotFound(c)
		return
	}

	attachment, err := h.attachmentService.GetPublicImage(c.Request.Context(), attachmentID)
	if err != nil {
		respondError(c, logger, err, "Failed to get statement image")
		return
	}
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Security-Policy", "default-src 'none'")
	c.Data(http.StatusOK, attachment.MimeType, attachment.Data)
}
