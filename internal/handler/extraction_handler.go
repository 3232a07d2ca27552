package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/export"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/service"
)

// ExtractionHandler handles transcript extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// Extract handles POST /api/extract
// @Summary Extract an E025 document
// @Description Run one model extraction over a transcript and return the validated E025 document with source references
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body domain.TranscriptInput true "Transcript segments"
// @Success 200 {object} Response{data=domain.ExtractionResult} "Extraction result"
// @Failure 400 {object} ErrorResponseBody "Invalid request body"
// @Failure 422 {object} ErrorResponseBody "Invalid transcript or model output"
// @Failure 429 {object} ErrorResponseBody "Provider rate limit"
// @Failure 500 {object} ErrorResponseBody "Provider not configured or extraction failed"
// @Router /extract [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var input domain.TranscriptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object with a transcript array")
		return
	}

	result, err := h.extractionService.Extract(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Schema handles GET /api/schema
// @Summary Get the output schema
// @Description Return the JSON Schema of the extraction result; strict=true returns the provider-strict variant
// @Tags extraction
// @Produce json
// @Param strict query bool false "Return the strict schema"
// @Success 200 {object} Response{data=object} "JSON Schema"
// @Failure 400 {object} ErrorResponseBody "Invalid strict flag"
// @Router /schema [get]
func (h *ExtractionHandler) Schema(c *gin.Context) {
	strict := false
	if s := c.Query("strict"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "strict must be true or false")
			return
		}
		strict = v
	}

	var (
		tree map[string]any
		err  error
	)
	if strict {
		tree, err = schema.StrictDocument()
	} else {
		tree, err = schema.Document()
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tree)
}

// Export handles POST /api/export
// @Summary Export an extraction result
// @Description Flatten an extraction result into rows and download it as CSV or XLSX
// @Tags extraction
// @Accept json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Param name query string false "Base name for the downloaded file"
// @Param request body domain.ExtractionResult true "Extraction result"
// @Success 200 {file} file "Exported rows"
// @Failure 400 {object} ErrorResponseBody "Invalid body or unsupported format"
// @Router /export [post]
func (h *ExtractionHandler) Export(c *gin.Context) {
	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportCSV)))
	contentType, ok := domain.AllowedExportFormats[format]
	if !ok {
		HandleError(c, domain.ErrUnsupportedExportFormat)
		return
	}

	var result domain.ExtractionResult
	if err := c.ShouldBindJSON(&result); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be an extraction result")
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, export.Rows(&result)); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(c.Query("name"), format, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
