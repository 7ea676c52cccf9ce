package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/logger"
	"github.com/youruser/idcardgen/internal/render"
)

// Version is reported by the info endpoint.
const Version = "1.7.0"

const (
	academicFilename = "student_id_card.png"
	schoolFilename   = "school_id_card.png"

	defaultQRSize         = 400
	defaultBarcodeWidth   = 400
	defaultBarcodeHeight  = 120
	maxBarcodeSide        = 2000
	maxBarcodePayloadSize = 4 << 10
)

// Handler serves the card endpoints.
type Handler struct {
	renderer *render.Renderer
}

func NewHandler(r *render.Renderer) *Handler {
	return &Handler{renderer: r}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindParams fills dst from the query string and, for requests with a body,
// from the JSON or form payload on top.
func bindParams(c *gin.Context, dst any) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return err
	}
	if c.Request.Method == http.MethodGet || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBind(dst)
}

func badParams(c *gin.Context, err error) {
	logger.WarnCtx(c.Request.Context(), "invalid request parameters", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters", "message": err.Error()})
}

func renderFailed(c *gin.Context, err error) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ID card", "message": err.Error()})
}

func writeEnvelope(c *gin.Context, card *render.Card) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"type":    "raw-bytes",
		"format":  "image/png",
		"size":    card.Size(),
		"data":    base64.StdEncoding.EncodeToString(card.PNG),
	})
}

func writePNG(c *gin.Context, card *render.Card, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", card.PNG)
}

// generateAcademic renders an academic card. rawByte=1 selects the JSON
// envelope; anything else returns the PNG.
func (h *Handler) generateAcademic(c *gin.Context) {
	var p academicParams
	if err := bindParams(c, &p); err != nil {
		badParams(c, err)
		return
	}
	if p.Name.String() == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name parameter is required"})
		return
	}

	ctx := c.Request.Context()
	card, err := h.renderer.RenderAcademic(ctx, p.request(ctx))
	if errors.Is(err, render.ErrNameRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name parameter is required"})
		return
	}
	if err != nil {
		renderFailed(c, err)
		return
	}
	logger.DebugCtx(ctx, "academic card rendered", zap.Int("bytes", card.Size()))

	if p.RawByte.Is(1) {
		writeEnvelope(c, card)
		return
	}
	writePNG(c, card, academicFilename)
}

// generateSchool renders a school card on a hand background. The envelope
// is the default; rawByte=2 returns the PNG.
func (h *Handler) generateSchool(c *gin.Context) {
	var p schoolParams
	if err := bindParams(c, &p); err != nil {
		badParams(c, err)
		return
	}

	ctx := c.Request.Context()
	card, err := h.renderer.RenderSchool(ctx, p.request(ctx))
	if err != nil {
		renderFailed(c, err)
		return
	}
	logger.DebugCtx(ctx, "school card rendered", zap.Int("bytes", card.Size()))

	if p.RawByte.Is(2) {
		writePNG(c, card, schoolFilename)
		return
	}
	writeEnvelope(c, card)
}

// barcode returns a Code128 (default) or QR PNG for the "text" query
// parameter, or for the raw POST body when the parameter is absent.
func (h *Handler) barcode(c *gin.Context) {
	text := c.Query("text")
	if text == "" && c.Request.Method == http.MethodPost && c.Request.Body != nil {
		b, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBarcodePayloadSize))
		if err != nil {
			badParams(c, err)
			return
		}
		text = strings.TrimSpace(string(b))
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text parameter is required"})
		return
	}

	var (
		img image.Image
		err error
	)
	switch strings.ToLower(c.Query("type")) {
	case "qr":
		img, err = imagepkg.EncodeQR(text, querySide(c, "size", defaultQRSize))
	default:
		img, err = imagepkg.EncodeBarcode(text,
			querySide(c, "width", defaultBarcodeWidth),
			querySide(c, "height", defaultBarcodeHeight))
	}
	if err != nil {
		logger.WarnCtx(c.Request.Context(), "barcode encoding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate barcode", "message": err.Error()})
		return
	}
	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate barcode", "message": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// querySide reads a positive pixel dimension, using def when the value is
// missing or out of range.
func querySide(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 || v > maxBarcodeSide {
		return def
	}
	return v
}

func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "ID Card Generator API",
		"version": Version,
		"endpoints": gin.H{
			"generate": "/generate (GET or POST)",
			"school":   "/school/generate (GET or POST)",
			"barcode":  "/barcode?text=...&type=code128|qr",
			"health":   "/health",
		},
		"parameters": gin.H{
			"generate": gin.H{
				"name":          "required - Student name",
				"dob":           "optional - Date of birth (default: 2001-01-25)",
				"id":            "optional - ID format (1=numeric, 2=alphanumeric, default: 1)",
				"id_value":      "optional - Fixed ID printed instead of a generated one",
				"academicyear":  "optional - Academic year (default: 2025-2028)",
				"opacity":       "optional - Center icon opacity (default: 0.1)",
				"country":       "optional - Country index (default: 0)",
				"clgName":       "optional - Custom college name",
				"clgAdd":        "Custom college address | Required if you want to use clgName",
				"principal":     "optional - Principal name (default: Osama Aziz)",
				"template":      "optional - Template (1 or 2, default: 1)",
				"style":         "optional - Style (1 to 6, default: 2)",
				"student_photo": "optional - Student photo URL, asset path or data URI",
				"college_logo":  "optional - College logo URL, asset path or data URI",
				"issue_date":    "optional - Issue date (default: 15 AUG 2025)",
				"issue_txt":     "optional - Issue text (default: Date Of Issue)",
				"exp_date":      "optional - Expiry date (default: 31 DEC 2025)",
				"exp_txt":       "optional - Expiry text (default: Card Expires)",
				"rawByte":       "2 (Default) - Normal PNG Image. 1 - Show Raw image byte Data.",
			},
			"school": gin.H{
				"school_name": "optional - School name",
				"name":        "optional - Student name",
				"class":       "optional - Class and section",
				"roll":        "optional - Roll number",
				"dob":         "optional - Date of birth",
				"blood_group": "optional - Blood group",
				"phone":       "optional - Contact phone",
				"guardian":    "optional - Guardian name",
				"address":     "optional - Address (first 30 characters are printed)",
				"session":     "optional - Session label",
				"id":          "optional - ID format (1=numeric, 2=alphanumeric, default: 1)",
				"id_value":    "optional - Fixed ID, also encoded in the barcode",
				"photo":       "optional - Photo URL, asset path or data URI",
				"logo":        "optional - Logo URL, asset path or data URI",
				"opacity":     "optional - Center icon opacity (default: 0.1)",
				"style":       "optional - Style (1 to 6, default: 1)",
				"hand":        "optional - Hand background (1 or 2, default: 1)",
				"rawByte":     "1 (Default) - Raw image byte Data. 2 - Normal PNG Image.",
			},
		},
	})
}
