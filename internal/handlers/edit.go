package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go-docstudio/internal/pdf"
)

// anchorFor maps a position description onto a codec anchor, matching
// the lenient substring behavior of the original API: "bottom-center",
// "top-right", plain "center", and so on.
func anchorFor(position string) string {
	p := strings.ToLower(position)
	if p == "" || p == "center" {
		return "c"
	}
	row := "b"
	if strings.Contains(p, "top") {
		row = "t"
	}
	col := "l"
	if strings.Contains(p, "center") {
		col = "c"
	}
	if strings.Contains(p, "right") {
		col = "r"
	}
	return row + col
}

// AddWatermark godoc
// @Summary      Watermark a PDF
// @Description  Stamps a text watermark across every page
// @Tags         edit
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file      formData  file    true   "PDF file"
// @Param        text      formData  string  false  "Watermark text (default CONFIDENTIAL)"
// @Param        opacity   formData  number  false  "Opacity in (0, 1] (default 0.3)"
// @Param        position  formData  string  false  "center, top-left, ..., bottom-right (default center)"
// @Success      200  {file}    file               "Watermarked PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/watermark [post]
func (h *APIHandler) AddWatermark(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	text := formValue(r, "text", "CONFIDENTIAL")
	opacity, err := strconv.ParseFloat(formValue(r, "opacity", "0.3"), 64)
	if err != nil || opacity <= 0 || opacity > 1 {
		h.fail(w, badRequest("Opacity must be a number between 0 and 1"))
		return
	}
	anchor := anchorFor(r.FormValue("position"))

	h.runFileOp(w, r, fileOp{
		kind:        "watermarked",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform: func(inputPath, outputPath string) error {
			return pdf.Watermark(inputPath, outputPath, text, opacity, anchor)
		},
	})
}

// AddPageNumbers godoc
// @Summary      Add page numbers
// @Description  Stamps a running page number on every page
// @Tags         edit
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file        formData  file    true   "PDF file"
// @Param        position    formData  string  false  "top/bottom + left/center/right (default bottom-center)"
// @Param        start_from  formData  int     false  "First page's number (default 1)"
// @Success      200  {file}    file               "Paginated PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/add-page-numbers [post]
func (h *APIHandler) AddPageNumbers(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	startFrom, err := strconv.Atoi(formValue(r, "start_from", "1"))
	if err != nil || startFrom < 0 {
		h.fail(w, badRequest("start_from must be a non-negative number"))
		return
	}
	anchor := anchorFor(formValue(r, "position", "bottom-center"))

	h.runFileOp(w, r, fileOp{
		kind:        "numbered",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform: func(inputPath, outputPath string) error {
			return pdf.AddPageNumbers(inputPath, outputPath, anchor, startFrom)
		},
	})
}
