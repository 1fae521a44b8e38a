package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-docstudio/internal/pdf"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".tif": true, ".tiff": true, ".webp": true,
}

// PDFToImages godoc
// @Summary      Render a PDF page as an image
// @Description  Rasterizes the first page at the requested DPI
// @Tags         convert
// @Accept       multipart/form-data
// @Produce      image/png
// @Param        file    formData  file    true   "PDF file"
// @Param        format  formData  string  false  "png or jpeg (default png)"
// @Param        dpi     formData  int     false  "Render resolution, 72-600 (default 150)"
// @Success      200  {file}    file               "Rendered image"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/pdf-to-images [post]
func (h *APIHandler) PDFToImages(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	format := strings.ToLower(formValue(r, "format", "png"))
	if format != "png" && format != "jpeg" && format != "jpg" {
		h.fail(w, badRequest("Format must be png or jpeg"))
		return
	}
	dpi, err := strconv.Atoi(formValue(r, "dpi", "150"))
	if err != nil || dpi < 72 || dpi > 600 {
		h.fail(w, badRequest("DPI must be a number between 72 and 600"))
		return
	}

	inputPath, _, err := h.stagePDF(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	defer h.Store.Remove(inputPath)

	data, err := pdf.RenderFirstPage(inputPath, format, dpi)
	if err != nil {
		h.fail(w, fmt.Errorf("render document: %w", err))
		return
	}
	outputPath, err := h.Store.Persist("page", bytes.NewReader(data), "."+format)
	if err != nil {
		h.fail(w, err)
		return
	}
	contentType := "image/png"
	if format != "png" {
		contentType = "image/jpeg"
	}
	h.sendArtifact(w, r, outputPath, contentType, "page_1."+format)
}

// ImagesToPDF godoc
// @Summary      Convert images to a PDF
// @Description  Builds a single document with one page per uploaded image
// @Tags         convert
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        files  formData  file  true  "Image files (jpeg, png, tiff, webp)"
// @Success      200  {file}    file               "Generated PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/images-to-pdf [post]
func (h *APIHandler) ImagesToPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	if len(r.MultipartForm.File["files"]) == 0 {
		h.fail(w, badRequest("No valid images provided"))
		return
	}
	staged, cleanup, err := h.stageAll(r, imageExts, func(name string) string {
		return fmt.Sprintf("File %s is not a valid image", name)
	})
	if err != nil {
		h.fail(w, err)
		return
	}
	defer cleanup()

	outputPath := h.Store.Allocate("images_to_pdf", ".pdf")
	if err := pdf.ImportImages(staged, outputPath); err != nil {
		h.Store.Remove(outputPath)
		h.fail(w, fmt.Errorf("import images: %w", err))
		return
	}
	h.sendArtifact(w, r, outputPath, "application/pdf", "")
}
