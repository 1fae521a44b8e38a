package handlers

import (
	"net/http"

	"go-docstudio/internal/pdf"
)

// ExtractText godoc
// @Summary      Extract text from a PDF
// @Description  Returns the plain text content of every page
// @Tags         inspect
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file"
// @Success      200  {object}  map[string]interface{}  "{ filename, total_pages, pages }"
// @Failure      400  {object}  map[string]string       "Validation error"
// @Failure      500  {object}  map[string]string       "Processing error"
// @Router       /api/extract-text [post]
func (h *APIHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	inputPath, originalName, err := h.stagePDF(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	defer h.Store.Remove(inputPath)

	pages, err := pdf.ExtractText(inputPath)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"filename":    originalName,
		"total_pages": len(pages),
		"pages":       pages,
	})
}

// GetMetadata godoc
// @Summary      Read PDF metadata
// @Description  Returns page count, encryption flag and information dictionary fields
// @Tags         inspect
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF file"
// @Success      200  {object}  map[string]interface{}  "{ filename, total_pages, is_encrypted, metadata }"
// @Failure      400  {object}  map[string]string       "Validation error"
// @Failure      500  {object}  map[string]string       "Processing error"
// @Router       /api/get-metadata [post]
func (h *APIHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	inputPath, originalName, err := h.stagePDF(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	defer h.Store.Remove(inputPath)

	info, err := pdf.Info(inputPath)
	if err != nil {
		if pdf.IsWrongPassword(err) {
			h.fail(w, badRequest("PDF is password protected"))
			return
		}
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"filename":     originalName,
		"total_pages":  info.PageCount,
		"is_encrypted": info.Encrypted,
		"metadata": map[string]string{
			"title":             info.Title,
			"author":            info.Author,
			"subject":           info.Subject,
			"creator":           info.Creator,
			"producer":          info.Producer,
			"creation_date":     info.CreationDate,
			"modification_date": info.ModificationDate,
		},
	})
}
