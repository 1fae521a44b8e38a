package handlers

import (
	"net/http"

	"go-docstudio/internal/pdf"
)

// ProtectPDF godoc
// @Summary      Password-protect a PDF
// @Description  Encrypts the document with the given password (AES-256)
// @Tags         security
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file      formData  file    true  "PDF file"
// @Param        password  formData  string  true  "Password, minimum 4 characters"
// @Success      200  {file}    file               "Encrypted PDF"
// @Failure      400  {object}  map[string]string  "Validation error"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/protect [post]
func (h *APIHandler) ProtectPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	password := r.FormValue("password")
	if len(password) < 4 {
		h.fail(w, badRequest("Password must be at least 4 characters"))
		return
	}

	h.runFileOp(w, r, fileOp{
		kind:        "protected",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform: func(inputPath, outputPath string) error {
			return pdf.Encrypt(inputPath, outputPath, password)
		},
	})
}

// UnlockPDF godoc
// @Summary      Remove PDF password protection
// @Description  Decrypts the document; a wrong password is a client error
// @Tags         security
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        file      formData  file    true  "PDF file"
// @Param        password  formData  string  true  "Current password"
// @Success      200  {file}    file               "Decrypted PDF"
// @Failure      400  {object}  map[string]string  "Validation error or incorrect password"
// @Failure      500  {object}  map[string]string  "Processing error"
// @Router       /api/unlock [post]
func (h *APIHandler) UnlockPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, err)
		return
	}
	password := r.FormValue("password")
	if password == "" {
		h.fail(w, badRequest("Password is required"))
		return
	}

	h.runFileOp(w, r, fileOp{
		kind:        "unlocked",
		ext:         ".pdf",
		contentType: "application/pdf",
		transform: func(inputPath, outputPath string) error {
			return pdf.Decrypt(inputPath, outputPath, password)
		},
	})
}
