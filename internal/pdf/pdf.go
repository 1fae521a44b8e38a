// Package pdf wraps the external document codecs used by the API
// handlers. All format logic (content streams, compression, encryption,
// rendering) lives in the libraries; this package only composes their
// calls.
//
// pdfcpu handles merging, page extraction, optimization, rotation,
// encryption and stamping. Text extraction and page rendering live in
// text.go and render.go.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// IsWrongPassword reports whether err means a decryption password did
// not match.
func IsWrongPassword(err error) bool {
	return errors.Is(err, pdfcpu.ErrWrongPassword)
}

func Merge(files []string, outputPath string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.MergeCreateFile(files, outputPath, false, config)
}

// Trim writes a document containing only the selected pages (1-based
// page number strings, pdfcpu selection syntax).
func Trim(inputPath, outputPath string, selectedPages []string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.TrimFile(inputPath, outputPath, selectedPages, config)
}

// Optimize rewrites the document with pdfcpu's optimizer, deduplicating
// resources and compressing streams.
func Optimize(inputPath, outputPath string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.OptimizeFile(inputPath, outputPath, config)
}

// Rotate rotates the selected pages (nil selects all) by angle degrees.
// pdfcpu accepts multiples of 90, negative for counter-clockwise.
func Rotate(inputPath, outputPath string, angle int, selectedPages []string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.RotateFile(inputPath, outputPath, angle, selectedPages, config)
}

// Encrypt writes an AES-256 encrypted copy, using password as both user
// and owner password.
func Encrypt(inputPath, outputPath, password string) error {
	config := model.NewAESConfiguration(password, password, 256)
	return pdfapi.EncryptFile(inputPath, outputPath, config)
}

// Decrypt removes encryption from the document. A wrong password is
// reported via IsWrongPassword; an input that was never encrypted passes
// through unchanged.
func Decrypt(inputPath, outputPath, password string) error {
	config := model.NewDefaultConfiguration()
	config.UserPW = password
	config.OwnerPW = password
	err := pdfapi.DecryptFile(inputPath, outputPath, config)
	if err == nil {
		return nil
	}
	if IsWrongPassword(err) {
		return err
	}
	if vErr := pdfapi.ValidateFile(inputPath, model.NewDefaultConfiguration()); vErr == nil {
		return copyFile(inputPath, outputPath)
	}
	return err
}

// Watermark stamps text across every page. Center placement uses the
// classic 45 degree diagonal; edge placements stay horizontal.
func Watermark(inputPath, outputPath, text string, opacity float64, anchor string) error {
	rotation := 0
	if anchor == "c" {
		rotation = 45
	}
	desc := fmt.Sprintf("font:Helvetica-Bold, points:60, scale:1 abs, pos:%s, rot:%d, op:%.2f, fillc:#808080", anchor, rotation, opacity)
	wm, err := pdfapi.TextWatermark(text, desc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("parse watermark: %w", err)
	}
	config := model.NewDefaultConfiguration()
	return pdfapi.AddWatermarksFile(inputPath, outputPath, nil, wm, config)
}

// AddPageNumbers stamps a running page number on every page, starting at
// startFrom. Each page carries a different label, so pages are stamped
// one at a time on a copy of the input.
func AddPageNumbers(inputPath, outputPath, anchor string, startFrom int) error {
	pageCount, err := PageCount(inputPath)
	if err != nil {
		return err
	}
	if err := copyFile(inputPath, outputPath); err != nil {
		return fmt.Errorf("copy document: %w", err)
	}
	config := model.NewDefaultConfiguration()
	desc := fmt.Sprintf("font:Helvetica, points:10, scale:1 abs, pos:%s, rot:0, op:1, fillc:#000000", anchor)
	for i := 1; i <= pageCount; i++ {
		label := strconv.Itoa(startFrom + i - 1)
		wm, err := pdfapi.TextWatermark(label, desc, true, false, types.POINTS)
		if err != nil {
			return fmt.Errorf("parse page number stamp: %w", err)
		}
		if err := pdfapi.AddWatermarksFile(outputPath, "", []string{strconv.Itoa(i)}, wm, config); err != nil {
			return fmt.Errorf("stamp page %d: %w", i, err)
		}
	}
	return nil
}

// ImportImages builds a document with one page per image.
func ImportImages(imageFiles []string, outputPath string) error {
	config := model.NewDefaultConfiguration()
	return pdfapi.ImportImagesFile(imageFiles, outputPath, nil, config)
}

func PageCount(inputPath string) (int, error) {
	return pdfapi.PageCountFile(inputPath)
}

// DocumentInfo carries the document properties reported by get-metadata.
type DocumentInfo struct {
	PageCount        int
	Encrypted        bool
	Title            string
	Author           string
	Subject          string
	Creator          string
	Producer         string
	CreationDate     string
	ModificationDate string
}

// Info reads the document catalog and information dictionary. Reading a
// user-password protected file without its password fails with a
// wrong-password error.
func Info(inputPath string) (*DocumentInfo, error) {
	ctx, err := pdfapi.ReadContextFile(inputPath)
	if err != nil {
		return nil, err
	}
	return &DocumentInfo{
		PageCount:        ctx.PageCount,
		Encrypted:        ctx.Encrypt != nil,
		Title:            ctx.Title,
		Author:           ctx.Author,
		Subject:          ctx.Subject,
		Creator:          ctx.Creator,
		Producer:         ctx.Producer,
		CreationDate:     ctx.XRefTable.CreationDate,
		ModificationDate: ctx.ModDate,
	}, nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
