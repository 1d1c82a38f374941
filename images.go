package hexpress

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// processImage decodes an image from src, downsizes it to maxImageWidth if
// wider, and re-encodes it as JPEG. Returns metadata and the encoded bytes.
func processImage(src io.Reader, originalName string) (Image, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	ext := filepath.Ext(originalName)
	filename := Slugify(strings.TrimSuffix(originalName, ext)) + ".jpg"

	return Image{
		Filename:     filename,
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         buf.Len(),
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
	}, buf.Bytes(), nil
}

func (a *App) uploadsDir() string {
	return filepath.Join(a.Config.StaticDir, uploadsSubdir)
}

// ensureUniqueFilename appends a counter while the filename collides with an
// existing upload.
func (a *App) ensureUniqueFilename(img *Image) {
	dir := a.uploadsDir()
	base := strings.TrimSuffix(img.Filename, ".jpg")
	candidate := img.Filename
	counter := 1
	for {
		if _, err := os.Stat(filepath.Join(dir, candidate)); err != nil {
			break
		}
		counter++
		candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
	}
	img.Filename = candidate
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, Result{Error: "no image file provided"})
	}
	if file.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, Result{Error: "file too large (max 10MB)"})
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := processImage(src, file.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure(err))
	}

	if err := os.MkdirAll(a.uploadsDir(), 0o755); err != nil {
		return err
	}
	a.ensureUniqueFilename(&img)
	if err := os.WriteFile(filepath.Join(a.uploadsDir(), img.Filename), data, 0o644); err != nil {
		return err
	}
	img.URL = "/public/" + uploadsSubdir + "/" + img.Filename

	return c.JSON(http.StatusOK, img)
}

// handleImageList lists uploads by scanning the uploads directory.
func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}

	entries, err := os.ReadDir(a.uploadsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON(http.StatusOK, []Image{})
		}
		return err
	}
	images := make([]Image, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		images = append(images, Image{
			Filename:   e.Name(),
			URL:        "/public/" + uploadsSubdir + "/" + e.Name(),
			Size:       int(info.Size()),
			UploadedAt: info.ModTime().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, images)
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}

	filename := c.Param("filename")
	// Reject anything that could escape the uploads directory.
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return c.JSON(http.StatusBadRequest, Result{Error: "invalid filename"})
	}
	if err := os.Remove(filepath.Join(a.uploadsDir(), filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return c.JSON(http.StatusOK, success())
}
