package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

type FileService interface {
	// UploadClockInSelfie stores the clock-in selfie, compressed to a
	// bounded size
	UploadClockInSelfie(ctx context.Context, staffID string, day time.Time, file io.Reader, filename string) (string, error)

	// UploadTaskProof stores a task completion photo
	UploadTaskProof(ctx context.Context, staffID string, file io.Reader, filename string) (string, error)

	// UploadPaymentProof stores a payroll payment proof; callers must treat
	// a failure here as fatal for the payment write
	UploadPaymentProof(ctx context.Context, staffID string, year int, month int, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

const (
	selfieMaxBytes = 150 * 1024
	selfieMinBytes = 50 * 1024
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

func isImageExtension(ext string) bool {
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// UploadClockInSelfie implements FileService.
func (s *fileServiceImpl) UploadClockInSelfie(ctx context.Context, staffID string, day time.Time, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isImageExtension(ext) {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, selfieMaxBytes, selfieMinBytes)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// attendance/{date}/{staffID}-{timestamp}.jpg, JPEG after compression
	newFilename := fmt.Sprintf("%s-%d.jpg", staffID, time.Now().Unix())
	path := filepath.Join("attendance", day.Format("2006-01-02"), newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload clock-in selfie: %w", err)
	}

	return uploadedPath, nil
}

// UploadTaskProof implements FileService.
func (s *fileServiceImpl) UploadTaskProof(ctx context.Context, staffID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isImageExtension(ext) {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", uuid.New().String(), staffID, ext)
	path := filepath.Join("tasks", staffID, newFilename)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload task proof: %w", err)
	}

	return uploadedPath, nil
}

// UploadPaymentProof implements FileService.
func (s *fileServiceImpl) UploadPaymentProof(ctx context.Context, staffID string, year int, month int, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isImageExtension(ext) && ext != ".pdf" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png, pdf allowed")
	}

	newFilename := fmt.Sprintf("%s-%s%s", staffID, uuid.New().String(), ext)
	path := filepath.Join("payroll", fmt.Sprintf("%04d-%02d", year, month), newFilename)

	contentType := "application/octet-stream"
	switch ext {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".pdf":
		contentType = "application/pdf"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload payment proof: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// compressImage re-encodes an image as JPEG within [minSize, maxSize],
// first by lowering quality, then by resizing if quality alone is not enough.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	compressed := buffer
	for quality := 85; quality >= 50; quality -= 5 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()

		if len(compressed) <= maxSize {
			return compressed, nil
		}
	}

	// Quality reduction was not enough; scale down toward the middle of the
	// target range.
	bounds := img.Bounds()
	ratio := math.Sqrt(float64((minSize + maxSize) / 2) / float64(len(compressed)))
	newWidth := int(float64(bounds.Dx()) * ratio)
	newHeight := int(float64(bounds.Dy()) * ratio)
	if newWidth < 600 {
		newWidth = 600
	}
	if newHeight < 400 {
		newHeight = 400
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}
