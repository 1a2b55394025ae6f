package service

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Bounding box and quality for derived thumbnails.
const (
	thumbnailMaxSize = 300
	thumbnailQuality = 85
)

var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// AllowedImageFile reports whether the filename carries an accepted
// image extension (case-insensitive).
func AllowedImageFile(filename string) bool {
	_, ok := allowedImageExts[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ImageService persists uploaded photos and derives bounded-size
// thumbnails next to them.
type ImageService struct {
	imagesDir string
	thumbsDir string
}

func NewImageService(imagesDir, thumbsDir string) *ImageService {
	return &ImageService{imagesDir: imagesDir, thumbsDir: thumbsDir}
}

// Accept validates and stores the uploaded photo. stamp is the owning
// record's timestamp+suffix pair, so image and thumbnail filenames can be
// re-derived from the record id alone and deletion never orphans a file.
//
// A disallowed extension skips the attachment without error. A thumbnail
// failure is logged and degrades to a nil thumbnail path; only failing to
// persist the original itself is an error.
func (s *ImageService) Accept(fh *multipart.FileHeader, stamp string) (imagePath, thumbPath *string, err error) {
	if fh == nil || fh.Filename == "" || !AllowedImageFile(fh.Filename) {
		return nil, nil, nil
	}

	ext := filepath.Ext(fh.Filename)
	imageName := fmt.Sprintf("img_%s%s", stamp, ext)
	thumbName := fmt.Sprintf("thumb_%s.jpg", stamp)

	if err := saveMultipartFile(fh, filepath.Join(s.imagesDir, imageName)); err != nil {
		return nil, nil, fmt.Errorf("save image: %w", err)
	}
	imageRel := "crowd_data/images/" + imageName
	imagePath = &imageRel

	if err := s.createThumbnail(filepath.Join(s.imagesDir, imageName), filepath.Join(s.thumbsDir, thumbName)); err != nil {
		log.Printf("[WARN] thumbnail creation failed for %s: %v", imageName, err)
		return imagePath, nil, nil
	}
	thumbRel := "crowd_data/thumbnails/" + thumbName
	return imagePath, &thumbRel, nil
}

func saveMultipartFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// createThumbnail decodes the stored original, fits it into the bounding
// box without upscaling, flattens any transparency to opaque RGB and
// re-encodes as JPEG.
func (s *ImageService) createThumbnail(srcPath, dstPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(srcPath), ".webp") {
		img, err = webp.Decode(f)
	} else {
		img, err = imaging.Decode(f)
	}
	if err != nil {
		return err
	}

	thumb := imaging.Fit(img, thumbnailMaxSize, thumbnailMaxSize, imaging.Lanczos)
	flat := imaging.New(thumb.Bounds().Dx(), thumb.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, thumb, image.Pt(0, 0), 1.0)

	return imaging.Save(flat, dstPath, imaging.JPEGQuality(thumbnailQuality))
}
