package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["photo"][0]
}

func newImageService(t *testing.T) (*ImageService, string, string) {
	t.Helper()
	imagesDir := t.TempDir()
	thumbsDir := t.TempDir()
	return NewImageService(imagesDir, thumbsDir), imagesDir, thumbsDir
}

func TestAllowedImageFile(t *testing.T) {
	for _, name := range []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.WEBP"} {
		if !AllowedImageFile(name) {
			t.Errorf("%s should be allowed", name)
		}
	}
	for _, name := range []string{"a.txt", "b.pdf", "noext", "c.png.exe"} {
		if AllowedImageFile(name) {
			t.Errorf("%s should be rejected", name)
		}
	}
}

func TestAcceptStoresOriginalAndThumbnail(t *testing.T) {
	svc, imagesDir, thumbsDir := newImageService(t)

	imgPath, thumbPath, err := svc.Accept(fileHeader(t, "flood.png", pngBytes(t, 600, 400)), "20240101_120000_deadbeef")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if imgPath == nil || *imgPath != "crowd_data/images/img_20240101_120000_deadbeef.png" {
		t.Fatalf("unexpected image path %v", imgPath)
	}
	if thumbPath == nil || *thumbPath != "crowd_data/thumbnails/thumb_20240101_120000_deadbeef.jpg" {
		t.Fatalf("unexpected thumbnail path %v", thumbPath)
	}
	if _, err := os.Stat(filepath.Join(imagesDir, "img_20240101_120000_deadbeef.png")); err != nil {
		t.Fatalf("original not written: %v", err)
	}

	thumb, err := imaging.Open(filepath.Join(thumbsDir, "thumb_20240101_120000_deadbeef.jpg"))
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	b := thumb.Bounds()
	if b.Dx() > 300 || b.Dy() > 300 {
		t.Fatalf("thumbnail exceeds bounding box: %dx%d", b.Dx(), b.Dy())
	}
	// 600x400 fit into 300x300 preserves the 3:2 ratio.
	if b.Dx() != 300 || b.Dy() != 200 {
		t.Fatalf("expected 300x200 thumbnail, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestAcceptDoesNotUpscale(t *testing.T) {
	svc, _, thumbsDir := newImageService(t)

	_, thumbPath, err := svc.Accept(fileHeader(t, "small.png", pngBytes(t, 100, 80)), "20240101_120000_cafecafe")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if thumbPath == nil {
		t.Fatal("expected a thumbnail")
	}
	thumb, err := imaging.Open(filepath.Join(thumbsDir, "thumb_20240101_120000_cafecafe.jpg"))
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	b := thumb.Bounds()
	if b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("small image was rescaled to %dx%d", b.Dx(), b.Dy())
	}
}

func TestAcceptSkipsDisallowedExtension(t *testing.T) {
	svc, imagesDir, _ := newImageService(t)

	imgPath, thumbPath, err := svc.Accept(fileHeader(t, "notes.txt", []byte("not an image")), "20240101_120000_00000000")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if imgPath != nil || thumbPath != nil {
		t.Fatalf("disallowed extension should skip attachment, got %v / %v", imgPath, thumbPath)
	}
	entries, _ := os.ReadDir(imagesDir)
	if len(entries) != 0 {
		t.Fatalf("nothing should be written, found %d files", len(entries))
	}
}

func TestAcceptThumbnailFailureIsNonFatal(t *testing.T) {
	svc, imagesDir, _ := newImageService(t)

	// Valid extension, garbage bytes: original persists, thumbnail fails.
	imgPath, thumbPath, err := svc.Accept(fileHeader(t, "broken.png", []byte("garbage")), "20240101_120000_0badf00d")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if imgPath == nil {
		t.Fatal("original should still be stored")
	}
	if thumbPath != nil {
		t.Fatalf("expected nil thumbnail path, got %v", *thumbPath)
	}
	if !strings.HasSuffix(*imgPath, "img_20240101_120000_0badf00d.png") {
		t.Fatalf("unexpected image path %s", *imgPath)
	}
	if _, err := os.Stat(filepath.Join(imagesDir, "img_20240101_120000_0badf00d.png")); err != nil {
		t.Fatalf("original not written: %v", err)
	}
}
