package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/quikka/quikka-api/internal/config"
)

const maxImageDim = 512

// ImageStore uploads stylist profile images. Every image is re-encoded to
// webp and capped at maxImageDim on its longest side before upload.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &ImageStore{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: cfg.S3BaseURL,
	}
}

// Enabled reports whether an upload bucket has been configured.
func (s *ImageStore) Enabled() bool {
	return s.bucket != ""
}

// PutProfileImage decodes, downsizes, webp-encodes and uploads the image,
// returning its public URL.
func (s *ImageStore) PutProfileImage(
	ctx context.Context,
	stylistID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	resized := downscale(src, maxImageDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("stylists/%d/profile.webp", stylistID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

func downscale(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	if w > h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
