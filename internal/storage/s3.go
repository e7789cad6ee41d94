// Package storage wraps the managed blob store behind upload/delete and the
// public-URL round trip used by the media endpoints.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage categories, used as key prefixes.
const (
	CategoryLogos     = "logos"
	CategoryImages    = "images"
	CategoryDocuments = "documents"
	CategoryVideos    = "videos"
)

// allowedMimeTypes is the upload whitelist per category.
var allowedMimeTypes = map[string]map[string]bool{
	CategoryLogos: {
		"image/png":     true,
		"image/jpeg":    true,
		"image/webp":    true,
		"image/gif":     true,
		"image/svg+xml": true,
	},
	CategoryImages: {
		"image/png":     true,
		"image/jpeg":    true,
		"image/webp":    true,
		"image/gif":     true,
		"image/svg+xml": true,
	},
	CategoryDocuments: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/vnd.ms-powerpoint":                                             true,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	},
	CategoryVideos: {
		"video/mp4":       true,
		"video/webm":      true,
		"video/quicktime": true,
	},
}

// AllowedMimeType reports whether contentType may be uploaded under category.
func AllowedMimeType(category, contentType string) bool {
	types, ok := allowedMimeTypes[category]
	if !ok {
		return false
	}
	// Strip parameters such as "; charset=binary".
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return types[strings.TrimSpace(strings.ToLower(contentType))]
}

// ObjectKey builds the collision-resistant storage path
// {userID}/{category}/{timestamp}-{random}.{ext}.
func ObjectKey(userID, category, fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s/%d-%s.%s", userID, category, time.Now().UnixNano(), uuid.NewString(), strings.ToLower(ext))
}

// Client uploads to and deletes from the S3 bucket backing public media.
type Client struct {
	s3            *s3.Client
	bucket        string
	publicBaseURL string
}

func New(s3Client *s3.Client, bucket, publicBaseURL string) *Client {
	return &Client{
		s3:            s3Client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload stores the object and returns its public URL.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return c.PublicURL(key), nil
}

// Delete removes the object. Callers treat failures as best-effort: a
// dangling blob is less harmful than a dangling reference.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

// PublicURL returns the browser-facing URL for a storage key.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", c.publicBaseURL, key)
}

// KeyFromURL inverts PublicURL. It returns "" when url does not point into
// this bucket, which callers use to skip deleting externally hosted media.
func (c *Client) KeyFromURL(url string) string {
	prefix := c.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}
