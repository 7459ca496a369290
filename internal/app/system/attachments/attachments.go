// internal/app/system/attachments/attachments.go
//
// Package attachments turns stored material keys into browser-usable URLs.
// Keys are opaque storage paths ("materials/662a.../syllabus.pdf"); the
// configured Signer decides what a usable URL looks like.
package attachments

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// Unavailable marks a material whose URL could not be resolved. The page
// still renders; the template shows the name without a download link.
const Unavailable = "unavailable"

// signTimeout caps a single signing call so one slow backend request
// cannot hold up the whole detail page.
const signTimeout = 5 * time.Second

// maxConcurrent bounds the signing fan-out per page.
const maxConcurrent = 8

// A Signer resolves an opaque storage key to a fetchable URL.
type Signer interface {
	SignedURL(ctx context.Context, key string) (string, error)
}

// Resolved pairs a material with its display URL (or Unavailable).
type Resolved struct {
	Name string
	URL  string
	Kind string
}

// Available reports whether the URL resolved and can be linked.
func (r Resolved) Available() bool {
	return r.URL != Unavailable && r.URL != ""
}

// Resolve signs every material's key concurrently. Results keep the input
// order; an item whose signing fails is marked Unavailable without
// affecting its siblings.
func Resolve(ctx context.Context, signer Signer, materials []models.Material) []Resolved {
	out := make([]Resolved, len(materials))
	if len(materials) == 0 {
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, m := range materials {
		i, m := i, m
		out[i] = Resolved{Name: m.Name, URL: Unavailable, Kind: m.Kind()}
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(gctx, signTimeout)
			defer cancel()

			u, err := signer.SignedURL(sctx, m.URL)
			if err != nil || u == "" {
				return nil
			}
			out[i].URL = u
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// S3Signer issues time-limited GET URLs for objects in a bucket.
type S3Signer struct {
	presign *s3.PresignClient
	bucket  string
	prefix  string
	expiry  time.Duration
}

// NewS3Signer wraps an S3 client. prefix, when set, is prepended to every
// key; expiry <= 0 defaults to 15 minutes.
func NewS3Signer(client *s3.Client, bucket, prefix string, expiry time.Duration) *S3Signer {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &S3Signer{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		expiry:  expiry,
	}
}

func (s *S3Signer) SignedURL(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// LocalSigner maps keys onto a static file route, for development and for
// deployments that keep uploads on local disk.
type LocalSigner struct {
	BaseURL string
}

func (l LocalSigner) SignedURL(_ context.Context, key string) (string, error) {
	return strings.TrimSuffix(l.BaseURL, "/") + "/" + strings.TrimPrefix(key, "/"), nil
}
