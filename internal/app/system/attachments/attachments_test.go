package attachments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

type fakeSigner struct {
	fail map[string]bool
}

func (f fakeSigner) SignedURL(_ context.Context, key string) (string, error) {
	if f.fail[key] {
		return "", errors.New("sign failed")
	}
	return "https://files.example.com/" + key, nil
}

func TestResolve_OrderAndIsolation(t *testing.T) {
	materials := []models.Material{
		{Name: "syllabus.pdf", URL: "materials/a/syllabus.pdf"},
		{Name: "broken.doc", URL: "materials/a/broken.doc"},
		{Name: "photo.png", URL: "materials/a/photo.png"},
	}
	signer := fakeSigner{fail: map[string]bool{"materials/a/broken.doc": true}}

	got := Resolve(context.Background(), signer, materials)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}

	if !got[0].Available() || !strings.HasSuffix(got[0].URL, "syllabus.pdf") {
		t.Errorf("item 0: %+v", got[0])
	}
	if got[1].URL != Unavailable || got[1].Available() {
		t.Errorf("failed item should be unavailable: %+v", got[1])
	}
	if got[1].Name != "broken.doc" {
		t.Errorf("failed item keeps its name: %+v", got[1])
	}
	if !got[2].Available() {
		t.Errorf("sibling of a failed item must still resolve: %+v", got[2])
	}

	if got[0].Kind != models.MaterialPDF || got[2].Kind != models.MaterialImage {
		t.Errorf("kinds: %q, %q", got[0].Kind, got[2].Kind)
	}
}

func TestResolve_Empty(t *testing.T) {
	got := Resolve(context.Background(), fakeSigner{}, nil)
	if len(got) != 0 {
		t.Errorf("got %d results, want 0", len(got))
	}
}

func TestLocalSigner(t *testing.T) {
	s := LocalSigner{BaseURL: "http://localhost:8080/files/"}

	u, err := s.SignedURL(context.Background(), "/materials/a/syllabus.pdf")
	if err != nil {
		t.Fatalf("SignedURL: %v", err)
	}
	if u != "http://localhost:8080/files/materials/a/syllabus.pdf" {
		t.Errorf("got %q", u)
	}
}

func TestResolvedAvailable(t *testing.T) {
	if (Resolved{URL: Unavailable}).Available() {
		t.Error("unavailable URL reported available")
	}
	if (Resolved{}).Available() {
		t.Error("empty URL reported available")
	}
	if !(Resolved{URL: "https://x/y.pdf"}).Available() {
		t.Error("real URL reported unavailable")
	}
}
