// internal/app/system/navigation/navigation.go
package navigation

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// DeepLink builds the dashboard path for a notification's referenced
// document. Notifications with no document reference, or one of an unknown
// type, link to the notifications list itself.
func DeepLink(documentType, documentID string) string {
	if documentID == "" {
		return "/notifications"
	}
	switch documentType {
	case models.NotifyClass:
		return "/classes/" + documentID
	case models.NotifyExam:
		return "/exams/" + documentID
	case models.NotifyHomework:
		return "/homeworks/" + documentID
	default:
		return "/notifications"
	}
}

// BackURL resolves where a detail page's back button should lead,
// preferring the referer when it is on-site.
func BackURL(r *http.Request, fallback string) string {
	return httpnav.ResolveBackURL(r, fallback)
}

// CurrentPath returns the request path plus query, for building
// return-to links.
func CurrentPath(r *http.Request) string {
	return httpnav.CurrentPath(r)
}
