// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/auth"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// User-facing auth messages, kept in Vietnamese to match the rest of the UI.
const (
	msgInvalidEmail  = "Email không hợp lệ"
	msgUserNotFound  = "Không tìm thấy tài khoản"
	msgWrongPassword = "Mật khẩu không đúng"
	msgUserDisabled  = "Tài khoản đã bị vô hiệu hóa"
	msgNotAdmin      = "Bạn không có quyền truy cập vào trang này. Vui lòng liên hệ quản trị viên."
	msgGenericError  = "Có lỗi xảy ra, vui lòng thử lại"
)

type Handler struct {
	Profiles   *profilestore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(profiles *profilestore.Store, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles:   profiles,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

// ServeLogin handles GET /login (also mounted at /).
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in admins go straight to the dashboard.
	if u, ok := auth.CurrentUser(r); ok && strings.EqualFold(u.Role, models.RoleAdmin) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Đăng nhập", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

// HandleLoginPost handles POST /login.
//
// The gate is role-based, not just credential-based: a student or tutor with
// valid credentials is signed out again immediately and never reaches the
// dashboard.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || !strings.Contains(email, "@") {
		h.renderFormWithError(w, r, msgInvalidEmail, email)
		return
	}
	if password == "" {
		h.renderFormWithError(w, r, msgWrongPassword, email)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Profiles.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, profilestore.ErrNotFound):
		h.renderFormWithError(w, r, msgUserNotFound, email)
		return
	case err != nil:
		h.Log.Error("login: profile lookup failed", zap.Error(err))
		h.renderFormWithError(w, r, msgGenericError, email)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		h.renderFormWithError(w, r, msgWrongPassword, email)
		return
	}

	if p.Disabled() {
		h.renderFormWithError(w, r, msgUserDisabled, email)
		return
	}

	if p.Role != models.RoleAdmin {
		// Credentials were valid, so a session cookie may exist from an
		// earlier attempt; clear it before showing the denial.
		if err := h.SessionMgr.SignOut(w, r); err != nil {
			h.Log.Warn("login: sign-out of non-admin failed", zap.Error(err))
		}
		h.Log.Warn("login: non-admin rejected",
			zap.String("email", p.Email),
			zap.String("role", p.Role))
		h.renderFormWithError(w, r, msgNotAdmin, email)
		return
	}

	err = h.SessionMgr.SignIn(w, r, auth.SessionUser{
		ID:    p.ID.Hex(),
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	})
	if err != nil {
		h.Log.Error("login: save session failed", zap.Error(err), zap.String("email", p.Email))
		h.renderFormWithError(w, r, msgGenericError, email)
		return
	}

	h.Log.Info("admin signed in", zap.String("email", p.Email))

	dest := urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" {
		ret = query.Get(r, "return")
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Đăng nhập", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}
