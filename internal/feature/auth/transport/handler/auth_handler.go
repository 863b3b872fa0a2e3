// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/usecase"
	"todo_backend/internal/platform/sessionmw"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Join は指定された情報で新規ユーザーを登録します。
	Join(ctx context.Context, email, name, nick, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にセッショントークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// Me は認証済みユーザーの情報を取得します。
	Me(ctx context.Context, userID uint) (*entity.User, error)
	// Logout は指定されたセッショントークンを破棄します。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth      AuthUsecase
	cookieTTL time.Duration
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookieTTL: cookieTTL}
}

// setSessionCookie はセッショントークンをHTTP-only/Secure/SameSite=Laxの
// クッキーとして設定します。ページスクリプトからは参照できません。
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionmw.SessionCookie, token, maxAge, "/", "", true, true)
}

// Join はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをJoinReqにバインド
// - バリデーションエラー時は400を返却
// - メールまたはニックネーム重複時は409を返却
// - 成功時はサニタイズ済みユーザー情報付きで200を返却
func (h *AuthHandler) Join(c *gin.Context) {
	var req dto.JoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("join validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	user, err := h.auth.Join(c.Request.Context(), req.Email, req.Name, req.Nick, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			slog.Warn("join rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already registered"})
			return
		}
		slog.Error("join failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	slog.Info("user join successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.JoinRes{Email: user.Email, Name: user.Name, Nick: user.Nick})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はセッションクッキーを設定して200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、未登録メールと誤パスワードを区別しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	h.setSessionCookie(c, token, int(h.cookieTTL.Seconds()))
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: "login successful"})
}

// Me は認証済みユーザーの情報照会APIエンドポイントを処理します。
// アクセスガードが解決したユーザーIDでユーザー情報を取得します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(sessionmw.ContextUserID)
	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// セッションは有効だがユーザーが消えている場合は再ログインを要求
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "login required"})
			return
		}
		slog.Error("me lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.MeRes{Name: user.Name, Email: user.Email, Nick: user.Nick})
}

// Logout はログアウトAPIエンドポイントを処理します。
// サーバー側セッションを破棄し、クッキーを無効化して204を返します。
// 既に破棄済みのセッションに対しても成功します（冪等）。
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(sessionmw.SessionCookie)
	if err == nil {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
			return
		}
	}
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}
