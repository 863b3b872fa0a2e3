package router

import (
	"net/http"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	todohandler "todo_backend/internal/feature/todo/transport/handler"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/sessionmw"
	"todo_backend/internal/shared/ratelimiter"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, todo *todohandler.TodoHandler,
	resolver sessionmw.SessionResolver, loginLimiter ratelimiter.RateLimiterInterface) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 未ログイン専用のルート
	// ログイン済みクライアントからのjoin/loginは409になる
	guest := r.Group("/auth")
	guest.Use(sessionmw.GuestOnly(resolver))
	{
		guest.POST("/join", auth.Join)
		guest.POST("/login", loginThrottle(loginLimiter), auth.Login)
	}

	// 認証必須のルート
	// sessionmw.AuthRequired() ミドルウェアを適用
	// → リクエストに有効なセッションクッキーが必要になる
	authed := r.Group("/")
	authed.Use(sessionmw.AuthRequired(resolver))
	{
		authed.GET("/auth/me", auth.Me)
		authed.DELETE("/auth/logout", auth.Logout)
		authed.GET("/todo", todo.List)
		authed.POST("/todo", todo.Create)
		authed.PATCH("/todo/:id", todo.UpdateChecked)
		authed.DELETE("/todo/:id", todo.Delete)
	}

	return r
}

// loginThrottle はクライアントIP単位でログイン試行を制限します。
// 上限超過時は429を返します。
func loginThrottle(limiter ratelimiter.RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
		c.Next()
	}
}
