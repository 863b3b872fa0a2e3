package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todoadapters "todo_backend/internal/feature/todo/adapters"
	todohandler "todo_backend/internal/feature/todo/transport/handler"
	todousecase "todo_backend/internal/feature/todo/usecase"
	infradb "todo_backend/internal/platform/db"
	infraredis "todo_backend/internal/platform/redis"
	"todo_backend/internal/shared/ratelimiter"
)

const defaultSessionTTLHours = 24

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL session store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	todoRepo := todoadapters.NewTodoMySQL(db)

	// Usecase
	sessionTTL := sessionTTLFromEnv()
	verifier := authusecase.NewPasswordVerifier(userRepo)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, verifier, sessionTTL)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, sessionTTL)
	todoH := todohandler.NewTodoHandler(todoUC)

	// 期限切れセッションの掃除（MySQLフォールバック用。RedisはTTL任せ）
	go sweepExpiredSessions(sessionRepo)

	// ログイン試行のレートリミット（IP単位）
	loginLimiter := ratelimiter.NewRateLimiter(10, time.Minute)

	// ルータ生成
	r := router.NewRouter(authH, todoH, authUC, loginLimiter)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

// sessionTTLFromEnv はSESSION_TTL_HOURSからセッション有効期間を読み取ります。
// 未設定・不正値の場合はデフォルト値を使用します。
func sessionTTLFromEnv() time.Duration {
	hours := defaultSessionTTLHours
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		} else {
			log.Printf("[WARN] invalid SESSION_TTL_HOURS %q, using default %dh", v, defaultSessionTTLHours)
		}
	}
	return time.Duration(hours) * time.Hour
}

// sweepExpiredSessions は定期的に期限切れセッションを削除します。
func sweepExpiredSessions(sessions authusecase.SessionRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		deleted, err := sessions.DeleteExpired(ctx)
		cancel()
		if err != nil {
			log.Println("[ERROR] Failed to sweep expired sessions:", err)
			continue
		}
		if deleted > 0 {
			log.Printf("Swept %d expired sessions", deleted)
		}
	}
}
