// Package handler はtodoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/transport/http/dto"
	"todo_backend/internal/feature/todo/usecase"
	"todo_backend/internal/platform/sessionmw"
)

// TodoUsecase はtodo操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TodoUsecase interface {
	// List は指定ユーザーが所有するtodoの一覧を返します。
	List(ctx context.Context, userID uint) ([]entity.Todo, error)
	// Create は指定ユーザー所有の新しいtodoを作成します。
	Create(ctx context.Context, userID uint, content string, isChecked bool) (*entity.Todo, error)
	// UpdateChecked は指定ユーザーが所有するtodoのチェック状態を変更します。
	UpdateChecked(ctx context.Context, userID, id uint, isChecked bool) error
	// Delete は指定ユーザーが所有するtodoを削除します。
	Delete(ctx context.Context, userID, id uint) error
}

// TodoHandler はtodo操作のHTTPリクエストを処理します。
// すべてのルートはアクセスガード配下にあり、ユーザーIDはコンテキストから取得します。
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler はTodoHandlerの新しいインスタンスを生成します。
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// List は自分が所有するtodo一覧を取得するAPIです。
// Usecaseを呼び出して一覧を取得し、DTOに変換してJSONレスポンスとして返します。
func (h *TodoHandler) List(c *gin.Context) {
	userID := c.GetUint(sessionmw.ContextUserID)
	todos, err := h.todos.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("todo list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	out := make([]dto.TodoItem, 0, len(todos))
	for i := range todos {
		out = append(out, dto.TodoItemFromEntity(&todos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create はtodo追加APIエンドポイントを処理します。
// - リクエストJSONをCreateTodoReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時は201を返却
func (h *TodoHandler) Create(c *gin.Context) {
	userID := c.GetUint(sessionmw.ContextUserID)
	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("todo create validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := h.todos.Create(c.Request.Context(), userID, req.Content, *req.IsChecked); err != nil {
		if errors.Is(err, usecase.ErrContentTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content too long"})
			return
		}
		slog.Error("todo create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateChecked はtodoのチェック状態更新APIエンドポイントを処理します。
// 自分が所有しないIDは存在しないIDと同じく404になります。
func (h *TodoHandler) UpdateChecked(c *gin.Context) {
	userID := c.GetUint(sessionmw.ContextUserID)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("todo update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.todos.UpdateChecked(c.Request.Context(), userID, id, *req.IsChecked); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		slog.Error("todo update failed", "error", err, "user_id", userID, "todo_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusCreated)
}

// Delete はtodo削除APIエンドポイントを処理します。
// 自分が所有しないIDは存在しないIDと同じく404になります。
func (h *TodoHandler) Delete(c *gin.Context) {
	userID := c.GetUint(sessionmw.ContextUserID)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.todos.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		slog.Error("todo delete failed", "error", err, "user_id", userID, "todo_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID はパスパラメータのtodo IDをuintに変換します。
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
