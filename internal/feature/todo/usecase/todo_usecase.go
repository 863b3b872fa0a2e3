// Package usecase はtodoフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"todo_backend/internal/feature/todo/domain/entity"
)

const (
	// maxContentLength はtodo内容の最大文字数を定義します。
	maxContentLength = 80
)

// TodoRepository はtodoエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// 更新・削除は(id, user_id)条件でスコープされるため、所有権を満たさない行には
// 一切触れません。削除は単一ステートメントでアトミックに実行されます。
type TodoRepository interface {
	// Create は新しいtodoをストレージに永続化します。
	Create(ctx context.Context, todo *entity.Todo) error

	// ListByUser は指定ユーザーが所有するすべてのtodoを返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Todo, error)

	// UpdateChecked は指定ユーザーが所有するtodoのチェック状態を更新します。
	// 該当行がない場合（存在しない、または他ユーザー所有）、ErrTodoNotFoundを返します。
	UpdateChecked(ctx context.Context, id, userID uint, isChecked bool) error

	// Delete は指定ユーザーが所有するtodoを削除します。
	// 該当行がない場合（存在しない、または他ユーザー所有）、ErrTodoNotFoundを返します。
	Delete(ctx context.Context, id, userID uint) error
}

// TodoUsecase はtodoのビジネスロジックを実装します。
// すべての操作はアクセスガードが解決したユーザーIDでスコープされ、
// クライアント指定のユーザーIDは一切信用しません。
type TodoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase はTodoUsecaseの新しいインスタンスを生成します。
func NewTodoUsecase(todos TodoRepository) *TodoUsecase {
	return &TodoUsecase{todos: todos}
}

// List は指定ユーザーが所有するtodoの一覧を返します。
// 他ユーザーのtodoは結果に一切含まれません。
func (u *TodoUsecase) List(ctx context.Context, userID uint) ([]entity.Todo, error) {
	return u.todos.ListByUser(ctx, userID)
}

// Create は指定ユーザー所有の新しいtodoを作成します。
// 内容が最大文字数を超える場合、ErrContentTooLongを返します。
// 同一内容の重複は許容されます（存在チェックなし）。
func (u *TodoUsecase) Create(ctx context.Context, userID uint, content string, isChecked bool) (*entity.Todo, error) {
	if len([]rune(content)) > maxContentLength {
		return nil, ErrContentTooLong
	}
	todo := &entity.Todo{
		UserID:    userID,
		Content:   content,
		IsChecked: isChecked,
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateChecked は指定ユーザーが所有するtodoのチェック状態を変更します。
// 所有権は削除と同様に一律で強制されます。
func (u *TodoUsecase) UpdateChecked(ctx context.Context, userID, id uint, isChecked bool) error {
	return u.todos.UpdateChecked(ctx, id, userID, isChecked)
}

// Delete は指定ユーザーが所有するtodoを削除します。
func (u *TodoUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.todos.Delete(ctx, id, userID)
}
