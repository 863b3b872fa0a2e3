// Package adapters はtodoフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/usecase"
)

// todoMySQL はTodoRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type todoMySQL struct {
	db *gorm.DB
}

// todoMySQLがTodoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TodoRepository = (*todoMySQL)(nil)

// NewTodoMySQL は指定されたgorm.DB接続でtodoMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTodoMySQL(db *gorm.DB) *todoMySQL {
	return &todoMySQL{db: db}
}

// Create はtodoをデータベースに追加します。
func (r *todoMySQL) Create(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// ListByUser は指定ユーザーが所有するすべてのtodoを返します。
func (r *todoMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// UpdateChecked は(id, user_id)条件でtodoを取得してからチェック状態を更新します。
// 該当行がない場合、usecase.ErrTodoNotFoundを返します。
// 存在しないIDと他ユーザー所有のIDは呼び出し側から区別できません。
// 同値への更新（既にチェック済みのtodoを再チェック等）も成功として扱います。
func (r *todoMySQL) UpdateChecked(ctx context.Context, id, userID uint, isChecked bool) error {
	var todo entity.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrTodoNotFound
		}
		return err
	}
	return r.db.WithContext(ctx).Model(&todo).Update("is_checked", isChecked).Error
}

// Delete は(id, user_id)条件付きの単一DELETEでtodoを削除します。
// 該当行がない場合、usecase.ErrTodoNotFoundを返します。
func (r *todoMySQL) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Todo{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}
