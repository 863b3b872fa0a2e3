// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"todo_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// hashCost はbcryptのコストファクタを定義します。
	// ハードウェア世代に合わせてブルートフォース耐性を維持できる値です。
	hashCost = 12

	// sessionTokenBytes はセッショントークンの乱数バイト長を定義します。
	// hexエンコード後は64文字になります。
	sessionTokenBytes = 32
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// メールアドレスまたはニックネームが重複する場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	verifier   CredentialVerifier
	sessionTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, verifier CredentialVerifier, sessionTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		verifier:   verifier,
		sessionTTL: sessionTTL,
	}
}

// Join はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスが既に登録済みの場合、ErrUserAlreadyExistsを返します。
func (u *authUsecase) Join(ctx context.Context, email, name, nick, password string) (*entity.User, error) {
	// 既存メールアドレスを事前チェック
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Nick:     nick,
		Password: string(hashed),
	}
	// ニックネーム重複はユニーク制約違反としてリポジトリ側で検出される
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時に新しいセッショントークンを返します。
// 資格情報の検証は注入されたCredentialVerifierに委譲します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.verifier.Verify(ctx, Credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	token, err := newSessionToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	// セッション確立は単一のストア操作（途中キャンセルで中途半端な状態は残らない）
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

// Me は認証済みプリンシパルのユーザー情報を取得します。
func (u *authUsecase) Me(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// Logout は指定されたセッショントークンを破棄します。
// 既に存在しない・期限切れのセッションに対しても冪等に成功します。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	return u.sessions.Delete(ctx, token)
}

// ResolveSession はセッショントークンからユーザーIDを解決します。
// トークンが空・未登録・期限切れの場合はエラーを返します。
func (u *authUsecase) ResolveSession(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}
	session, err := u.sessions.FindByID(ctx, token)
	if err != nil {
		return 0, err
	}
	if session.IsExpired() {
		return 0, ErrSessionExpired
	}
	return session.UserID, nil
}

// newSessionToken は暗号論的乱数からセッショントークンを生成します。
// ユーザー属性からは導出しません（推測不可能であることが認可の要）。
func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
