package usecase

import (
	"context"

	"todo_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// Credentials は検証対象のログイン資格情報を表します。
type Credentials struct {
	Email    string
	Password string
}

// CredentialVerifier は資格情報の検証戦略を抽象化します。
// 現在はローカルパスワード方式のみですが、別方式を追加しても
// セッション管理やアクセスガードには影響しません。
type CredentialVerifier interface {
	// Verify は資格情報を検証し、成功時に該当ユーザーを返します。
	// 失敗時はErrInvalidCredentialsを返します。
	Verify(ctx context.Context, creds Credentials) (*entity.User, error)
}

// passwordVerifier はbcryptハッシュ照合によるCredentialVerifier実装です。
type passwordVerifier struct {
	users UserRepository
}

// passwordVerifierがCredentialVerifierを実装していることをコンパイル時に検証します。
var _ CredentialVerifier = (*passwordVerifier)(nil)

// NewPasswordVerifier はpasswordVerifierの新しいインスタンスを生成します。
func NewPasswordVerifier(users UserRepository) *passwordVerifier {
	return &passwordVerifier{users: users}
}

// Verify はメールアドレスでユーザーを検索し、パスワードを照合します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ユーザー未検出とパスワード不一致は同一のエラーとして返します。
func (v *passwordVerifier) Verify(ctx context.Context, creds Credentials) (*entity.User, error) {
	user, err := v.users.FindByEmail(ctx, creds.Email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(creds.Password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
