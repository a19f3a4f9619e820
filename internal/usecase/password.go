package usecase

import "golang.org/x/crypto/bcrypt"

// PasswordSchemeはディレクトリに入れる資格情報の扱い方。
// モックの既定は平文（PlainPasswordScheme）。仕様どおり敢えて直していない。
type PasswordScheme interface {
	Hash(plain string) (string, error)
	Verify(stored string, plain string) bool
}

// PlainPasswordSchemeは平文をそのまま保存・比較する。
// 元のデモの挙動を忠実に保つためのもので、セキュリティの参考にしないこと。
type PlainPasswordScheme struct{}

func NewPlainPasswordScheme() *PlainPasswordScheme {
	return &PlainPasswordScheme{}
}

func (*PlainPasswordScheme) Hash(plain string) (string, error) {
	return plain, nil
}

func (*PlainPasswordScheme) Verify(stored string, plain string) bool {
	return stored == plain
}

// BcryptPasswordSchemeはデモの域を超えて使う場合の差し替え先。
type BcryptPasswordScheme struct {
	cost int
}

func NewBcryptPasswordScheme(cost int) *BcryptPasswordScheme {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordScheme{cost: cost}
}

func (s *BcryptPasswordScheme) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (*BcryptPasswordScheme) Verify(stored string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
