package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

var (
	// ログイン失敗。メッセージはそのまま画面に出す
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// 登録時のメール重複。こちらもそのまま画面に出す
	ErrEmailAlreadyExists = errors.New("User with this email already exists")
	// ストレージ起因など
	ErrInternal = errors.New("internal error")
)

// usecaseが時刻とID採番に依存する約束
type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

// 登録フォームの入力。
type RegisterInput struct {
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	UserType  model.UserType `json:"userType"`
}

// プロフィール部分更新。nilのフィールドは触らない（シャローマージ）。
type ProfileUpdate struct {
	FirstName   *string         `json:"firstName"`
	LastName    *string         `json:"lastName"`
	Avatar      *string         `json:"avatar"`
	UserType    *model.UserType `json:"userType"`
	TotalOrders *int            `json:"totalOrders"`
	Rating      *float64        `json:"rating"`
	Skills      *[]string       `json:"skills"`
	Description *string         `json:"description"`
}

// AuthUsecaseはモック認証のエンジン。
// 状態は「匿名」か「認証済み（current != nil）」の2つだけ。
// 操作は全部mutexで直列化するので、観測側が途中状態を見ることはない。
type AuthUsecase struct {
	mu       sync.Mutex
	dir      repository.UserDirectory
	sessions repository.SessionStore
	scheme   PasswordScheme
	ids      IDGenerator
	clock    Clock
	latency  time.Duration // 疑似的なAPI遅延

	current *model.User
}

func NewAuthUsecase(
	dir repository.UserDirectory,
	sessions repository.SessionStore,
	scheme PasswordScheme,
	ids IDGenerator,
	clock Clock,
	latency time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		dir:      dir,
		sessions: sessions,
		scheme:   scheme,
		ids:      ids,
		clock:    clock,
		latency:  latency,
	}
}

// Restoreは起動時に保存済みスナップショットからセッションを復元する。
// 無い・壊れている場合は匿名のまま。
func (u *AuthUsecase) Restore(ctx context.Context) error {
	user, err := u.sessions.Load(ctx)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.current = user
	u.mu.Unlock()
	return nil
}

// CurrentUserは現在のセッション。匿名なら ok=false。
func (u *AuthUsecase) CurrentUser() (model.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return model.User{}, false
	}
	return *u.current, true
}

func (u *AuthUsecase) IsAuthenticated() bool {
	_, ok := u.CurrentUser()
	return ok
}

// Loginはディレクトリをemail+パスワード完全一致で引く。
// 一致すればパスワード抜きの射影をセッションとして保存して返す。
// 不一致は ErrInvalidCredentials で、状態は変わらない。
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (*model.User, error) {
	if err := u.simulateLatency(ctx); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	recs, err := u.dir.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	for _, rec := range recs {
		if rec.Email == email && u.scheme.Verify(rec.Password, password) {
			user := rec.User // パスワードはUserRecord側にしか無い
			if err := u.sessions.Save(ctx, user); err != nil {
				return nil, ErrInternal
			}
			u.current = &user
			return &user, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Registerは新規ユーザーを合成してディレクトリに追記し、そのまま
// ログイン状態にする。email重複（大文字小文字は区別）は失敗。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := u.simulateLatency(ctx); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	recs, err := u.dir.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	for _, rec := range recs {
		if rec.Email == in.Email {
			return nil, ErrEmailAlreadyExists
		}
	}

	stored, err := u.scheme.Hash(in.Password)
	if err != nil {
		return nil, ErrInternal
	}

	rec := model.UserRecord{
		User: model.User{
			ID:          u.ids.NewID(),
			Email:       in.Email,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			UserType:    in.UserType,
			JoinDate:    u.clock.Now(),
			TotalOrders: 0,
			Rating:      5.0,
			Skills:      []string{},
			Description: "",
		},
		Password: stored,
	}

	if err := u.dir.Append(ctx, rec); err != nil {
		return nil, ErrInternal
	}

	user := rec.User
	if err := u.sessions.Save(ctx, user); err != nil {
		return nil, ErrInternal
	}
	u.current = &user
	return &user, nil
}

// Logoutはスナップショットを消して匿名へ戻す。ディレクトリは触らない。
func (u *AuthUsecase) Logout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.sessions.Clear(ctx); err != nil {
		return ErrInternal
	}
	u.current = nil
	return nil
}

// UpdateProfileは指定されたフィールドだけを現在のセッションに被せ、
// スナップショットとディレクトリの該当エントリを更新する。匿名ならno-op。
func (u *AuthUsecase) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return nil
	}

	merged := *u.current
	applyUpdate(&merged, upd)

	if err := u.sessions.Save(ctx, merged); err != nil {
		return ErrInternal
	}
	u.current = &merged

	// ディレクトリ側にも同じ差分を当てる（パスワードは保持）
	recs, err := u.dir.List(ctx)
	if err != nil {
		return ErrInternal
	}
	for _, rec := range recs {
		if rec.ID == merged.ID {
			rec.User = merged
			if _, err := u.dir.Update(ctx, rec); err != nil {
				return ErrInternal
			}
			break
		}
	}

	return nil
}

func applyUpdate(user *model.User, upd ProfileUpdate) {
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}
	if upd.UserType != nil {
		user.UserType = *upd.UserType
	}
	if upd.TotalOrders != nil {
		user.TotalOrders = *upd.TotalOrders
	}
	if upd.Rating != nil {
		user.Rating = *upd.Rating
	}
	if upd.Skills != nil {
		user.Skills = *upd.Skills
	}
	if upd.Description != nil {
		user.Description = *upd.Description
	}
}

// 固定遅延でネットワーク越しのAPIを装う。ctxキャンセルには従う。
func (u *AuthUsecase) simulateLatency(ctx context.Context) error {
	if u.latency <= 0 {
		return nil
	}
	t := time.NewTimer(u.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
