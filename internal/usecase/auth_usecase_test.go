package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	"storefront/internal/infra/kv"
	infraRepo "storefront/internal/infra/repository"
	domainrepo "storefront/internal/repository"
	"storefront/internal/usecase"
)

type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("user-%d", s.n)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// インメモリKVの上に本物のアダプタを重ねたusecase（遅延なし）
func newAuthUC(store domainrepo.KVStore) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(
		infraRepo.NewKVUserDirectory(store),
		infraRepo.NewKVSessionStore(store),
		usecase.NewPlainPasswordScheme(),
		&seqIDs{},
		&fixedClock{now: testTime},
		0,
	)
}

func register(t *testing.T, u *usecase.AuthUsecase, email string, password string) *model.User {
	t.Helper()
	user, err := u.Register(context.Background(), usecase.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: "Taro",
		LastName:  "Yamada",
		UserType:  model.UserTypeBuyer,
	})
	assert.NoError(t, err)
	return user
}

// =====================
// Register
// =====================

func TestAuthUsecase_Register_Success(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	user := register(t, u, "taro@test.com", "CorrectPW")

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "taro@test.com", user.Email)
	assert.Equal(t, model.UserTypeBuyer, user.UserType)
	assert.Equal(t, testTime, user.JoinDate)
	assert.Equal(t, 5.0, user.Rating)
	assert.Equal(t, 0, user.TotalOrders)
	assert.Equal(t, []string{}, user.Skills)
	assert.Empty(t, user.Description)

	// 登録と同時にログイン状態になる
	current, ok := u.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

// 保存されるセッションスナップショットにパスワードが漏れていないこと
func TestAuthUsecase_Register_SessionSnapshotHasNoPassword(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "SuperSecret")

	b, ok, err := store.Get(context.Background(), "currentSessionUser")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NotContains(t, string(b), "SuperSecret")
	assert.NotContains(t, string(b), `"password"`)

	// ディレクトリ側には平文のまま入っている（モック仕様）
	b, ok, err = store.Get(context.Background(), "userDirectory")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, string(b), "SuperSecret")
}

// 同じemailの2回目は失敗し、1回目の状態も壊れない
func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "pw1")

	user, err := u.Register(context.Background(), usecase.RegisterInput{
		Email:    "taro@test.com",
		Password: "pw2",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	assert.EqualError(t, err, "User with this email already exists")

	// ディレクトリは1件のまま
	dir := infraRepo.NewKVUserDirectory(store)
	recs, _ := dir.List(context.Background())
	assert.Len(t, recs, 1)

	// セッションは最初のユーザーのまま
	current, ok := u.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "user-1", current.ID)
}

// emailの比較は大文字小文字を区別する（元の挙動のまま）
func TestAuthUsecase_Register_EmailMatchIsCaseSensitive(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "pw")

	user, err := u.Register(context.Background(), usecase.RegisterInput{
		Email:    "TARO@test.com",
		Password: "pw",
	})
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

// =====================
// Login
// =====================

// Register → Logout → 同じ資格情報でLoginできる
func TestAuthUsecase_RegisterThenLogin(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	registered := register(t, u, "taro@test.com", "CorrectPW")
	assert.NoError(t, u.Logout(context.Background()))
	assert.False(t, u.IsAuthenticated())

	user, err := u.Login(context.Background(), "taro@test.com", "CorrectPW")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.True(t, u.IsAuthenticated())
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "CorrectPW")
	assert.NoError(t, u.Logout(context.Background()))

	user, err := u.Login(context.Background(), "taro@test.com", "WrongPW")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")

	// 匿名のまま
	assert.False(t, u.IsAuthenticated())
}

// ログイン失敗では既存セッションも変わらない
func TestAuthUsecase_Login_FailureKeepsCurrentSession(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "pw1")
	register2, err := u.Register(context.Background(), usecase.RegisterInput{
		Email:    "jiro@test.com",
		Password: "pw2",
	})
	assert.NoError(t, err)

	_, err = u.Login(context.Background(), "taro@test.com", "WrongPW")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	current, ok := u.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, register2.ID, current.ID)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	user, err := u.Login(context.Background(), "nobody@test.com", "pw")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

// 疑似遅延はctxキャンセルに従う
func TestAuthUsecase_Login_LatencyRespectsContext(t *testing.T) {
	store := kv.NewMemory()
	u := usecase.NewAuthUsecase(
		infraRepo.NewKVUserDirectory(store),
		infraRepo.NewKVSessionStore(store),
		usecase.NewPlainPasswordScheme(),
		&seqIDs{},
		&fixedClock{now: testTime},
		500*time.Millisecond,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := u.Login(ctx, "taro@test.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

// =====================
// Logout
// =====================

func TestAuthUsecase_Logout_ClearsSnapshotOnly(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "pw")
	assert.NoError(t, u.Logout(context.Background()))

	_, ok, _ := store.Get(context.Background(), "currentSessionUser")
	assert.False(t, ok)

	// ディレクトリは残る
	_, ok, _ = store.Get(context.Background(), "userDirectory")
	assert.True(t, ok)
}

// =====================
// UpdateProfile
// =====================

func TestAuthUsecase_UpdateProfile_ShallowMerge(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	register(t, u, "taro@test.com", "pw")

	desc := "Carpenter, 10 years"
	skills := []string{"framing", "decking"}
	err := u.UpdateProfile(context.Background(), usecase.ProfileUpdate{
		Description: &desc,
		Skills:      &skills,
	})
	assert.NoError(t, err)

	current, ok := u.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, desc, current.Description)
	assert.Equal(t, skills, current.Skills)
	// 触っていないフィールドはそのまま
	assert.Equal(t, "Taro", current.FirstName)
	assert.Equal(t, "taro@test.com", current.Email)

	// ディレクトリ側にも反映され、パスワードは保持される
	dir := infraRepo.NewKVUserDirectory(store)
	recs, _ := dir.List(context.Background())
	assert.Len(t, recs, 1)
	assert.Equal(t, desc, recs[0].Description)
	assert.Equal(t, "pw", recs[0].Password)

	// スナップショットも更新済み
	sessions := infraRepo.NewKVSessionStore(store)
	saved, _ := sessions.Load(context.Background())
	assert.Equal(t, desc, saved.Description)
}

// 匿名のときはno-op
func TestAuthUsecase_UpdateProfile_AnonymousIsNoop(t *testing.T) {
	store := kv.NewMemory()
	u := newAuthUC(store)

	desc := "should not be stored"
	assert.NoError(t, u.UpdateProfile(context.Background(), usecase.ProfileUpdate{Description: &desc}))

	_, ok, _ := store.Get(context.Background(), "currentSessionUser")
	assert.False(t, ok)
}

// =====================
// Restore（起動時の復元）
// =====================

func TestAuthUsecase_Restore_FromSnapshot(t *testing.T) {
	store := kv.NewMemory()

	saved := model.User{ID: "user-9", Email: "saved@test.com", UserType: model.UserTypeSeller}
	b, _ := json.Marshal(saved)
	assert.NoError(t, store.Set(context.Background(), "currentSessionUser", b))

	u := newAuthUC(store)
	assert.NoError(t, u.Restore(context.Background()))

	current, ok := u.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "user-9", current.ID)
}

// 壊れたスナップショットは匿名扱いで、エラーにならない
func TestAuthUsecase_Restore_MalformedSnapshotMeansAnonymous(t *testing.T) {
	store := kv.NewMemory()
	assert.NoError(t, store.Set(context.Background(), "currentSessionUser", []byte("{not json")))

	u := newAuthUC(store)
	assert.NoError(t, u.Restore(context.Background()))
	assert.False(t, u.IsAuthenticated())

	// 壊れた値は片付けられる
	_, ok, _ := store.Get(context.Background(), "currentSessionUser")
	assert.False(t, ok)
}

func TestAuthUsecase_Restore_EmptyStoreMeansAnonymous(t *testing.T) {
	u := newAuthUC(kv.NewMemory())
	assert.NoError(t, u.Restore(context.Background()))
	assert.False(t, u.IsAuthenticated())
}

// =====================
// Mock: UserDirectory（重複時にAppendが呼ばれないこと）
// =====================

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) List(ctx context.Context) ([]model.UserRecord, error) {
	args := m.Called(ctx)
	recs, _ := args.Get(0).([]model.UserRecord)
	return recs, args.Error(1)
}

func (m *MockUserDirectory) Append(ctx context.Context, rec model.UserRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockUserDirectory) Update(ctx context.Context, rec model.UserRecord) (bool, error) {
	args := m.Called(ctx, rec)
	return args.Bool(0), args.Error(1)
}

func TestAuthUsecase_Register_DuplicateDoesNotAppend(t *testing.T) {
	store := kv.NewMemory()
	dir := new(MockUserDirectory)

	existing := model.UserRecord{
		User:     model.User{ID: "user-1", Email: "taro@test.com"},
		Password: "pw",
	}
	dir.On("List", mock.Anything).Return([]model.UserRecord{existing}, nil)

	u := usecase.NewAuthUsecase(
		dir,
		infraRepo.NewKVSessionStore(store),
		usecase.NewPlainPasswordScheme(),
		&seqIDs{},
		&fixedClock{now: testTime},
		0,
	)

	_, err := u.Register(context.Background(), usecase.RegisterInput{
		Email:    "taro@test.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

	dir.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	dir.AssertExpectations(t)
}
