package user

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"saudaMarket/domain"
	redisrepo "saudaMarket/internal/repository/redis"
	"saudaMarket/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/pobyzaarif/goshortcute"
)

const testVerificationKey = "0123456789abcdef0123456789abcdef"

func TestMain(m *testing.M) {
	utils.InitJWT("test-secret")
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	users  map[uint]domain.User
	nextID uint
	favs   map[uint]map[uint64]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]domain.User{}, nextID: 1, favs: map[uint]map[uint64]bool{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError("user %d not found", id)
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError("user with email %s not found", email)
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.NotFoundError("user %d not found", user.ID)
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateEmailVerification(ctx context.Context, id uint, isVerified bool) error {
	u, ok := f.users[id]
	if !ok {
		return domain.NotFoundError("user %d not found", id)
	}
	u.IsVerified = isVerified
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) AddFavorite(ctx context.Context, userID uint, product *domain.Product) error {
	if f.favs[userID] == nil {
		f.favs[userID] = map[uint64]bool{}
	}
	f.favs[userID][product.ID] = true
	return nil
}

func (f *fakeUserRepo) RemoveFavorite(ctx context.Context, userID uint, product *domain.Product) error {
	delete(f.favs[userID], product.ID)
	return nil
}

func (f *fakeUserRepo) FindFavorites(ctx context.Context, userID uint) ([]domain.Product, error) {
	var out []domain.Product
	for id := range f.favs[userID] {
		out = append(out, domain.Product{ID: id})
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[uint64]domain.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error { return nil }

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.NotFoundError("product %d not found", id)
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error               { return nil }
func (f *fakeProductRepo) CountByStore(ctx context.Context, storeID uint64) (int64, error) {
	return 0, nil
}

type fakeNotifRepo struct {
	sent []string
}

func (f *fakeNotifRepo) SendEmail(toName, toEmail, subject, message string) error {
	f.sent = append(f.sent, toEmail)
	return nil
}

type fakeTokenRepo struct {
	sessions map[string]redisrepo.SessionData
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{sessions: map[string]redisrepo.SessionData{}}
}

func (f *fakeTokenRepo) StoreToken(ctx context.Context, userID, token string, data redisrepo.SessionData, ttl time.Duration) error {
	f.sessions[token] = data
	return nil
}

func (f *fakeTokenRepo) ValidateToken(ctx context.Context, token string) (string, error) {
	data, ok := f.sessions[token]
	if !ok {
		return "", domain.UnauthorizedError("token expired or invalid")
	}
	return data.UserID, nil
}

func (f *fakeTokenRepo) DeleteToken(ctx context.Context, userID, token string) error {
	delete(f.sessions, token)
	return nil
}

func newTestUserService() (*userService, *fakeUserRepo, *fakeNotifRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	productRepo := &fakeProductRepo{products: map[uint64]domain.Product{
		1: {ID: 1, ProductName: "Ceramic pot", PurchasePrice: 100, StockQuantity: 5},
	}}
	notifRepo := &fakeNotifRepo{}
	tokenRepo := newFakeTokenRepo()
	svc := NewUserService(userRepo, productRepo, validator.New(), notifRepo, tokenRepo, testVerificationKey, "http://localhost:8080")
	return svc, userRepo, notifRepo, tokenRepo
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	svc, repo, _, _ := newTestUserService()

	if err := svc.EnsureBootstrapAdmin(context.Background(), "admin@example.com", "changeme123"); err != nil {
		t.Fatalf("EnsureBootstrapAdmin: %v", err)
	}

	admin, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", admin.Role)
	}
	if !admin.IsVerified {
		t.Error("bootstrap admin should be verified")
	}
	if !utils.CheckPassword("changeme123", admin.Password) {
		t.Error("bootstrap admin password not hashed correctly")
	}

	// second run is a no-op even with different credentials
	if err := svc.EnsureBootstrapAdmin(context.Background(), "other@example.com", "password"); err != nil {
		t.Fatalf("second EnsureBootstrapAdmin: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), "other@example.com"); err == nil {
		t.Error("second bootstrap admin was created")
	}
}

func TestEnsureBootstrapAdminSkippedWhenUsersExist(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	repo.Create(context.Background(), &domain.User{Email: "someone@example.com", Role: domain.RoleUser})

	if err := svc.EnsureBootstrapAdmin(context.Background(), "admin@example.com", "changeme123"); err != nil {
		t.Fatalf("EnsureBootstrapAdmin: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), "admin@example.com"); err == nil {
		t.Error("bootstrap admin created despite existing users")
	}
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	svc, repo, notif, _ := newTestUserService()

	created, err := svc.Register(context.Background(), &domain.User{
		FullName: "Aida",
		Email:    "aida@example.com",
		Password: "secret123",
		Role:     domain.RoleAdmin, // must be ignored
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if created.Role != domain.RoleUser {
		t.Errorf("role = %q, want user regardless of request", created.Role)
	}
	if created.IsVerified {
		t.Error("new accounts must start unverified")
	}
	if created.Password != "" {
		t.Error("password leaked in response")
	}

	stored, _ := repo.FindByEmail(context.Background(), "aida@example.com")
	if !utils.CheckPassword("secret123", stored.Password) {
		t.Error("stored password is not a valid hash")
	}
	if len(notif.sent) != 1 || notif.sent[0] != "aida@example.com" {
		t.Errorf("verification email not sent, got %v", notif.sent)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &domain.User{Email: "not-an-email", Password: "secret123"})
	if !domain.IsKind(err, domain.ErrValidation) {
		t.Errorf("bad email: err = %v, want validation", err)
	}

	_, err = svc.Register(context.Background(), &domain.User{Email: "a@example.com", Password: "short"})
	if !domain.IsKind(err, domain.ErrValidation) {
		t.Errorf("short password: err = %v, want validation", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestUserService()

	if _, err := svc.Register(context.Background(), &domain.User{Email: "dup@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), &domain.User{Email: "dup@example.com", Password: "secret123"})
	if !domain.IsKind(err, domain.ErrConflict) {
		t.Errorf("duplicate email: err = %v, want conflict", err)
	}
}

func TestLoginStoresSession(t *testing.T) {
	svc, repo, _, tokens := newTestUserService()
	hash, _ := utils.HashPassword("secret123")
	repo.Create(context.Background(), &domain.User{
		Email: "aida@example.com", Password: hash, IsVerified: true, Role: domain.RoleUser,
	})

	token, user, err := svc.Login(context.Background(), "aida@example.com", "secret123", "10.0.0.1", "go-test")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if user.Password != "" {
		t.Error("password leaked in login response")
	}

	session, ok := tokens.sessions[token]
	if !ok {
		t.Fatal("session not stored")
	}
	if session.IPAddress != "10.0.0.1" || session.UserAgent != "go-test" {
		t.Errorf("session metadata = %q/%q", session.IPAddress, session.UserAgent)
	}

	claims, err := utils.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Role != domain.RoleUser {
		t.Errorf("token role = %q, want user", claims.Role)
	}
}

func TestLoginRejections(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	hash, _ := utils.HashPassword("secret123")
	repo.Create(context.Background(), &domain.User{
		Email: "verified@example.com", Password: hash, IsVerified: true, Role: domain.RoleUser,
	})
	repo.Create(context.Background(), &domain.User{
		Email: "pending@example.com", Password: hash, IsVerified: false, Role: domain.RoleUser,
	})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret123"},
		{"wrong password", "verified@example.com", "wrong"},
		{"unverified account", "pending@example.com", "secret123"},
	}
	for _, tc := range cases {
		_, _, err := svc.Login(context.Background(), tc.email, tc.password, "", "")
		if !domain.IsKind(err, domain.ErrUnauthorized) {
			t.Errorf("%s: err = %v, want unauthorized", tc.name, err)
		}
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repo, _, tokens := newTestUserService()
	hash, _ := utils.HashPassword("secret123")
	repo.Create(context.Background(), &domain.User{
		Email: "aida@example.com", Password: hash, IsVerified: true, Role: domain.RoleUser,
	})

	token, user, err := svc.Login(context.Background(), "aida@example.com", "secret123", "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.ValidateTokenFromRedis(context.Background(), token); err == nil {
		t.Error("token still valid after logout")
	}
	if len(tokens.sessions) != 0 {
		t.Errorf("sessions remaining = %d", len(tokens.sessions))
	}
}

func TestRefreshTokenRotatesSession(t *testing.T) {
	svc, repo, _, tokens := newTestUserService()
	hash, _ := utils.HashPassword("secret123")
	repo.Create(context.Background(), &domain.User{
		Email: "aida@example.com", Password: hash, IsVerified: true, Role: domain.RoleUser,
	})

	oldToken, _, err := svc.Login(context.Background(), "aida@example.com", "secret123", "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	newToken, _, err := svc.RefreshToken(context.Background(), oldToken, "10.0.0.2", "go-test")
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}

	if _, ok := tokens.sessions[oldToken]; ok {
		t.Error("old session survived refresh")
	}
	if _, ok := tokens.sessions[newToken]; !ok {
		t.Error("new session not stored")
	}

	_, _, err = svc.RefreshToken(context.Background(), "bogus", "", "")
	if !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Errorf("bogus refresh: err = %v, want unauthorized", err)
	}
}

func encodeVerificationCode(t *testing.T, email string, expAt int64) string {
	t.Helper()
	code := fmt.Sprintf("%v|%v", email, expAt)
	enc, err := goshortcute.AESCBCEncrypt([]byte(code), []byte(testVerificationKey))
	if err != nil {
		t.Fatalf("encrypt verification code: %v", err)
	}
	return goshortcute.StringtoBase64Encode(enc)
}

func TestVerifyEmail(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	repo.Create(context.Background(), &domain.User{
		Email: "aida@example.com", IsVerified: false, Role: domain.RoleUser,
	})

	code := encodeVerificationCode(t, "aida@example.com", time.Now().Add(5*time.Minute).Unix())
	if err := svc.VerifyEmail(context.Background(), code); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}

	user, _ := repo.FindByEmail(context.Background(), "aida@example.com")
	if !user.IsVerified {
		t.Error("user still unverified")
	}

	// a second use of the link must fail
	if err := svc.VerifyEmail(context.Background(), code); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Errorf("reused link: err = %v, want unauthorized", err)
	}
}

func TestVerifyEmailExpiredAndGarbage(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	repo.Create(context.Background(), &domain.User{
		Email: "aida@example.com", IsVerified: false, Role: domain.RoleUser,
	})

	expired := encodeVerificationCode(t, "aida@example.com", time.Now().Add(-time.Minute).Unix())
	if err := svc.VerifyEmail(context.Background(), expired); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Errorf("expired link: err = %v, want unauthorized", err)
	}

	if err := svc.VerifyEmail(context.Background(), "garbage"); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Errorf("garbage code: err = %v, want unauthorized", err)
	}
}

func TestUpdateUserRoleValidation(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	repo.Create(context.Background(), &domain.User{
		Email: "aida@example.com", Role: domain.RoleUser,
	})

	_, err := svc.UpdateUser(context.Background(), 1, &domain.User{Role: "superuser"})
	if !domain.IsKind(err, domain.ErrValidation) {
		t.Errorf("bad role: err = %v, want validation", err)
	}

	updated, err := svc.UpdateUser(context.Background(), 1, &domain.User{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", updated.Role)
	}
}

func TestFavorites(t *testing.T) {
	svc, repo, _, _ := newTestUserService()
	repo.Create(context.Background(), &domain.User{Email: "aida@example.com", Role: domain.RoleUser})

	if err := svc.AddFavorite(context.Background(), 1, 1); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if err := svc.AddFavorite(context.Background(), 1, 99); !domain.IsKind(err, domain.ErrNotFound) {
		t.Errorf("unknown product: err = %v, want not found", err)
	}

	favs, err := svc.GetFavorites(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetFavorites: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != 1 {
		t.Errorf("favorites = %+v, want product 1", favs)
	}

	if err := svc.RemoveFavorite(context.Background(), 1, 1); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	favs, _ = svc.GetFavorites(context.Background(), 1)
	if len(favs) != 0 {
		t.Errorf("favorites after remove = %d, want 0", len(favs))
	}
}
