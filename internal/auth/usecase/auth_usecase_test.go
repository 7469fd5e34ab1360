package usecase

import (
	"sync"
	"testing"
	"time"

	authdomain "jobtrackr-backend/internal/auth/domain"
	authdto "jobtrackr-backend/internal/auth/dto"
	"jobtrackr-backend/pkg/config"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository for usecase tests
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*authdomain.User
	tokens map[string]*authdomain.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*authdomain.User),
		tokens: make(map[string]*authdomain.RefreshToken),
	}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New().String()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListAll() ([]*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*authdomain.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

// fakeFCMRepo is a no-op FCMTokenRepository
type fakeFCMRepo struct{}

func (fakeFCMRepo) SaveToken(userID, token, deviceInfo string) error { return nil }

func (fakeFCMRepo) GetTokensByUserID(userID string) ([]authdomain.FCMToken, error) {
	return nil, nil
}

func (fakeFCMRepo) DeleteToken(token string) error { return nil }

func (fakeFCMRepo) DeleteTokensByUserID(userID string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	uc := NewAuthUsecase(newFakeUserRepo(), fakeFCMRepo{}, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "me@example.com",
		Password: "hunter22",
		FullName: "Alex",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected tokens on registration")
	}
	if resp.User.Password == "hunter22" {
		t.Fatal("password must be stored hashed")
	}

	if _, err := uc.Register(&authdto.RegisterRequest{Email: "me@example.com", Password: "x"}); err == nil {
		t.Fatal("expected duplicate email to fail")
	}

	login, err := uc.Login(&authdto.LoginRequest{Email: "me@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Fatal("login must resolve the registered user")
	}

	if _, err := uc.Login(&authdto.LoginRequest{Email: "me@example.com", Password: "wrong"}); err == nil {
		t.Fatal("expected wrong password to fail")
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	uc := NewAuthUsecase(newFakeUserRepo(), fakeFCMRepo{}, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "me@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if user.Email != "me@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := uc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected garbage token to fail")
	}
}

func TestRefreshTokenFlow(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, fakeFCMRepo{}, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "me@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("expected fresh access token")
	}

	// logging out revokes the stored refresh token
	if err := uc.Logout(resp.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := uc.RefreshToken(resp.RefreshToken); err == nil {
		t.Fatal("expected revoked refresh token to fail")
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	uc := NewAuthUsecase(newFakeUserRepo(), fakeFCMRepo{}, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{Email: "me@example.com", Password: "oldpass1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := uc.ChangePassword(resp.User.ID, "wrong", "newpass1"); err == nil {
		t.Fatal("expected wrong current password to fail")
	}
	if err := uc.ChangePassword(resp.User.ID, "oldpass1", "newpass1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := uc.Login(&authdto.LoginRequest{Email: "me@example.com", Password: "newpass1"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := uc.Login(&authdto.LoginRequest{Email: "me@example.com", Password: "oldpass1"}); err == nil {
		t.Fatal("old password must stop working")
	}
}
