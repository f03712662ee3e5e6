package services

import (
	"context"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/fathima-sithara/cloudee-backend/internal/models"
	"github.com/fathima-sithara/cloudee-backend/internal/repository"
)

type fakeAssetRepo struct {
	mu        sync.Mutex
	byID      map[string]models.Asset // hex id -> record
	insertErr error
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{byID: map[string]models.Asset{}}
}

func (f *fakeAssetRepo) Insert(_ context.Context, a *models.Asset) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.byID[a.ID.Hex()] = *a
	return a.ID.Hex(), nil
}

func (f *fakeAssetRepo) FindByEmail(_ context.Context, email string) ([]models.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Asset
	for _, a := range f.byID {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) DeleteByID(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func (f *fakeAssetRepo) DeleteByPublicID(_ context.Context, publicID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, a := range f.byID {
		if a.PublicID == publicID {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeAssetRepo) countByPublicID(publicID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.byID {
		if a.PublicID == publicID {
			n++
		}
	}
	return n
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // email -> record
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

// add seeds a verified user with a real (cheap) bcrypt hash.
func (f *fakeUserRepo) add(t *testing.T, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash seed password: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = models.User{
		ID:              primitive.NewObjectID(),
		Username:        "tester",
		Email:           email,
		Password:        string(hash),
		IsEmailVerified: true,
	}
}

func (f *fakeUserRepo) exists(email string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[email]
	return ok
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return "", repository.ErrDuplicateEmail
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.Email] = *u
	return u.ID.Hex(), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	u.Password = passwordHash
	f.users[email] = u
	return 1, nil
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.IsEmailVerified = true
	f.users[email] = u
	return nil
}

func (f *fakeUserRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	delete(f.users, email)
	return 1, nil
}

// fakeCodeStore keeps one code per kind/email pair and consumes it on a
// successful check, mirroring the redis-backed store.
type fakeCodeStore struct {
	mu      sync.Mutex
	codes   map[string]string
	saveErr error
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: map[string]string{}}
}

func (f *fakeCodeStore) key(kind, email string) string {
	return kind + ":" + email
}

func (f *fakeCodeStore) Save(_ context.Context, kind, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.codes[f.key(kind, email)] = code
	return nil
}

func (f *fakeCodeStore) Check(_ context.Context, kind, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.codes[f.key(kind, email)]
	if !ok {
		return ErrCodeExpired
	}
	if stored != code {
		return ErrInvalidCode
	}
	delete(f.codes, f.key(kind, email))
	return nil
}

func (f *fakeCodeStore) stored(kind, email string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code, ok := f.codes[f.key(kind, email)]
	return code, ok
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) Send(_ context.Context, to, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: html})
	return nil
}
