package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/credential/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/idempotency"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeRepo struct {
	byEmail map[string]*entity.APIKey
	byKey   map[string]*entity.APIKey

	getEmailErr error
	getKeyErr   error
	createErrs  []error // popped per call; nil means success
	created     []entity.APIKey
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: map[string]*entity.APIKey{},
		byKey:   map[string]*entity.APIKey{},
	}
}

func (f *fakeRepo) GetAPIKeyByEmail(_ context.Context, email string) (*entity.APIKey, error) {
	if f.getEmailErr != nil {
		return nil, f.getEmailErr
	}
	if ak, ok := f.byEmail[email]; ok {
		return ak, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) GetAPIKeyByKey(_ context.Context, key string) (*entity.APIKey, error) {
	if f.getKeyErr != nil {
		return nil, f.getKeyErr
	}
	if ak, ok := f.byKey[key]; ok {
		return ak, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) CreateAPIKey(_ context.Context, in entity.APIKey) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.created = append(f.created, in)
	f.byEmail[in.Email] = &in
	f.byKey[in.Key] = &in
	return nil
}

type fakeMailer struct {
	err  error
	sent []mail.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) Close() error { return nil }

type fakeGuard struct {
	state      idempotency.State
	acquireErr error
	released   []string
}

func (f *fakeGuard) Acquire(_ context.Context, _ string, _ time.Duration) (idempotency.State, error) {
	if f.acquireErr != nil {
		return idempotency.StateError, f.acquireErr
	}
	return f.state, nil
}

func (f *fakeGuard) MarkCompleted(_ context.Context, _ string, _ time.Duration) error { return nil }
func (f *fakeGuard) MarkFailed(_ context.Context, _ string, _ time.Duration) error   { return nil }

func (f *fakeGuard) Release(_ context.Context, key string) error {
	f.released = append(f.released, key)
	return nil
}

type fakeSecret struct {
	values []string
	next   int
}

func (f *fakeSecret) Generate(n int) (string, error) {
	if f.next >= len(f.values) {
		return "", errors.New("fake secret exhausted")
	}
	v := f.values[f.next]
	f.next++
	return v, nil
}

type fakeNumberID struct{ n int64 }

func (f *fakeNumberID) Generate() int64 {
	f.n++
	return f.n
}

type fakeConfig struct{}

func (fakeConfig) Close() error                   { return nil }
func (fakeConfig) GetBool(string) bool            { return false }
func (fakeConfig) GetString(string) string        { return "noreply@example.com" }
func (fakeConfig) GetInt(string) int              { return 0 }
func (fakeConfig) GetInt32(string) int32          { return 0 }
func (fakeConfig) GetFloat64(string) float64      { return 0 }
func (fakeConfig) GetSecond(string) time.Duration { return 30 * time.Second }
func (fakeConfig) GetMinute(string) time.Duration { return 5 * time.Minute }
func (fakeConfig) GetArray(string) []string       { return nil }

func mustValidator(t *testing.T) validator.Validator {
	t.Helper()
	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}
	return v
}

type ucFixture struct {
	uc     *Usecase
	repo   *fakeRepo
	mailer *fakeMailer
	guard  *fakeGuard
	secret *fakeSecret
}

func newFixture(t *testing.T) *ucFixture {
	t.Helper()

	f := &ucFixture{
		repo:   newFakeRepo(),
		mailer: &fakeMailer{},
		guard:  &fakeGuard{state: idempotency.StateNone},
		secret: &fakeSecret{values: []string{"key-one", "key-two", "key-three"}},
	}
	f.uc = New(Dependency{
		RepoDB:      f.repo,
		Idempotency: f.guard,
		Validator:   mustValidator(t),
		Config:      fakeConfig{},
		Secret:      f.secret,
		Mailer:      f.mailer,
		UID:         &fakeNumberID{},
		Instrument:  instrument.NewNoop(),
	})
	return f
}

func asGoerror(t *testing.T, err error) *goerror.Error {
	t.Helper()
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	return gerr
}

// ---------------------------------------------------------------------------
// IssueKey
// ---------------------------------------------------------------------------

func TestIssueKey_Success(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "User@Example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Email != "user@example.com" {
		t.Errorf("email not normalized: %q", out.Email)
	}
	if out.Key != "key-one" {
		t.Errorf("unexpected key: %q", out.Key)
	}
	if !out.Delivered {
		t.Error("expected delivered=true")
	}

	if len(f.repo.created) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(f.repo.created))
	}
	if got := f.repo.created[0].CreatedBy; got != "user_request" {
		t.Errorf("expected default creator, got %q", got)
	}
	if len(f.mailer.sent) != 1 || f.mailer.sent[0].To[0] != "user@example.com" {
		t.Errorf("expected key mailed to owner, got %+v", f.mailer.sent)
	}
	if len(f.guard.released) != 1 {
		t.Errorf("expected idempotency guard released once, got %d", len(f.guard.released))
	}
}

func TestIssueKey_MissingEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.IssueKey(context.Background(), IssueKeyInput{})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeInvalidInput {
		t.Errorf("expected CodeInvalidInput, got %v", gerr.Code())
	}
	if len(f.repo.created) != 0 {
		t.Error("store must not be touched on validation failure")
	}
}

func TestIssueKey_EmailAlreadyHasKey(t *testing.T) {
	f := newFixture(t)
	f.repo.byEmail["user@example.com"] = &entity.APIKey{Email: "user@example.com", Key: "old"}

	_, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeConflict {
		t.Errorf("expected CodeConflict, got %v", gerr.Code())
	}
	if gerr.Msg() != "An API key for this email already exists." {
		t.Errorf("unexpected message: %q", gerr.Msg())
	}
	if len(f.repo.created) != 0 {
		t.Error("no new row may be inserted on conflict")
	}
}

func TestIssueKey_RegeneratesOnCollision(t *testing.T) {
	f := newFixture(t)
	f.repo.createErrs = []error{entity.ErrKeyCollision, entity.ErrKeyCollision}

	out, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Key != "key-three" {
		t.Errorf("expected third generated key after two collisions, got %q", out.Key)
	}
	if f.secret.next != 3 {
		t.Errorf("expected 3 generations, got %d", f.secret.next)
	}
}

func TestIssueKey_InsertTimeEmailConflict(t *testing.T) {
	f := newFixture(t)
	f.repo.createErrs = []error{goerror.ErrConflict}

	_, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeConflict {
		t.Errorf("expected CodeConflict, got %v", gerr.Code())
	}
	if gerr.Msg() != "An API key for this email already exists." {
		t.Errorf("unexpected message: %q", gerr.Msg())
	}
	if f.secret.next != 1 {
		t.Errorf("email conflict must not trigger regeneration, got %d attempts", f.secret.next)
	}
}

func TestIssueKey_CollisionCapExceeded(t *testing.T) {
	f := newFixture(t)
	f.secret.values = make([]string, maxGenerationAttempts+1)
	for i := range f.secret.values {
		f.secret.values[i] = "dup"
	}
	for range f.secret.values {
		f.repo.createErrs = append(f.repo.createErrs, entity.ErrKeyCollision)
	}

	_, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeInternal {
		t.Errorf("expected CodeInternal after exhausting attempts, got %v", gerr.Code())
	}
	if f.secret.next != maxGenerationAttempts {
		t.Errorf("expected exactly %d attempts, got %d", maxGenerationAttempts, f.secret.next)
	}
}

func TestIssueKey_DeliveryFailureStillReturnsKey(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")

	out, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Delivered {
		t.Error("expected delivered=false")
	}
	if out.Key != "key-one" {
		t.Errorf("key must survive delivery failure, got %q", out.Key)
	}
	if _, ok := f.repo.byKey["key-one"]; !ok {
		t.Error("stored key must remain valid after delivery failure")
	}
}

func TestIssueKey_StoreUnavailable(t *testing.T) {
	f := newFixture(t)
	f.repo.getEmailErr = goerror.ErrUnavailable

	_, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeUnavailable {
		t.Errorf("expected CodeUnavailable, got %v", gerr.Code())
	}
}

func TestIssueKey_ConcurrentRequestBlocked(t *testing.T) {
	f := newFixture(t)
	f.guard.state = idempotency.StateInProgress

	_, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeConflict {
		t.Errorf("expected CodeConflict, got %v", gerr.Code())
	}
	if len(f.repo.created) != 0 {
		t.Error("no insert while another request holds the guard")
	}
}

func TestIssueKey_GuardUnavailableProceeds(t *testing.T) {
	f := newFixture(t)
	f.guard.acquireErr = errors.New("redis down")

	out, err := f.uc.IssueKey(context.Background(), IssueKeyInput{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("guard outage must not block issuance: %v", err)
	}
	if out.Key == "" {
		t.Error("expected a key despite guard outage")
	}
}

// ---------------------------------------------------------------------------
// Authorize
// ---------------------------------------------------------------------------

func TestAuthorize(t *testing.T) {
	f := newFixture(t)
	f.repo.byKey["known-key"] = &entity.APIKey{Email: "user@example.com", Key: "known-key"}

	if !f.uc.Authorize(context.Background(), "known-key") {
		t.Error("known key must be accepted")
	}
	if f.uc.Authorize(context.Background(), "unknown-key") {
		t.Error("unknown key must be denied")
	}
	if f.uc.Authorize(context.Background(), "") {
		t.Error("empty key must be denied")
	}
}

func TestAuthorize_FailsClosedOnStoreError(t *testing.T) {
	f := newFixture(t)
	f.repo.byKey["known-key"] = &entity.APIKey{Email: "user@example.com", Key: "known-key"}
	f.repo.getKeyErr = goerror.ErrUnavailable

	if f.uc.Authorize(context.Background(), "known-key") {
		t.Error("store outage must deny access")
	}
}
