package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/passcode/entity"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/goerror"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/hash"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/instrument"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/mail"
	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/pkg/validator"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeRepo struct {
	records map[string]entity.ActiveOTP

	getErr    error
	upsertErr error
	deleteErr error

	upserts int
	deletes int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]entity.ActiveOTP{}}
}

func (f *fakeRepo) GetActiveOTP(_ context.Context, email string) (*entity.ActiveOTP, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeRepo) UpsertActiveOTP(_ context.Context, in entity.ActiveOTP) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.records[in.UserEmail] = in
	return nil
}

func (f *fakeRepo) DeleteActiveOTP(_ context.Context, email string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	delete(f.records, email)
	return nil
}

func (f *fakeRepo) DeleteExpiredOTPs(_ context.Context, before time.Time) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var n int64
	for email, rec := range f.records {
		if rec.ExpiresAt.Before(before) {
			delete(f.records, email)
			n++
		}
	}
	return n, nil
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

type fakeSecret struct {
	values []string
	next   int
}

func (f *fakeSecret) Generate(int) (string, error) {
	if f.next >= len(f.values) {
		return "", errors.New("fake secret exhausted")
	}
	v := f.values[f.next]
	f.next++
	return v, nil
}

// fakeClock is a settable clock frozen at whatever time the test assigns.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeConfig struct{}

func (fakeConfig) Close() error                   { return nil }
func (fakeConfig) GetBool(string) bool            { return false }
func (fakeConfig) GetString(string) string        { return "noreply@example.com" }
func (fakeConfig) GetInt(string) int              { return 0 }
func (fakeConfig) GetInt32(string) int32          { return 0 }
func (fakeConfig) GetFloat64(string) float64      { return 0 }
func (fakeConfig) GetSecond(string) time.Duration { return 0 }
func (fakeConfig) GetMinute(string) time.Duration { return 5 * time.Minute }
func (fakeConfig) GetArray(string) []string       { return nil }

type ucFixture struct {
	uc     *Usecase
	repo   *fakeRepo
	mailer *fakeMailer
	secret *fakeSecret
	clock  *fakeClock
}

func newFixture(t *testing.T) *ucFixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	f := &ucFixture{
		repo:   newFakeRepo(),
		mailer: &fakeMailer{},
		secret: &fakeSecret{values: []string{"111111", "222222", "333333"}},
		clock:  &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.uc = New(Dependency{
		RepoDB:     f.repo,
		Validator:  v,
		Config:     fakeConfig{},
		Secret:     f.secret,
		Hasher:     hash.NewSHA256(),
		Mailer:     f.mailer,
		Clock:      f.clock,
		Instrument: instrument.NewNoop(),
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

func requestOtp(t *testing.T, f *ucFixture, email string) {
	t.Helper()
	if _, err := f.uc.RequestOtp(context.Background(), RequestOtpInput{Email: email}); err != nil {
		t.Fatalf("request otp: %v", err)
	}
}

// ---------------------------------------------------------------------------
// RequestOtp
// ---------------------------------------------------------------------------

func TestRequestOtp_StoresHashNotPlaintext(t *testing.T) {
	f := newFixture(t)

	requestOtp(t, f, "user@example.com")

	rec, ok := f.repo.records["user@example.com"]
	if !ok {
		t.Fatal("expected a stored record")
	}
	if rec.OTPHash == "111111" {
		t.Error("plaintext passcode must never be persisted")
	}
	if !hash.NewSHA256().Verify(rec.OTPHash, "111111") {
		t.Error("stored hash must match the generated passcode")
	}
	if want := f.clock.now.Add(5 * time.Minute); !rec.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, rec.ExpiresAt)
	}
	if len(f.mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(f.mailer.sent))
	}
}

func TestRequestOtp_ReplacesOutstanding(t *testing.T) {
	f := newFixture(t)

	requestOtp(t, f, "user@example.com")
	requestOtp(t, f, "user@example.com")
	requestOtp(t, f, "user@example.com")

	if len(f.repo.records) != 1 {
		t.Fatalf("expected exactly one outstanding record, got %d", len(f.repo.records))
	}

	// Only the latest passcode may verify; the earlier ones are dead.
	h := hash.NewSHA256()
	rec := f.repo.records["user@example.com"]
	if h.Verify(rec.OTPHash, "111111") || h.Verify(rec.OTPHash, "222222") {
		t.Error("replaced passcodes must be invalidated")
	}
	if !h.Verify(rec.OTPHash, "333333") {
		t.Error("latest passcode must be the outstanding one")
	}
}

func TestRequestOtp_MissingEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RequestOtp(context.Background(), RequestOtpInput{})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeInvalidInput {
		t.Errorf("expected CodeInvalidInput, got %v", gerr.Code())
	}
	if f.repo.upserts != 0 {
		t.Error("store must not be touched on validation failure")
	}
}

func TestRequestOtp_StoreUnavailable(t *testing.T) {
	f := newFixture(t)
	f.repo.upsertErr = goerror.ErrUnavailable

	_, err := f.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeUnavailable {
		t.Errorf("expected CodeUnavailable, got %v", gerr.Code())
	}
	if len(f.mailer.sent) != 0 {
		t.Error("no email may be sent when the store rejects the write")
	}
}

func TestRequestOtp_DeliveryFailureKeepsHash(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")

	_, err := f.uc.RequestOtp(context.Background(), RequestOtpInput{Email: "user@example.com"})
	gerr := asGoerror(t, err)
	if gerr.Msg() != "Failed to send OTP email." {
		t.Errorf("unexpected message: %q", gerr.Msg())
	}
	if _, ok := f.repo.records["user@example.com"]; !ok {
		t.Error("stored hash must survive a delivery failure")
	}
}

// ---------------------------------------------------------------------------
// VerifyOtp
// ---------------------------------------------------------------------------

func TestVerifyOtp_SuccessConsumes(t *testing.T) {
	f := newFixture(t)
	requestOtp(t, f, "user@example.com")

	out, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "user@example.com" {
		t.Errorf("unexpected email: %q", out.Email)
	}
	if _, ok := f.repo.records["user@example.com"]; ok {
		t.Error("verified passcode must be consumed")
	}

	// Second use of the same passcode must fail.
	_, err = f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeNotFound {
		t.Errorf("expected CodeNotFound on replay, got %v", gerr.Code())
	}
}

func TestVerifyOtp_NoneOutstanding(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeNotFound {
		t.Errorf("expected CodeNotFound, got %v", gerr.Code())
	}
	if gerr.Msg() != "No OTP found for this email. Please request one first." {
		t.Errorf("unexpected message: %q", gerr.Msg())
	}
}

func TestVerifyOtp_MismatchRetainsRecord(t *testing.T) {
	f := newFixture(t)
	requestOtp(t, f, "user@example.com")

	_, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "999999"})
	gerr := asGoerror(t, err)
	if gerr.Msg() != "Invalid OTP." {
		t.Errorf("unexpected message: %q", gerr.Msg())
	}
	if _, ok := f.repo.records["user@example.com"]; !ok {
		t.Fatal("record must survive a mismatch")
	}

	// The correct passcode still works afterwards.
	if _, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"}); err != nil {
		t.Fatalf("correct passcode rejected after mismatch: %v", err)
	}
}

func TestVerifyOtp_ExpiredConsumes(t *testing.T) {
	f := newFixture(t)
	requestOtp(t, f, "user@example.com")

	f.clock.now = f.clock.now.Add(5*time.Minute + time.Second)

	_, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"})
	gerr := asGoerror(t, err)
	if gerr.Msg() != "OTP has expired." {
		t.Errorf("unexpected message: %q", gerr.Msg())
	}
	if _, ok := f.repo.records["user@example.com"]; ok {
		t.Error("expired passcode must be reaped on first examination")
	}

	// Reaped record now reads as absent.
	_, err = f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"})
	if gerr := asGoerror(t, err); gerr.Code() != goerror.CodeNotFound {
		t.Errorf("expected CodeNotFound after reap, got %v", gerr.Code())
	}
}

func TestVerifyOtp_ExactlyAtExpiryStillValid(t *testing.T) {
	f := newFixture(t)
	requestOtp(t, f, "user@example.com")

	f.clock.now = f.clock.now.Add(5 * time.Minute)

	if _, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"}); err != nil {
		t.Fatalf("passcode at the exact expiry instant must still verify: %v", err)
	}
}

func TestVerifyOtp_StoreUnavailable(t *testing.T) {
	f := newFixture(t)
	f.repo.getErr = goerror.ErrUnavailable

	_, err := f.uc.VerifyOtp(context.Background(), VerifyOtpInput{Email: "user@example.com", Otp: "111111"})
	gerr := asGoerror(t, err)
	if gerr.Code() != goerror.CodeUnavailable {
		t.Errorf("expected CodeUnavailable, got %v", gerr.Code())
	}
}

// ---------------------------------------------------------------------------
// SweepExpired
// ---------------------------------------------------------------------------

func TestSweepExpired(t *testing.T) {
	f := newFixture(t)
	requestOtp(t, f, "stale@example.com")

	f.clock.now = f.clock.now.Add(10 * time.Minute)
	requestOtp(t, f, "fresh@example.com")

	if err := f.uc.SweepExpired(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := f.repo.records["stale@example.com"]; ok {
		t.Error("expired record must be reaped")
	}
	if _, ok := f.repo.records["fresh@example.com"]; !ok {
		t.Error("live record must survive the sweep")
	}
}
