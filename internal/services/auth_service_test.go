package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (AuthService, *fakeProfileRepo, *fakeResetStore) {
	profiles := newFakeProfileRepo()
	resets := newFakeResetStore()
	svc := NewAuthService(profiles, resets, "test-secret", time.Hour, 15*time.Minute)
	return svc, profiles, resets
}

func validSignUp() SignUpInput {
	return SignUpInput{
		Email:    "patel@example.com",
		Password: "secret123",
		ShopName: "Patel Tailors",
		Mobile:   "9876543210",
		PIN:      "1234",
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, _, _ := newAuthService()

	profile, token, err := svc.SignUp(validSignUp())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.Equal(t, "patel@example.com", profile.Email)
	assert.NotEqual(t, "secret123", profile.PasswordHash)

	signedIn, token2, err := svc.SignIn("patel@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	assert.Equal(t, profile.ID, signedIn.ID)
}

func TestSignUpNormalizesEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	input := validSignUp()
	input.Email = "  Patel@Example.COM "
	profile, _, err := svc.SignUp(input)
	require.NoError(t, err)
	assert.Equal(t, "patel@example.com", profile.Email)

	_, _, err = svc.SignIn(" PATEL@example.com", "secret123")
	assert.NoError(t, err)
}

func TestSignUpValidation(t *testing.T) {
	svc, _, _ := newAuthService()
	var vErr *ValidationError

	input := validSignUp()
	input.Email = "not-an-email"
	_, _, err := svc.SignUp(input)
	assert.ErrorAs(t, err, &vErr)

	input = validSignUp()
	input.Password = "short"
	_, _, err = svc.SignUp(input)
	assert.ErrorAs(t, err, &vErr)

	input = validSignUp()
	input.ShopName = "   "
	_, _, err = svc.SignUp(input)
	assert.ErrorAs(t, err, &vErr)

	for _, pin := range []string{"", "123", "12345", "12a4"} {
		input = validSignUp()
		input.PIN = pin
		_, _, err = svc.SignUp(input)
		assert.ErrorAs(t, err, &vErr, "pin %q", pin)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	_, _, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	_, _, err = svc.SignUp(validSignUp())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthService()

	_, _, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	_, _, err = svc.SignIn("patel@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.SignIn("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetSessionRoundTrip(t *testing.T) {
	svc, _, _ := newAuthService()

	profile, token, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	got, err := svc.GetSession(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
}

func TestGetSessionRejectsGarbage(t *testing.T) {
	svc, _, _ := newAuthService()

	_, err := svc.GetSession("not.a.token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	svc, profiles, resets := newAuthService()
	_ = resets

	_, token, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	other := NewAuthService(profiles, newFakeResetStore(), "other-secret", time.Hour, 15*time.Minute)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, resets := newAuthService()

	profile, _, err := svc.SignUp(validSignUp())
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword("patel@example.com"))
	require.Len(t, resets.tokens, 1)

	var token string
	for tok := range resets.tokens {
		token = tok
	}

	require.NoError(t, svc.UpdatePassword(token, "newsecret"))

	_, _, err = svc.SignIn(profile.Email, "newsecret")
	assert.NoError(t, err)
	_, _, err = svc.SignIn(profile.Email, "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Single use.
	assert.ErrorIs(t, svc.UpdatePassword(token, "another1"), ErrResetTokenInvalid)
}

func TestResetPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, resets := newAuthService()

	assert.NoError(t, svc.ResetPassword("nobody@example.com"))
	assert.Empty(t, resets.tokens)
}

func TestUpdatePasswordValidatesLength(t *testing.T) {
	svc, _, _ := newAuthService()

	var vErr *ValidationError
	assert.ErrorAs(t, svc.UpdatePassword("any-token", "short"), &vErr)
}
