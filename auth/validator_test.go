package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorFunc(t *testing.T) {
	called := false
	v := ValidatorFunc(func(r *http.Request, creds Credentials) (*http.Request, error) {
		called = true
		assert.Equal(t, Bearer{Token: "token"}, creds)
		return r, nil
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	vr, err := v.Validate(r, Bearer{Token: "token"})
	assert.NoError(t, err)
	assert.Equal(t, r, vr)
	assert.True(t, called)
}

func TestAny_FirstSuccessWins(t *testing.T) {
	reached := 0
	rejecting := ValidatorFunc(func(*http.Request, Credentials) (*http.Request, error) {
		return nil, NewError(Challenge{Scheme: SchemeBasic, Realm: "first"}, errors.New("unknown user"))
	})
	accepting := ValidatorFunc(func(r *http.Request, _ Credentials) (*http.Request, error) {
		return r, nil
	})
	notReached := ValidatorFunc(func(r *http.Request, _ Credentials) (*http.Request, error) {
		reached++
		return r, nil
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	vr, err := Any(rejecting, accepting, notReached).Validate(r, Basic{Username: "user"})
	assert.NoError(t, err)
	assert.Equal(t, r, vr)
	assert.Zero(t, reached)
}

func TestAny_AllReject(t *testing.T) {
	first := ValidatorFunc(func(*http.Request, Credentials) (*http.Request, error) {
		return nil, NewError(Challenge{Scheme: SchemeBasic, Realm: "first"}, errors.New("unknown user"))
	})
	second := ValidatorFunc(func(*http.Request, Credentials) (*http.Request, error) {
		return nil, NewError(Challenge{Scheme: SchemeBasic, Realm: "second"}, errors.New("wrong password"))
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	vr, err := Any(first, second).Validate(r, Basic{Username: "user"})
	assert.Nil(t, vr)

	var aerr *Error
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, "first", aerr.Challenge.Realm)
	assert.Contains(t, aerr.Error(), "unknown user")
	assert.Contains(t, aerr.Error(), "wrong password")
}

func TestAny_InternalErrorAborts(t *testing.T) {
	infra := errors.New("backend down")
	reached := 0
	failing := ValidatorFunc(func(*http.Request, Credentials) (*http.Request, error) {
		return nil, infra
	})
	notReached := ValidatorFunc(func(r *http.Request, _ Credentials) (*http.Request, error) {
		reached++
		return r, nil
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	vr, err := Any(failing, notReached).Validate(r, Bearer{Token: "token"})
	assert.Nil(t, vr)
	assert.True(t, errors.Is(err, infra))
	assert.Zero(t, reached)

	var aerr *Error
	assert.False(t, errors.As(err, &aerr))
}

func TestAny_NoValidators(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	vr, err := Any().Validate(r, Bearer{Token: "token"})
	assert.Nil(t, vr)
	assert.Error(t, err)

	var aerr *Error
	assert.False(t, errors.As(err, &aerr))
}
