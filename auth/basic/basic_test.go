package basic

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beatlabs/httpauth/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.Equal(t, auth.SchemeBasic, e.Scheme())
	assert.Equal(t, "Basic", e.Challenge().String())
}

func TestNew_WithRealm(t *testing.T) {
	e, err := New(WithRealm("Restricted Area"))
	require.NoError(t, err)
	assert.Equal(t, `Basic realm="Restricted Area"`, e.Challenge().String())
}

func TestNew_InvalidRealm(t *testing.T) {
	e, err := New(WithRealm("bad\nrealm"))
	assert.Error(t, err)
	assert.Nil(t, e)
}

func TestExtract(t *testing.T) {
	e, err := New(WithRealm("api"))
	require.NoError(t, err)

	b64 := func(s string) string {
		return prefix + base64.StdEncoding.EncodeToString([]byte(s))
	}

	tests := map[string]struct {
		hdr         string
		expected    auth.Credentials
		expectedErr error
	}{
		"missing header":       {hdr: "", expectedErr: auth.ErrMissingHeader},
		"different scheme":     {hdr: "Bearer token", expectedErr: auth.ErrInvalidFormat},
		"prefix only":          {hdr: "Basic", expectedErr: auth.ErrInvalidFormat},
		"invalid base64":       {hdr: "Basic ???", expectedErr: auth.ErrInvalidFormat},
		"no colon":             {hdr: b64("useronly"), expectedErr: auth.ErrInvalidFormat},
		"valid":                {hdr: "Basic dGVzdDp0ZXN0", expected: auth.Basic{Username: "test", Password: "test"}},
		"case insensitive":     {hdr: "basic dGVzdDp0ZXN0", expected: auth.Basic{Username: "test", Password: "test"}},
		"password with colons": {hdr: b64("user:pa:ss"), expected: auth.Basic{Username: "user", Password: "pa:ss"}},
		"empty username":       {hdr: b64(":pass"), expected: auth.Basic{Username: "", Password: "pass"}},
		"empty password":       {hdr: b64("user:"), expected: auth.Basic{Username: "user", Password: ""}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.hdr != "" {
				r.Header.Set(auth.AuthorizationHeader, tt.hdr)
			}

			got, err := e.Extract(r)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))

				var aerr *auth.Error
				require.True(t, errors.As(err, &aerr))
				assert.Equal(t, `Basic realm="api"`, aerr.Challenge.String())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
