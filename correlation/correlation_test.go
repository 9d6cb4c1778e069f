package correlation

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContext(t *testing.T) {
	ctxWith := ContextWithID(context.Background(), "123")
	type args struct {
		ctx context.Context
	}
	tests := map[string]struct {
		args args
	}{
		"with existing id":    {args: args{ctx: ctxWith}},
		"without existing id": {args: args{ctx: context.Background()}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := IDFromContext(tt.args.ctx)
			assert.NotEmpty(t, got)
		})
	}
}

func TestContextWithID(t *testing.T) {
	ctx := ContextWithID(context.Background(), "123")
	assert.Equal(t, "123", ctx.Value(idKey).(string))
}

func TestGetOrSetHeaderID(t *testing.T) {
	withID := http.Header{HeaderID: []string{"123"}}
	withoutID := http.Header{}
	withEmptyID := http.Header{HeaderID: []string{""}}
	tests := map[string]struct {
		hdr      http.Header
		expected string
	}{
		"with existing id":    {hdr: withID, expected: "123"},
		"without existing id": {hdr: withoutID},
		"with empty id":       {hdr: withEmptyID},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := GetOrSetHeaderID(tt.hdr)
			assert.NotEmpty(t, got)
			assert.NotEmpty(t, tt.hdr.Get(HeaderID))
			if tt.expected != "" {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
