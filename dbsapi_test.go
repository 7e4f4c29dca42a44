package dbsapi_test

import (
	"testing"

	"github.com/dbsapi/dbsapi"
	"github.com/stretchr/testify/assert"
)

func TestAbsolutize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want string
	}{
		{"root-relative", "/notice.pdf", "http://donboscoberhampore.in/notice.pdf"},
		{"absolute", "https://example.com/x", "https://example.com/x"},
		{"page-relative", "notice.pdf", "notice.pdf"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dbsapi.Absolutize(tt.href))
		})
	}
}
