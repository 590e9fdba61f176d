package request_test

import (
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/request"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		userAgent string
		want      request.ClientType
	}{
		{"header wins", "web", "okhttp/4.9", request.ClientWeb},
		{"browser", "", "Mozilla/5.0 (X11; Linux x86_64)", request.ClientWeb},
		{"android", "", "okhttp/4.9.3", request.ClientMobile},
		{"flutter", "", "Dart/3.1 (dart:io)", request.ClientMobile},
		{"curl", "", "curl/8.4.0", request.ClientAPI},
		{"empty", "", "", request.ClientAPI},
		{"unknown header", "tv", "Mozilla/5.0", request.ClientWeb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.ResolveClientType(tt.header, tt.userAgent))
		})
	}
}
