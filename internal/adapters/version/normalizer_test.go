package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vat/internal/adapters/version"
	"go.trai.ch/vat/internal/core/domain"
)

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		pkgName string
		raw     string
		want    string
	}{
		{name: "plain", pkgName: "curl", raw: "8.10.1", want: "8.10.1"},
		{name: "whitespace", pkgName: "curl", raw: "  8.10.1\n", want: "8.10.1"},
		{name: "v prefix", pkgName: "curl", raw: "v8.10.1", want: "8.10.1"},
		{name: "capital v prefix", pkgName: "curl", raw: "V8.10.1", want: "8.10.1"},
		{name: "v followed by letter kept", pkgName: "curl", raw: "very", want: "very"},
		{name: "name dash prefix", pkgName: "curl", raw: "curl-8.10.1", want: "8.10.1"},
		{name: "name underscore prefix", pkgName: "curl", raw: "curl_8_10_1", want: "8_10_1"},
		{name: "name prefix case-insensitive", pkgName: "openssl", raw: "OpenSSL_3.3.2", want: "3.3.2"},
		{name: "name prefix then v", pkgName: "tool", raw: "tool-v1.2", want: "1.2"},
		{name: "nested package uses basename", pkgName: "py/build", raw: "build-1.2.2", want: "1.2.2"},
		{name: "name without separator kept", pkgName: "curl", raw: "curl8", want: "curl8"},
		{name: "bare name kept", pkgName: "curl", raw: "curl-", want: "curl-"},
		{name: "commit hash untouched", pkgName: "zig", raw: "0123456789abcdef0123456789abcdef01234567", want: "0123456789abcdef0123456789abcdef01234567"},
	}

	n := version.NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &domain.Package{Name: tt.pkgName}
			got := n.Normalize(pkg, tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, n.Normalize(pkg, got))
		})
	}
}
