package certs

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(t *testing.T, cert tls.Certificate) *x509.Certificate {
	t.Helper()
	require.Len(t, cert.Certificate, 1)
	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	return parsed
}

func TestStore_Certificate(t *testing.T) {
	tests := []struct {
		setup      func(t *testing.T, s *Store)
		name       string
		wantReused bool
	}{
		{
			name:  "creates certificate in missing directory",
			setup: func(*testing.T, *Store) {},
		},
		{
			name: "reuses valid certificate",
			setup: func(t *testing.T, s *Store) {
				_, err := s.Certificate()
				require.NoError(t, err)
			},
			wantReused: true,
		},
		{
			name: "replaces corrupted files",
			setup: func(t *testing.T, s *Store) {
				certFile, keyFile := s.Paths()
				require.NoError(t, os.MkdirAll(filepath.Dir(certFile), 0o700))
				require.NoError(t, os.WriteFile(certFile, []byte("not a cert"), 0o600))
				require.NoError(t, os.WriteFile(keyFile, []byte("not a key"), 0o600))
			},
		},
		{
			name: "replaces expired certificate",
			setup: func(t *testing.T, s *Store) {
				s.now = func() time.Time { return time.Now().Add(-2 * Validity) }
				_, err := s.Certificate()
				require.NoError(t, err)
				s.now = time.Now
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(filepath.Join(t.TempDir(), "certs"))
			tt.setup(t, s)

			var before []byte
			if certFile, _ := s.Paths(); tt.wantReused {
				var err error
				before, err = os.ReadFile(certFile)
				require.NoError(t, err)
			}

			cert, err := s.Certificate()
			require.NoError(t, err)

			parsed := leaf(t, cert)
			assert.Equal(t, []string{"lifeone"}, parsed.Subject.Organization)
			assert.NoError(t, parsed.VerifyHostname("localhost"))
			assert.NoError(t, parsed.VerifyHostname("127.0.0.1"))
			assert.True(t, parsed.NotAfter.After(time.Now().Add(Validity-time.Hour)))

			if tt.wantReused {
				certFile, _ := s.Paths()
				after, err := os.ReadFile(certFile)
				require.NoError(t, err)
				assert.Equal(t, before, after)
			}
		})
	}
}

func TestStore_FilePermissions(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Certificate()
	require.NoError(t, err)

	certFile, keyFile := s.Paths()
	for _, path := range []string{certFile, keyFile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), path)
	}
}
