// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sha1Hex(b []byte) string {
	h := sha1.Sum(b) //nolint:gosec
	return hex.EncodeToString(h[:])
}

func TestVerify(t *testing.T) {
	lamb := []byte("mary had a little lamb")
	sum := sha1Hex(lamb)

	tests := []struct {
		name        string
		sha1        string
		size        int64
		expectedErr string
	}{
		{name: "nothing declared"},
		{name: "matches", sha1: sum, size: int64(len(lamb))},
		{
			name:        "wrong size",
			sha1:        sum,
			size:        1,
			expectedErr: "checksum mismatch: expected size 1, but have 22",
		},
		{
			name:        "wrong sum",
			sha1:        "cafebabe",
			expectedErr: `checksum mismatch: expected SHA-1 sum "cafebabe", but have "` + sum + `"`,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(lamb, tc.sha1, tc.size)
			if tc.expectedErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.expectedErr)
			}
		})
	}
}

func TestVerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lamb.txt")
	require.ErrorIs(t, VerifyFile(path, "", 0), os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("mary had a little lamb"), 0o600))
	require.NoError(t, VerifyFile(path, sha1Hex([]byte("mary had a little lamb")), 22))
}

func TestWriteFile_LeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "lamb.txt")

	require.NoError(t, WriteFile(path, []byte("mary"), 0o600))
	require.NoError(t, WriteFile(path, []byte("lamb"), 0o600)) // overwrite

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "lamb", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
