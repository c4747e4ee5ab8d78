// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"
)

func compressLZMA(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeLZMA(t *testing.T) {
	expected := bytes.Repeat([]byte("mary had a little lamb\n"), 100)

	actual, err := DecodeLZMA(compressLZMA(t, expected))
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestDecodeLZMA_Invalid(t *testing.T) {
	tests := []struct {
		name string
		junk []byte
	}{
		{name: "empty", junk: []byte{}},
		{name: "short", junk: []byte{1, 2, 3, 4}},
		{name: "truncated", junk: compressLZMA(t, []byte("mary had a little lamb"))[:16]},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLZMA(tc.junk)
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid lzma stream")
		})
	}
}
