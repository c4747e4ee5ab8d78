// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// DecodeLZMA decompresses a classic ".lzma" stream, which is how runtime manifests publish compressed files.
func DecodeLZMA(compressed []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("invalid lzma stream: %w", err)
	}
	var out bytes.Buffer
	if _, err = io.Copy(&out, r); err != nil { //nolint:gosec
		return nil, fmt.Errorf("invalid lzma stream: %w", err)
	}
	return out.Bytes(), nil
}
