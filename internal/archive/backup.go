// Package archive provides gzip-compressed backup and restore of
// world-save bytes, independent of the codec itself.
package archive

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/almostsurely/tsculpt/internal/utils"
)

// Backup gzip-compresses a world save's raw bytes, the way distri's
// initrd packer reads a ".gz"-suffixed file back out with
// compress/gzip on the decompress side (cmd/distri/initrd.go).
func Backup(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, utils.WrapError(utils.KindInvalidArgument, "compressing backup", err)
	}
	if err := zw.Close(); err != nil {
		return nil, utils.WrapError(utils.KindInvalidArgument, "closing backup writer", err)
	}
	return buf.Bytes(), nil
}

// Restore reverses Backup, decompressing a gzip archive back into raw
// world-save bytes.
func Restore(archived []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(archived))
	if err != nil {
		return nil, utils.WrapError(utils.KindCorruptFormat, "opening backup archive", err)
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return nil, utils.WrapError(utils.KindCorruptFormat, "decompressing backup archive", err)
	}
	return out.Bytes(), nil
}
