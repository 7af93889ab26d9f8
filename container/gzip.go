package container

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

var vgmMagic = []byte("Vgm ")

// maybeGunzip returns data unchanged if it already starts with the VGM
// magic number, otherwise attempts to gzip-decompress it (a .vgz file is
// just a gzipped .vgm) and returns the decompressed bytes.
func maybeGunzip(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, vgmMagic) {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
