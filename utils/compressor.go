package veritrans_integration_utils

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/rotisserie/eris"
)

// MaxDecompressedSize bounds DecompressData. Cached gateway responses are a few hundred bytes.
const MaxDecompressedSize = 1 << 20

var ErrDecompressedTooLarge = eris.New("decompressed data exceeds the size limit")

// CompressData gzips a gateway response body for storage in redis.
func CompressData(body []byte) ([]byte, error) {
	var buf bytes.Buffer

	gz, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	if err != nil {
		return nil, eris.Wrap(err, "creating gzip writer")
	}

	if _, err := gz.Write(body); err != nil {
		gz.Close()
		return nil, eris.Wrap(err, "compressing body")
	}
	if err := gz.Close(); err != nil {
		return nil, eris.Wrap(err, "flushing gzip writer")
	}

	return buf.Bytes(), nil
}

// DecompressData reverses CompressData and refuses output larger than MaxDecompressedSize.
func DecompressData(compressed []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, eris.Wrap(err, "opening gzip reader")
	}
	defer gz.Close()

	// one byte past the limit tells an exact fit apart from an overflow
	body, err := io.ReadAll(io.LimitReader(gz, MaxDecompressedSize+1))
	if err != nil {
		return nil, eris.Wrap(err, "decompressing body")
	}
	if len(body) > MaxDecompressedSize {
		return nil, ErrDecompressedTooLarge
	}

	return body, nil
}
