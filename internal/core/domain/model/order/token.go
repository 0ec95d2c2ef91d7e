package order

import (
	"encoding/base64"
	"encoding/binary"

	"orders/internal/pkg/errs"
)

// EncodeToken renders an order version as the opaque concurrency token
// exposed to callers, suitable for use as an HTTP entity tag. The version
// is encoded big-endian and base64'd so callers treat it as opaque bytes.
func EncodeToken(version uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], version)
	return base64.StdEncoding.EncodeToString(buf[:])
}

// DecodeToken parses a concurrency token previously produced by
// EncodeToken. A malformed token is a Validation error: the caller sent
// something that was never a token, as opposed to a stale one.
func DecodeToken(token string) (uint64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, errs.NewWithCause(errs.Validation, "Invalid concurrency token", err)
	}
	if len(raw) != 8 {
		return 0, errs.New(errs.Validation, "Invalid concurrency token")
	}
	return binary.BigEndian.Uint64(raw), nil
}
