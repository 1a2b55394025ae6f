package helper

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Record identifiers are <timestamp>_<8 hex chars>. The same pair names
// the submission document and any image files it owns, so deletion never
// needs a cross-reference index.
const RecordTimestampLayout = "20060102_150405"

// RandomSuffix returns 8 hex characters of entropy (4 random bytes).
func RandomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(buf)
}

// NewRecordID builds a fresh record id from t plus a random suffix.
func NewRecordID(t time.Time) string {
	return t.Format(RecordTimestampLayout) + "_" + RandomSuffix()
}

// ISOTimestamp formats t the way stored documents expect (local time,
// microsecond precision, no zone designator).
func ISOTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000000")
}
