package model

// Verification states an operator can assign. A record starts as pending;
// operators may move it to valid or invalid at any time, including
// flipping a previous decision. There is no terminal state and no audit
// trail, only the current label.
const (
	StatusPending = "pending"
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// GPS coordinates as reported by the client; every field is independently
// optional.
type GPS struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	Accuracy *float64 `json:"accuracy"`
}

// SubmissionModel is one crowdsourced flood report. The JSON document on
// disk is the sole source of truth; field names are the stored schema and
// must not change.
type SubmissionModel struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	Zone         string `json:"zone"`
	Ward         string `json:"ward"`
	VehicleType  string `json:"vehicle_type"`
	FloodDepthCM int    `json:"flood_depth_cm"`
	Remarks      string `json:"remarks"`
	GPS          GPS    `json:"gps"`

	// Present iff a valid photo was uploaded. Relative to BaseDir.
	ImagePath     *string `json:"image_path"`
	ThumbnailPath *string `json:"thumbnail_path"`

	ReceivedAt string `json:"received_at"`
	UserAgent  string `json:"user_agent"`

	// Absent in documents written before moderation existed; the store
	// normalize hook defaults it to pending on read.
	VerificationStatus string  `json:"verification_status,omitempty"`
	VerifiedAt         *string `json:"verified_at,omitempty"`
}

// NormalizeSubmission fills schema-on-read defaults. Registered once at
// the store boundary so older documents never leak empty statuses.
func NormalizeSubmission(s *SubmissionModel) {
	if s.VerificationStatus == "" {
		s.VerificationStatus = StatusPending
	}
}
