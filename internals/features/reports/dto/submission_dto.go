package dto

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/reports/model"
)

// Flood depth bounds in centimeters. Anything outside stores as zero.
const (
	MinFloodDepthCM = 0
	MaxFloodDepthCM = 200
)

// ParseFloodDepth coerces the raw form value into [0, 200]. Non-numeric
// or out-of-range input is a silent clamp to zero, not a rejection: the
// field is optional and a bad value must never fail the submission.
func ParseFloodDepth(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinFloodDepthCM || n > MaxFloodDepthCM {
		return 0
	}
	return n
}

// ParseCoord parses one optional GPS component; empty or malformed input
// yields nil.
func ParseCoord(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// VerifyRequest is the moderation transition body.
type VerifyRequest struct {
	Status string `json:"status" validate:"required,oneof=valid invalid"`
}

// SubmissionListItem is the projection returned by the admin list
// endpoint; field names are the wire contract.
type SubmissionListItem struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Ward               string    `json:"ward"`
	Zone               string    `json:"zone"`
	Street             string    `json:"street"`
	VehicleType        string    `json:"vehicle_type"`
	FloodDepthCM       int       `json:"flood_depth_cm"`
	Remarks            string    `json:"remarks"`
	ReceivedAt         string    `json:"received_at"`
	ImagePath          *string   `json:"image_path"`
	ThumbnailPath      *string   `json:"thumbnail_path"`
	GPS                model.GPS `json:"gps"`
	VerificationStatus string    `json:"verification_status"`
}

func ToSubmissionListItem(s *model.SubmissionModel) SubmissionListItem {
	return SubmissionListItem{
		ID:                 s.ID,
		Name:               s.Name,
		Phone:              s.Phone,
		Ward:               s.Ward,
		Zone:               s.Zone,
		Street:             s.Street,
		VehicleType:        s.VehicleType,
		FloodDepthCM:       s.FloodDepthCM,
		Remarks:            s.Remarks,
		ReceivedAt:         s.ReceivedAt,
		ImagePath:          s.ImagePath,
		ThumbnailPath:      s.ThumbnailPath,
		GPS:                s.GPS,
		VerificationStatus: s.VerificationStatus,
	}
}

// SubmissionFromForm builds the stored document from the multipart form.
// Free-text fields are trimmed, nothing else is validated.
func SubmissionFromForm(c *fiber.Ctx) *model.SubmissionModel {
	form := func(key string) string { return strings.TrimSpace(c.FormValue(key)) }
	return &model.SubmissionModel{
		Name:         form("name"),
		Phone:        form("phone"),
		Street:       form("street"),
		Zone:         form("zone"),
		Ward:         form("ward"),
		VehicleType:  form("vehicle_type"),
		FloodDepthCM: ParseFloodDepth(c.FormValue("flood_depth_cm")),
		Remarks:      form("remarks"),
		GPS: model.GPS{
			Lat:      ParseCoord(c.FormValue("gps_lat")),
			Lon:      ParseCoord(c.FormValue("gps_lon")),
			Accuracy: ParseCoord(c.FormValue("gps_accuracy")),
		},
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
}
