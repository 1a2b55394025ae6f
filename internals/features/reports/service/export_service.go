package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"floodwatch_backend/internals/features/reports/model"
	"floodwatch_backend/internals/storage/docstore"
)

// csvColumns is the exact export projection existing consumers parse.
// It deliberately drops verification_status and thumbnail_path; do not
// extend it.
var csvColumns = []string{
	"id", "name", "phone", "street", "zone", "ward", "vehicle_type",
	"flood_depth_cm", "remarks", "gps_lat", "gps_lon", "gps_accuracy",
	"image_path", "received_at",
}

// ExportService serializes the full submission set.
type ExportService struct {
	store *docstore.Store[model.SubmissionModel]
}

func NewExportService(store *docstore.Store[model.SubmissionModel]) *ExportService {
	return &ExportService{store: store}
}

// All returns every stored submission, unfiltered.
func (s *ExportService) All() ([]*model.SubmissionModel, error) {
	return s.store.List(nil)
}

// CSV renders the fixed-column projection; missing optional fields become
// empty strings.
func (s *ExportService) CSV() ([]byte, error) {
	items, err := s.All()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, item := range items {
		row := []string{
			item.ID,
			item.Name,
			item.Phone,
			item.Street,
			item.Zone,
			item.Ward,
			item.VehicleType,
			strconv.Itoa(item.FloodDepthCM),
			item.Remarks,
			floatField(item.GPS.Lat),
			floatField(item.GPS.Lon),
			floatField(item.GPS.Accuracy),
			stringField(item.ImagePath),
			item.ReceivedAt,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func floatField(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func stringField(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
