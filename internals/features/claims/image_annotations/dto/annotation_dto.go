package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// FlexibleStrings accepts both `"scratch"` and `["scratch","dent"]`
// from the client. Older annotator builds send damage_name as a bare
// string.
type FlexibleStrings []string

func (f *FlexibleStrings) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" || trimmed == "" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := json.Unmarshal(b, &arr); err != nil {
			return err
		}
		*f = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*f = []string{s}
	return nil
}

// AnnotationBoxInput is one raw box as submitted; every field goes
// through service.NormalizeBox before it touches the DB.
type AnnotationBoxInput struct {
	PartName    string          `json:"part_name"`
	DamageName  FlexibleStrings `json:"damage_name"`
	Severity    string          `json:"severity"`
	AreaPercent *float64        `json:"area_percent"`
	X           float64         `json:"x"`
	Y           float64         `json:"y"`
	W           float64         `json:"w"`
	H           float64         `json:"h"`
	Confidence  *float64        `json:"confidence"`
	MaskIoU     *float64        `json:"mask_iou"`
	Source      string          `json:"source"`
}

// SaveAnnotationsRequest replaces the whole annotation set of one image.
// An empty Boxes array is valid and clears the image.
type SaveAnnotationsRequest struct {
	ImageID   int64                `json:"image_id" validate:"required,gt=0"`
	CreatedBy *uuid.UUID           `json:"created_by" validate:"omitempty"`
	Boxes     []AnnotationBoxInput `json:"boxes"`
}

// UpdateAnnotationRequest edits a single box outside the bulk flow.
type UpdateAnnotationRequest struct {
	AnnotationBoxInput
}
