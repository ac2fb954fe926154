package service

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"claimku_backend/internals/constants"
	"claimku_backend/internals/features/claims/image_annotations/dto"
	"claimku_backend/internals/features/claims/image_annotations/model"
)

// NormalizeBox maps one raw box onto a storable annotation row. The
// rules here are the wire contract with the annotator UI - keep them
// stable:
//   - damage_name: blanks dropped, case-insensitive dedupe keeping the
//     first-seen casing
//   - severity: uppercased, must be A/B/C/D, else A
//   - area_percent: nil passes through, else clamp [0,100] + round to int
//   - x,y: clamp [0,1], round 3 decimals
//   - w,h: clamp [0.0001,1], round 3 decimals (no zero-area boxes)
//   - mask_iou: nil passes through, else clamp [0,1]
//   - source: manual/model/legacy, else manual
func NormalizeBox(in dto.AnnotationBoxInput, imageID int64, createdBy *uuid.UUID) model.ImageDamageAnnotation {
	return model.ImageDamageAnnotation{
		EvaluationImageID: imageID,
		PartName:          strings.TrimSpace(in.PartName),
		DamageName:        NormalizeDamageNames(in.DamageName),
		Severity:          NormalizeSeverity(in.Severity),
		AreaPercent:       NormalizeAreaPercent(in.AreaPercent),
		X:                 Clamp(Round(in.X, 3), 0, 1),
		Y:                 Clamp(Round(in.Y, 3), 0, 1),
		// clamp after rounding, otherwise the 0.0001 floor would round away
		W:          Clamp(Round(in.W, 3), 0.0001, 1),
		H:          Clamp(Round(in.H, 3), 0.0001, 1),
		Confidence: in.Confidence,
		MaskIoU:    NormalizeMaskIoU(in.MaskIoU),
		Source:     NormalizeSource(in.Source),
		CreatedBy:  createdBy,
	}
}

// NormalizeBoxes normalizes a whole replace-set submission.
func NormalizeBoxes(boxes []dto.AnnotationBoxInput, imageID int64, createdBy *uuid.UUID) []model.ImageDamageAnnotation {
	out := make([]model.ImageDamageAnnotation, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, NormalizeBox(b, imageID, createdBy))
	}
	return out
}

func NormalizeDamageNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

func NormalizeSeverity(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !constants.IsValidSeverity(s) {
		return constants.SeverityA
	}
	return s
}

func NormalizeAreaPercent(v *float64) *int {
	if v == nil {
		return nil
	}
	p := int(math.Round(Clamp(*v, 0, 100)))
	return &p
}

func NormalizeMaskIoU(v *float64) *float64 {
	if v == nil {
		return nil
	}
	iou := Clamp(*v, 0, 1)
	return &iou
}

func NormalizeSource(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !constants.IsValidAnnotationSource(s) {
		return constants.AnnotationSourceManual
	}
	return s
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Round(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}
