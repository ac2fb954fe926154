package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"claimku_backend/internals/features/claims/image_annotations/dto"
)

func TestNormalizeSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A", "A"},
		{"b", "B"},
		{" c ", "C"},
		{"d", "D"},
		{"z", "A"},
		{"", "A"},
		{"AA", "A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeSeverity(tc.in), "severity %q", tc.in)
	}
}

func TestNormalizeDamageNames(t *testing.T) {
	t.Run("dedupes case-insensitively keeping first casing", func(t *testing.T) {
		got := NormalizeDamageNames([]string{"Scratch", "scratch", "DENT", "dent", "Scratch"})
		assert.Equal(t, []string{"Scratch", "DENT"}, got)
	})

	t.Run("drops blanks", func(t *testing.T) {
		got := NormalizeDamageNames([]string{"", "  ", "crack", ""})
		assert.Equal(t, []string{"crack"}, got)
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := NormalizeDamageNames(nil)
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	})
}

func TestNormalizeAreaPercent(t *testing.T) {
	assert.Nil(t, NormalizeAreaPercent(nil))

	f := func(v float64) *float64 { return &v }

	got := NormalizeAreaPercent(f(-5))
	assert.Equal(t, 0, *got)

	got = NormalizeAreaPercent(f(150))
	assert.Equal(t, 100, *got)

	got = NormalizeAreaPercent(f(42.6))
	assert.Equal(t, 43, *got)

	got = NormalizeAreaPercent(f(42.4))
	assert.Equal(t, 42, *got)
}

func TestNormalizeMaskIoU(t *testing.T) {
	assert.Nil(t, NormalizeMaskIoU(nil))

	f := func(v float64) *float64 { return &v }
	assert.Equal(t, 0.0, *NormalizeMaskIoU(f(-0.2)))
	assert.Equal(t, 1.0, *NormalizeMaskIoU(f(1.7)))
	assert.Equal(t, 0.85, *NormalizeMaskIoU(f(0.85)))
}

func TestNormalizeSource(t *testing.T) {
	assert.Equal(t, "manual", NormalizeSource(""))
	assert.Equal(t, "manual", NormalizeSource("robot"))
	assert.Equal(t, "model", NormalizeSource(" MODEL "))
	assert.Equal(t, "legacy", NormalizeSource("legacy"))
}

func TestNormalizeBoxGeometry(t *testing.T) {
	createdBy := uuid.New()

	t.Run("zero-width box gets the floor, not zero", func(t *testing.T) {
		box := NormalizeBox(dto.AnnotationBoxInput{W: 0, H: 0.5}, 7, &createdBy)
		assert.Equal(t, 0.0001, box.W)
		assert.Equal(t, 0.5, box.H)
	})

	t.Run("coordinates clamp into the unit square", func(t *testing.T) {
		box := NormalizeBox(dto.AnnotationBoxInput{X: -0.5, Y: 1.5, W: 2, H: 0.25}, 7, nil)
		assert.Equal(t, 0.0, box.X)
		assert.Equal(t, 1.0, box.Y)
		assert.Equal(t, 1.0, box.W)
	})

	t.Run("rounds to 3 decimals", func(t *testing.T) {
		box := NormalizeBox(dto.AnnotationBoxInput{X: 0.12345, Y: 0.9996, W: 0.5554, H: 0.5556}, 7, nil)
		assert.Equal(t, 0.123, box.X)
		assert.Equal(t, 1.0, box.Y)
		assert.Equal(t, 0.555, box.W)
		assert.Equal(t, 0.556, box.H)
	})

	t.Run("carries image id and creator", func(t *testing.T) {
		box := NormalizeBox(dto.AnnotationBoxInput{W: 0.1, H: 0.1}, 42, &createdBy)
		assert.Equal(t, int64(42), box.EvaluationImageID)
		assert.Equal(t, createdBy, *box.CreatedBy)
	})
}

func TestNormalizeBoxDefaults(t *testing.T) {
	box := NormalizeBox(dto.AnnotationBoxInput{
		PartName:   "  front bumper ",
		DamageName: dto.FlexibleStrings{"Scratch", "scratch"},
		Severity:   "q",
		Source:     "unknown",
	}, 1, nil)

	assert.Equal(t, "front bumper", box.PartName)
	assert.Equal(t, []string{"Scratch"}, []string(box.DamageName))
	assert.Equal(t, "A", box.Severity)
	assert.Equal(t, "manual", box.Source)
	assert.Nil(t, box.AreaPercent)
	assert.Nil(t, box.Confidence)
	assert.Nil(t, box.MaskIoU)
}

func TestNormalizeBoxes(t *testing.T) {
	t.Run("empty submission normalizes to zero rows", func(t *testing.T) {
		got := NormalizeBoxes(nil, 3, nil)
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("idempotent on already-normalized input", func(t *testing.T) {
		in := []dto.AnnotationBoxInput{{
			DamageName: dto.FlexibleStrings{"dent"},
			Severity:   "B",
			X:          0.1, Y: 0.2, W: 0.3, H: 0.4,
			Source: "manual",
		}}
		first := NormalizeBoxes(in, 5, nil)
		second := NormalizeBoxes(in, 5, nil)
		assert.Equal(t, first, second)
	})
}
