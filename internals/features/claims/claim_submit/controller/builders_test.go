package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "claimku_backend/internals/features/claims/claim_submit/dto"
)

func TestBuildEvaluationImages(t *testing.T) {
	t.Run("skips entries without a URL", func(t *testing.T) {
		images := buildEvaluationImages([]d.DamagePhotoInput{
			{URL: "https://img.example/a.jpg", Side: "ซ้าย"},
			{URL: "", Note: "no url"},
			{URL: "   ", Note: "blank url"},
			{URL: "https://img.example/b.jpg", Side: "หลัง"},
		}, 9)

		require.Len(t, images, 2)
		assert.Equal(t, "https://img.example/a.jpg", images[0].OriginalURL)
		assert.Equal(t, "ซ้าย", images[0].Side)
		assert.Equal(t, "หลัง", images[1].Side)
		for _, img := range images {
			assert.Equal(t, uint64(9), img.ClaimID)
			assert.False(t, img.IsAnnotated)
		}
	})

	t.Run("unknown side defaults to unspecified", func(t *testing.T) {
		images := buildEvaluationImages([]d.DamagePhotoInput{
			{URL: "https://img.example/c.jpg", Side: "top"},
		}, 1)
		require.Len(t, images, 1)
		assert.Equal(t, "ไม่ระบุ", images[0].Side)
	})

	t.Run("empty input yields zero images", func(t *testing.T) {
		assert.Len(t, buildEvaluationImages(nil, 1), 0)
	})
}

func TestBuildAccidentDetail(t *testing.T) {
	lat, lng, acc := 13.75633091, 100.50176529, 12345.678

	det := buildAccidentDetail(&d.AccidentInput{
		AccidentType: " collision ",
		Date:         "2026-08-01",
		Time:         "14:30",
		AreaType:     "highway",
		Location: &d.AccidentLocationInput{
			Province: "กรุงเทพมหานคร",
			District: "จตุจักร",
			Road:     "วิภาวดีรังสิต",
			Nearby:   "หน้าห้าง",
			Details:  "ใกล้ทางด่วน",
			Lat:      &lat,
			Lng:      &lng,
			Accuracy: &acc,
		},
	})

	assert.Equal(t, "collision", det.AccidentType)
	assert.Equal(t, "2026-08-01", det.AccidentDate)
	assert.Equal(t, "14:30:00", det.AccidentTime)
	assert.Equal(t, "กรุงเทพมหานคร", det.Province)

	require.NotNil(t, det.Latitude)
	assert.Equal(t, 13.756331, *det.Latitude)
	require.NotNil(t, det.Longitude)
	assert.Equal(t, 100.501765, *det.Longitude)
	require.NotNil(t, det.Accuracy)
	assert.Equal(t, 9999.99, *det.Accuracy)
}

func TestBuildAccidentDetailWithoutLocation(t *testing.T) {
	det := buildAccidentDetail(&d.AccidentInput{
		AccidentType: "single-car",
		Date:         "2026-08-02",
		Time:         "bad-time",
		AreaType:     "parking",
	})

	assert.Equal(t, "00:00:00", det.AccidentTime)
	assert.Nil(t, det.Latitude)
	assert.Nil(t, det.Longitude)
	assert.Nil(t, det.Accuracy)
}
