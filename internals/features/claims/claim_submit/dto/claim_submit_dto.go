package dto

// Wire shapes match the web client: the accident object keeps the
// camelCase keys the form wizard has always sent.

type AccidentLocationInput struct {
	Province string `json:"province"`
	District string `json:"district"`
	Road     string `json:"road"`
	Nearby   string `json:"nearby"`
	Details  string `json:"details"`

	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Accuracy *float64 `json:"accuracy"`
}

type AccidentInput struct {
	AccidentType string                 `json:"accidentType" validate:"required"`
	Date         string                 `json:"date" validate:"required"`
	Time         string                 `json:"time" validate:"required"`
	AreaType     string                 `json:"areaType" validate:"required"`
	Location     *AccidentLocationInput `json:"location" validate:"required"`

	// Legacy single evidence file (older clients)
	FileURL   string `json:"fileUrl"`
	MediaType string `json:"mediaType"`
}

type DamagePhotoInput struct {
	URL  string `json:"url"`
	Note string `json:"note"`
	Side string `json:"side"`
}

// SubmitClaimRequest creates accident + claim + photos in one shot.
type SubmitClaimRequest struct {
	SelectedCarID uint64             `json:"selected_car_id" validate:"required,gt=0"`
	Accident      *AccidentInput     `json:"accident" validate:"required"`
	DamagePhotos  []DamagePhotoInput `json:"damage_photos"`
}

// UpdateClaimRequest resubmits a claim that was sent back as
// incomplete: the accident row is overwritten, the photo set replaced.
type UpdateClaimRequest struct {
	Accident     *AccidentInput     `json:"accident" validate:"required"`
	DamagePhotos []DamagePhotoInput `json:"damage_photos"`
}
