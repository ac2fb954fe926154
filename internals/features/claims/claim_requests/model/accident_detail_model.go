package model

import "time"

// AccidentDetail is the 1:1 circumstantial record of a claim (what
// happened, where, when). It is overwritten in place by resubmission;
// a claim never gets a second row.
type AccidentDetail struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	AccidentType string `gorm:"column:accident_type;type:varchar(100);not null" json:"accident_type"`
	AccidentDate string `gorm:"column:accident_date;type:date;not null" json:"accident_date"`
	AccidentTime string `gorm:"column:accident_time;type:varchar(8);not null;default:'00:00:00'" json:"accident_time"`
	AreaType     string `gorm:"column:area_type;type:varchar(100);not null" json:"area_type"`

	Province        string `gorm:"column:province;type:varchar(100)" json:"province"`
	District        string `gorm:"column:district;type:varchar(100)" json:"district"`
	Road            string `gorm:"column:road;type:varchar(200)" json:"road"`
	NearbyPlace     string `gorm:"column:nearby_place;type:varchar(200)" json:"nearby_place"`
	LocationDetails string `gorm:"column:location_details;type:text" json:"location_details"`

	Latitude  *float64 `gorm:"column:latitude;type:numeric(9,6)" json:"latitude"`
	Longitude *float64 `gorm:"column:longitude;type:numeric(9,6)" json:"longitude"`
	// GPS accuracy in meters, clamped to the numeric(6,2) range [0, 9999.99]
	Accuracy *float64 `gorm:"column:accuracy;type:numeric(6,2)" json:"accuracy"`

	// Legacy single evidence file pointer (pre-gallery clients)
	FileURL   string `gorm:"column:file_url;type:text" json:"file_url"`
	MediaType string `gorm:"column:media_type;type:varchar(20)" json:"media_type"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AccidentDetail) TableName() string {
	return "accident_details"
}
