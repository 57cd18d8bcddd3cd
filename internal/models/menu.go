package models

// MenuItem represents a single entry on the café menu. Removal is a soft
// delete: IsAvailable flips to false and the row stays.
type MenuItem struct {
	BaseModel
	Name        string  `json:"name"`
	Type        string  `gorm:"index" json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsAvailable bool    `gorm:"default:true" json:"is_available"`
	Visibility  bool    `gorm:"default:true" json:"visibility"`
}
