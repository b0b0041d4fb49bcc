package models

// Property is a rental listing owned by a user account.
type Property struct {
	ID               int64
	Title            string
	Description      string
	Price            float64
	Location         string
	NumberOfBedrooms int
	OwnerID          int64
}

// PropertyUpdate describes a partial update. Nil fields are left untouched.
type PropertyUpdate struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price"`
	Location         *string  `json:"location"`
	NumberOfBedrooms *int     `json:"number_of_bedrooms"`
}
