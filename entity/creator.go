package entity

// CreatorProfile is the creator-side profile as served by /creator/me.
type CreatorProfile struct {
	ID              string   `json:"id"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Bio             string   `json:"bio"`
	CityID          string   `json:"cityId"`
	MinPrice        int      `json:"minPrice"`
	MaxPrice        int      `json:"maxPrice"`
	Tags            []string `json:"tags"`
	Avatar          string   `json:"avatar"`
	Rating          float64  `json:"rating"`
	TotalBookings   int      `json:"totalBookings"`
	ProfileComplete int      `json:"profileComplete"`
}

// CreatorProfileUpdate carries only the fields the user edited; zero values
// are omitted so the server keeps existing data.
type CreatorProfileUpdate struct {
	FullName string   `json:"fullName,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Bio      string   `json:"bio,omitempty"`
	CityID   string   `json:"cityId,omitempty"`
	MinPrice int      `json:"minPrice,omitempty"`
	MaxPrice int      `json:"maxPrice,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type PortfolioItem struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// CreatorKYC is the identity/bank submission reviewed asynchronously by an
// administrator. Status is empty until the first submission.
type CreatorKYC struct {
	Aadhaar       string `json:"aadhaar"`
	PAN           string `json:"pan"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	Status        string `json:"status,omitempty"`
}
