package entity

// OrganizerProfile is the organizer-side profile as served by /organizer/me.
type OrganizerProfile struct {
	ID            string         `json:"id"`
	BrandName     string         `json:"brandName"`
	GST           string         `json:"gst"`
	ContactPerson string         `json:"contactPerson"`
	Phone         string         `json:"phone"`
	About         string         `json:"about"`
	Policies      string         `json:"policies"`
	GSTDoc        string         `json:"gstDoc"`
	IDDoc         string         `json:"idDoc"`
	Stats         OrganizerStats `json:"stats"`
}

type OrganizerStats struct {
	EventsHosted    int     `json:"eventsHosted"`
	StallsManaged   int     `json:"stallsManaged"`
	Rating          float64 `json:"rating"`
	ProfileComplete int     `json:"profileComplete"`
}

type OrganizerProfileUpdate struct {
	BrandName     string `json:"brandName,omitempty"`
	GST           string `json:"gst,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	About         string `json:"about,omitempty"`
	Policies      string `json:"policies,omitempty"`
}

type Venue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
}

type VenueCreate struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
}

// Dashboard is the aggregate view behind the organizer dashboard cards and
// charts.
type Dashboard struct {
	Revenue           int           `json:"revenue"`
	StallsSold        int           `json:"stallsSold"`
	TotalStalls       int           `json:"totalStalls"`
	ActiveEvents      int           `json:"activeEvents"`
	TotalViews        int           `json:"totalViews"`
	RevenueTrend      []MonthAmount `json:"revenueTrend"`
	BookingsThisMonth []int         `json:"bookingsThisMonth"`
}

type MonthAmount struct {
	Month  string `json:"month"`
	Amount int    `json:"amount"`
}

// OrganizerEvent is the per-event row on the organizer dashboard.
type OrganizerEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Views       int    `json:"views"`
	Status      string `json:"status"`
	StartAt     string `json:"startAt"`
	EndAt       string `json:"endAt"`
	Revenue     int    `json:"revenue"`
	StallsSold  int    `json:"stallsSold"`
	TotalStalls int    `json:"totalStalls"`
}

// OrganizerBooking is the recent-bookings row on the organizer dashboard.
type OrganizerBooking struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	StallID string `json:"stallId"`
	Amount  int    `json:"amount"`
	Date    string `json:"date"`
}

type OrganizerTotals struct {
	TotalEvents   int `json:"totalEvents"`
	TotalBookings int `json:"totalBookings"`
	Revenue       int `json:"revenue"`
	Views         int `json:"views"`
}
