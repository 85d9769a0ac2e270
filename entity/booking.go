package entity

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingPaid      BookingStatus = "PAID"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking is the denormalized read projection served by /bookings/my. The
// authoritative record lives on the server.
type Booking struct {
	ID        string
	Status    BookingStatus
	Amount    int
	CreatedAt time.Time
	Event     BookingEvent
	Stall     BookingStall
	Reviewed  bool
	Rating    int
}

type BookingEvent struct {
	Title   string
	CityID  string
	StartAt time.Time
	EndAt   time.Time
}

type BookingStall struct {
	Name  string
	Tier  Tier
	Price int
}

// BookingRequest commits a reservation. PaymentRef must be produced before
// the request is sent; Amount is the full three-term total.
type BookingRequest struct {
	EventID    string `json:"eventId"`
	StallID    string `json:"stallId"`
	Amount     int    `json:"amount"`
	PaymentRef string `json:"paymentRef"`
}

// ReviewRequest rates a completed booking.
type ReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText,omitempty"`
}

// Invoice points at a downloadable invoice for a booking.
type Invoice struct {
	BookingID  string `json:"bookingId"`
	InvoiceURL string `json:"invoiceUrl"`
	Amount     int    `json:"amount"`
	EventTitle string `json:"eventTitle"`
	StallName  string `json:"stallName"`
	Date       string `json:"date"`
}
