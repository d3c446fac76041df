package domain

type Room struct {
	ID      int64
	HotelID int64  // owning hotel, required
	Number  string // unique
	Type    string
	Price   float64
}
