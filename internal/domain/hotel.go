package domain

type Hotel struct {
	ID      int64
	Name    string // unique
	Address string
	City    string
	Phone   string
}
