package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleChef     Role = "Chef"
	RoleCustomer Role = "Customer"
)

type Account struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
	Role         Role   `json:"role"`
}

type Session struct {
	Token     string    `json:"-"`
	AccountID int       `json:"account_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// MenuItem prices are in minor currency units.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

type CategoryGroup struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

type CartLine struct {
	MenuItem MenuItem `json:"menu_item"`
	Quantity int      `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.MenuItem.Price * int64(l.Quantity)
}

type Cart struct {
	Lines []CartLine `json:"lines"`
	Total int64      `json:"total"`
	Count int        `json:"count"`
}

func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "Dine-in"
	OrderTypeTakeaway OrderType = "Takeaway"
)

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	OrderType    OrderType   `json:"order_type"`
	Items        []CartLine  `json:"items"`
	Total        int64       `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Phone  string            `json:"phone"`
	Guests int               `json:"guests"`
	Date   string            `json:"date"`
	Time   string            `json:"time"`
	Status ReservationStatus `json:"status"`
}

type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Course struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MealSuggestion struct {
	Appetizer           Course `json:"appetizer"`
	MainCourse          Course `json:"mainCourse"`
	Dessert             Course `json:"dessert"`
	SuggestionRationale string `json:"suggestionRationale"`
}

type PopularItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
}
