package domain

import "time"

const (
	EventOrderPlaced          = "order_placed"
	EventOrderStatusChanged   = "order_status_changed"
	EventReservationRequested = "reservation_requested"
)

type EventLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type KafkaMessage struct {
	Type          string      `json:"type"`
	OrderID       string      `json:"order_id,omitempty"`
	ReservationID string      `json:"reservation_id,omitempty"`
	Status        string      `json:"status,omitempty"`
	Lines         []EventLine `json:"lines,omitempty"`
	Total         int64       `json:"total,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}

func (m KafkaMessage) Key() string {
	if m.OrderID != "" {
		return m.OrderID
	}
	return m.ReservationID
}
