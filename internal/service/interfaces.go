package service

import (
	"context"
	"time"

	"das-foods/internal/domain"
)

type SessionRepository interface {
	FindAccount(username string) (*domain.Account, bool)
	GetAccount(id int) (*domain.Account, bool)
	CreateSession() domain.Session
	GetSession(token string) (*domain.Session, bool)
	SetSessionAccount(token string, accountID int) error
	// RotateSession replaces token with a fresh one bound to accountID.
	RotateSession(token string, accountID int) (domain.Session, error)
	// ExpireIdle removes sessions last seen before cutoff and returns their tokens.
	ExpireIdle(cutoff time.Time) []string
}

type CatalogRepository interface {
	ListItems() []domain.MenuItem
	GetItem(id int) (*domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(item *domain.MenuItem) error
	DeleteItem(id int) (int64, error)
}

type CartRepository interface {
	Lines(session string) []domain.CartLine
	AddLine(session string, item domain.MenuItem) []domain.CartLine
	RemoveLine(session string, menuItemID int) []domain.CartLine
	Clear(session string)
	// Transfer moves the cart of one session to another.
	Transfer(from, to string)
	// Checkout hands the current lines to record and empties the cart only
	// when record returns nil.
	Checkout(session string, record func(lines []domain.CartLine) error) error
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id string) (*domain.Order, error)
	ListOrders() []domain.Order
	UpdateStatusGuard(id string, from, to domain.OrderStatus) (int64, error)
}

type ReservationRepository interface {
	CreateReservation(res *domain.Reservation) error
	GetReservation(id string) (*domain.Reservation, error)
	ListReservations() []domain.Reservation
	UpdateStatusGuard(id string, from, to domain.ReservationStatus) (int64, error)
}

type FeedbackRepository interface {
	CreateFeedback(fb *domain.Feedback) error
	ListFeedback() []domain.Feedback
}

type GenerationRequest struct {
	Model       string
	Prompt      string
	Temperature float32
}

// SuggestionGenerator returns the raw JSON text produced by the model.
type SuggestionGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

type InFlightGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, msg domain.KafkaMessage) error
}

type PopularityStore interface {
	RecordSale(ctx context.Context, day string, menuItemID, quantity int) error
	TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error)
}

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

type SessionServiceInterface interface {
	Start() domain.Session
	Resolve(token string) (*domain.Session, *domain.Account, bool)
	Login(token, username, password string) (*domain.Account, string, error)
	Logout(token string) error
}

type CatalogServiceInterface interface {
	List() []domain.MenuItem
	Get(id int) (*domain.MenuItem, error)
	Create(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(id int) (int64, error)
	Categories() []string
	Grouped() []domain.CategoryGroup
}

type CartServiceInterface interface {
	Get(session string) domain.Cart
	Add(session string, menuItemID int) (domain.Cart, error)
	Remove(session string, menuItemID int) domain.Cart
	Clear(session string) domain.Cart
}

type OrderServiceInterface interface {
	Place(ctx context.Context, session, customerName string, orderType domain.OrderType) (*domain.Order, error)
	Advance(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	Find(id string) (*domain.Order, error)
	List() []domain.Order
	Active() []domain.Order
	QRCode(id string) ([]byte, error)
	TrackingURL(id string) string
}

type ReservationServiceInterface interface {
	Request(ctx context.Context, req ReservationRequest) (*domain.Reservation, error)
	SetStatus(id string, status domain.ReservationStatus) (*domain.Reservation, error)
	Find(id string) (*domain.Reservation, error)
	List() []domain.Reservation
}

type FeedbackServiceInterface interface {
	Submit(name string, rating int, comment string) (*domain.Feedback, error)
	Recent(limit int) []domain.Feedback
}

type SuggestionServiceInterface interface {
	Enabled() bool
	Suggest(ctx context.Context, session, preference string) (*domain.MealSuggestion, error)
}

type AnalyticsInterface interface {
	Popular(ctx context.Context, period string, limit int) ([]domain.PopularItem, error)
}

var (
	_ SessionServiceInterface     = (*SessionService)(nil)
	_ CatalogServiceInterface     = (*CatalogService)(nil)
	_ CartServiceInterface        = (*CartService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ FeedbackServiceInterface    = (*FeedbackService)(nil)
	_ SuggestionServiceInterface  = (*SuggestionService)(nil)
	_ AnalyticsInterface          = (*AnalyticsService)(nil)
)
