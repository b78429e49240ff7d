package storage

import (
	"fmt"
	"sync"
	"time"

	"das-foods/internal/domain"
	"das-foods/internal/service"

	"github.com/google/uuid"
)

// MemorySessionStore holds the seed accounts and the live browser sessions.
// Sessions idle for longer than idleTTL are no longer resolved; a zero
// idleTTL keeps them until ExpireIdle removes them.
type MemorySessionStore struct {
	mu       sync.RWMutex
	accounts []domain.Account
	sessions map[string]*domain.Session
	idleTTL  time.Duration
}

func NewMemorySessionStore(accounts []domain.Account, idleTTL time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		accounts: append([]domain.Account(nil), accounts...),
		sessions: make(map[string]*domain.Session),
		idleTTL:  idleTTL,
	}
}

func (s *MemorySessionStore) FindAccount(username string) (*domain.Account, bool) {
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			account := s.accounts[i]
			return &account, true
		}
	}
	return nil, false
}

func (s *MemorySessionStore) GetAccount(id int) (*domain.Account, bool) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			account := s.accounts[i]
			return &account, true
		}
	}
	return nil, false
}

func (s *MemorySessionStore) CreateSession() domain.Session {
	now := time.Now().UTC()
	sess := &domain.Session{Token: uuid.NewString(), CreatedAt: now, LastSeen: now}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return *sess
}

func (s *MemorySessionStore) GetSession(token string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	now := time.Now().UTC()
	if s.idleTTL > 0 && now.Sub(sess.LastSeen) > s.idleTTL {
		return nil, false
	}
	sess.LastSeen = now
	copied := *sess
	return &copied, true
}

func (s *MemorySessionStore) SetSessionAccount(token string, accountID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return service.ErrSessionNotFound
	}
	sess.AccountID = accountID
	return nil
}

func (s *MemorySessionStore) RotateSession(token string, accountID int) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return domain.Session{}, service.ErrSessionNotFound
	}
	delete(s.sessions, token)

	now := time.Now().UTC()
	sess := &domain.Session{Token: uuid.NewString(), AccountID: accountID, CreatedAt: now, LastSeen: now}
	s.sessions[sess.Token] = sess
	return *sess, nil
}

func (s *MemorySessionStore) ExpireIdle(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []string
	for token, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, token)
			expired = append(expired, token)
		}
	}
	return expired
}

// MemoryCatalog keeps menu items in insertion order.
type MemoryCatalog struct {
	mu     sync.RWMutex
	items  []domain.MenuItem
	nextID int
}

func NewMemoryCatalog(seed []domain.MenuItem) *MemoryCatalog {
	c := &MemoryCatalog{items: append([]domain.MenuItem(nil), seed...)}
	for _, item := range seed {
		if item.ID > c.nextID {
			c.nextID = item.ID
		}
	}
	return c
}

func (c *MemoryCatalog) ListItems() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.MenuItem{}, c.items...)
}

func (c *MemoryCatalog) GetItem(id int) (*domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, service.ErrMenuItemNotFound
}

func (c *MemoryCatalog) CreateItem(item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	item.ID = c.nextID
	c.items = append(c.items, *item)
	return nil
}

func (c *MemoryCatalog) UpdateItem(item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = *item
			return nil
		}
	}
	return service.ErrMenuItemNotFound
}

func (c *MemoryCatalog) DeleteItem(id int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// MemoryCartStore keeps one ordered cart per session token.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]domain.CartLine)}
}

func (s *MemoryCartStore) Lines(session string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.carts[session])
}

func (s *MemoryCartStore) AddLine(session string, item domain.MenuItem) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	for i := range lines {
		if lines[i].MenuItem.ID == item.ID {
			lines[i].Quantity++
			return cloneLines(lines)
		}
	}
	lines = append(lines, domain.CartLine{MenuItem: item, Quantity: 1})
	s.carts[session] = lines
	return cloneLines(lines)
}

func (s *MemoryCartStore) RemoveLine(session string, menuItemID int) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[session]
	kept := lines[:0:0]
	for _, line := range lines {
		if line.MenuItem.ID != menuItemID {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		delete(s.carts, session)
		return nil
	}
	s.carts[session] = kept
	return cloneLines(kept)
}

func (s *MemoryCartStore) Clear(session string) {
	s.mu.Lock()
	delete(s.carts, session)
	s.mu.Unlock()
}

func (s *MemoryCartStore) Transfer(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.carts[from]
	if !ok {
		return
	}
	delete(s.carts, from)
	s.carts[to] = lines
}

func (s *MemoryCartStore) Checkout(session string, record func(lines []domain.CartLine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := record(cloneLines(s.carts[session])); err != nil {
		return err
	}
	delete(s.carts, session)
	return nil
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	if len(lines) == 0 {
		return nil
	}
	return append([]domain.CartLine(nil), lines...)
}

type MemoryOrderBook struct {
	mu     sync.RWMutex
	orders []domain.Order
	seq    int
}

func NewMemoryOrderBook() *MemoryOrderBook {
	return &MemoryOrderBook{seq: 1000}
}

func (b *MemoryOrderBook) CreateOrder(order *domain.Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	order.ID = fmt.Sprintf("ORD-%d", b.seq)
	order.Items = cloneLines(order.Items)
	b.orders = append(b.orders, *order)
	return nil
}

func (b *MemoryOrderBook) GetOrder(id string) (*domain.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, order := range b.orders {
		if order.ID == id {
			order.Items = cloneLines(order.Items)
			return &order, nil
		}
	}
	return nil, service.ErrOrderNotFound
}

func (b *MemoryOrderBook) ListOrders() []domain.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	orders := make([]domain.Order, len(b.orders))
	for i, order := range b.orders {
		order.Items = cloneLines(order.Items)
		orders[i] = order
	}
	return orders
}

// UpdateStatusGuard sets the status only while it still equals from.
func (b *MemoryOrderBook) UpdateStatusGuard(id string, from, to domain.OrderStatus) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID != id {
			continue
		}
		if b.orders[i].Status != from {
			return 0, nil
		}
		b.orders[i].Status = to
		return 1, nil
	}
	return 0, service.ErrOrderNotFound
}

type MemoryReservationBook struct {
	mu           sync.RWMutex
	reservations []domain.Reservation
	seq          int
}

func NewMemoryReservationBook() *MemoryReservationBook {
	return &MemoryReservationBook{seq: 1000}
}

func (b *MemoryReservationBook) CreateReservation(res *domain.Reservation) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	res.ID = fmt.Sprintf("RES-%d", b.seq)
	b.reservations = append(b.reservations, *res)
	return nil
}

func (b *MemoryReservationBook) GetReservation(id string) (*domain.Reservation, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, res := range b.reservations {
		if res.ID == id {
			return &res, nil
		}
	}
	return nil, service.ErrReservationNotFound
}

func (b *MemoryReservationBook) ListReservations() []domain.Reservation {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Reservation{}, b.reservations...)
}

func (b *MemoryReservationBook) UpdateStatusGuard(id string, from, to domain.ReservationStatus) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.reservations {
		if b.reservations[i].ID != id {
			continue
		}
		if b.reservations[i].Status != from {
			return 0, nil
		}
		b.reservations[i].Status = to
		return 1, nil
	}
	return 0, service.ErrReservationNotFound
}

type MemoryFeedbackLog struct {
	mu      sync.RWMutex
	entries []domain.Feedback
	seq     int
}

func NewMemoryFeedbackLog() *MemoryFeedbackLog {
	return &MemoryFeedbackLog{seq: 1000}
}

func (l *MemoryFeedbackLog) CreateFeedback(fb *domain.Feedback) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	fb.ID = fmt.Sprintf("FDBK-%d", l.seq)
	l.entries = append(l.entries, *fb)
	return nil
}

func (l *MemoryFeedbackLog) ListFeedback() []domain.Feedback {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Feedback{}, l.entries...)
}

var (
	_ service.SessionRepository     = (*MemorySessionStore)(nil)
	_ service.CatalogRepository     = (*MemoryCatalog)(nil)
	_ service.CartRepository        = (*MemoryCartStore)(nil)
	_ service.OrderRepository       = (*MemoryOrderBook)(nil)
	_ service.ReservationRepository = (*MemoryReservationBook)(nil)
	_ service.FeedbackRepository    = (*MemoryFeedbackLog)(nil)
)
