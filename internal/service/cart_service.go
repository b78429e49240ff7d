package service

import "das-foods/internal/domain"

type CartService struct {
	carts   CartRepository
	catalog CatalogRepository
}

func NewCartService(carts CartRepository, catalog CatalogRepository) *CartService {
	return &CartService{carts: carts, catalog: catalog}
}

func (s *CartService) Get(session string) domain.Cart {
	return buildCart(s.carts.Lines(session))
}

func (s *CartService) Add(session string, menuItemID int) (domain.Cart, error) {
	item, err := s.catalog.GetItem(menuItemID)
	if err != nil {
		return s.Get(session), err
	}
	return buildCart(s.carts.AddLine(session, *item)), nil
}

func (s *CartService) Remove(session string, menuItemID int) domain.Cart {
	return buildCart(s.carts.RemoveLine(session, menuItemID))
}

func (s *CartService) Clear(session string) domain.Cart {
	s.carts.Clear(session)
	return buildCart(nil)
}

func buildCart(lines []domain.CartLine) domain.Cart {
	cart := domain.Cart{Lines: lines, Total: domain.CartTotal(lines)}
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	for _, line := range lines {
		cart.Count += line.Quantity
	}
	return cart
}
