package service

import (
	"das-foods/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

// SeedAccounts returns the fixed staff and customer accounts with bcrypt hashes.
func SeedAccounts(cost int) ([]domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cost)
	if err != nil {
		return nil, err
	}
	return []domain.Account{
		{ID: 1, Username: "admin", PasswordHash: hash, Role: domain.RoleAdmin},
		{ID: 2, Username: "chef", PasswordHash: hash, Role: domain.RoleChef},
		{ID: 3, Username: "customer", PasswordHash: hash, Role: domain.RoleCustomer},
	}, nil
}

func SeedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, Name: "Margherita Pizza", Description: "Classic pizza with tomatoes, mozzarella, and basil.", Price: 1050, Category: "Main Courses", ImageURL: "https://picsum.photos/seed/pizza/400/300"},
		{ID: 2, Name: "Caesar Salad", Description: "Crisp romaine lettuce with Caesar dressing, croutons, and Parmesan cheese.", Price: 700, Category: "Appetizers", ImageURL: "https://picsum.photos/seed/salad/400/300"},
		{ID: 3, Name: "Spaghetti Carbonara", Description: "Pasta with eggs, cheese, pancetta, and black pepper.", Price: 1250, Category: "Main Courses", ImageURL: "https://picsum.photos/seed/pasta/400/300"},
		{ID: 4, Name: "Tiramisu", Description: "Coffee-flavoured Italian dessert.", Price: 600, Category: "Desserts", ImageURL: "https://picsum.photos/seed/tiramisu/400/300"},
		{ID: 5, Name: "Bruschetta", Description: "Grilled bread with garlic, tomatoes, and olive oil.", Price: 550, Category: "Appetizers", ImageURL: "https://picsum.photos/seed/bruschetta/400/300"},
		{ID: 6, Name: "Grilled Salmon", Description: "Salmon fillet grilled to perfection, served with asparagus.", Price: 1500, Category: "Main Courses", ImageURL: "https://picsum.photos/seed/salmon/400/300"},
		{ID: 7, Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with a molten center.", Price: 650, Category: "Desserts", ImageURL: "https://picsum.photos/seed/cake/400/300"},
		{ID: 8, Name: "Iced Tea", Description: "Freshly brewed and chilled.", Price: 250, Category: "Drinks", ImageURL: "https://picsum.photos/seed/tea/400/300"},
	}
}
