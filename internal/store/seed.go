package store

import (
	"log"
	"time"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

// Seed bundles the initial data injected into the stores at startup.
// Nothing here is durable; restarting the server resets the state.
type Seed struct {
	Menu      []model.MenuItem
	Tables    []model.Table
	Inventory []model.InventoryItem
	Users     []model.User
	Orders    []model.Order
	Shifts    []model.Shift
}

// DefaultSeed returns the demo dataset: a small menu, the floor plan,
// stocked inventory and one staff account per role. Every account's
// password is "password" hashed at the given bcrypt cost.
func DefaultSeed(bcryptCost int) Seed {
	now := time.Now().UTC()
	hash, err := utils.HashPassword("password", bcryptCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost.
		log.Fatalf("seed: hash password: %v", err)
	}

	menu := []model.MenuItem{
		{ID: "MEN-001", Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 11.5, Category: "Mains", Available: true, CreatedAt: now, UpdatedAt: now},
		{ID: "MEN-002", Name: "Classic Burger", Description: "Beef patty, cheddar, pickles", Price: 9.5, Category: "Mains", Available: true, CreatedAt: now, UpdatedAt: now},
		{ID: "MEN-003", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Price: 7.0, Category: "Starters", Available: true, CreatedAt: now, UpdatedAt: now},
		{ID: "MEN-004", Name: "Tiramisu", Description: "Espresso-soaked ladyfingers", Price: 5.5, Category: "Desserts", Available: true, CreatedAt: now, UpdatedAt: now},
		{ID: "MEN-005", Name: "House Lemonade", Price: 3.0, Category: "Drinks", Available: true, CreatedAt: now, UpdatedAt: now},
		{ID: "MEN-006", Name: "Espresso", Price: 2.0, Category: "Drinks", Available: false, CreatedAt: now, UpdatedAt: now},
	}

	tables := []model.Table{
		{ID: "TBL-001", Number: 1, Capacity: 2, Status: model.TableAvailable},
		{ID: "TBL-002", Number: 2, Capacity: 4, Status: model.TableOccupied, OrderID: "ORD-001"},
		{ID: "TBL-003", Number: 3, Capacity: 4, Status: model.TableAvailable},
		{ID: "TBL-004", Number: 4, Capacity: 6, Status: model.TableReserved, Reservation: &model.Reservation{Name: "Moreno", Time: now.Add(2 * time.Hour)}},
		{ID: "TBL-005", Number: 5, Capacity: 2, Status: model.TableCleaning},
	}

	inventory := []model.InventoryItem{
		{ID: "INV-001", Name: "Tomatoes", Category: "Produce", Stock: 24, MinStock: 6, Unit: "kg", CostPerUnit: 1.8, Supplier: "GreenFarm", LastRestocked: now.Add(-48 * time.Hour)},
		{ID: "INV-002", Name: "Mozzarella", Category: "Dairy", Stock: 10, MinStock: 4, Unit: "kg", CostPerUnit: 6.2, Supplier: "Caseificio Sud", LastRestocked: now.Add(-24 * time.Hour)},
		{ID: "INV-003", Name: "Ground Beef", Category: "Meat", Stock: 8, MinStock: 5, Unit: "kg", CostPerUnit: 9.0, Supplier: "Hilltop Butchers", LastRestocked: now.Add(-24 * time.Hour)},
		{ID: "INV-004", Name: "Espresso Beans", Category: "Dry Goods", Stock: 3, MinStock: 2, Unit: "kg", CostPerUnit: 14.5, Supplier: "Roastery 9", LastRestocked: now.Add(-120 * time.Hour)},
	}

	users := []model.User{
		{ID: "USR-001", Name: "Alex Petrov", Email: "admin@pos.local", Role: model.UserAdmin, Active: true, PasswordHash: hash, CreatedAt: now},
		{ID: "USR-002", Name: "Maria Gomez", Email: "manager@pos.local", Role: model.UserManager, Active: true, PasswordHash: hash, CreatedAt: now},
		{ID: "USR-003", Name: "Dana Lee", Email: "server@pos.local", Role: model.UserServer, Active: true, PasswordHash: hash, CreatedAt: now},
		{ID: "USR-004", Name: "Tomasz Nowak", Email: "kitchen@pos.local", Role: model.UserKitchen, Active: true, PasswordHash: hash, CreatedAt: now},
	}

	orders := []model.Order{
		{
			ID: "ORD-001", TableNumber: 2, ServerName: "Dana Lee", Status: model.OrderPreparing,
			CreatedAt: now.Add(-20 * time.Minute),
			Items: []model.OrderItem{
				{ID: "ITM-001", MenuItemID: "MEN-001", Name: "Margherita Pizza", Price: 11.5, Quantity: 1},
				{ID: "ITM-002", MenuItemID: "MEN-005", Name: "House Lemonade", Price: 3.0, Quantity: 2, Instructions: "no ice"},
			},
			Total: 17.5,
		},
	}

	shifts := []model.Shift{
		{ID: "SHF-001", UserID: "USR-003", Role: model.UserServer, Start: now.Add(-4 * time.Hour), End: now.Add(4 * time.Hour)},
		{ID: "SHF-002", UserID: "USR-004", Role: model.UserKitchen, Start: now.Add(-4 * time.Hour), End: now.Add(4 * time.Hour)},
	}

	return Seed{Menu: menu, Tables: tables, Inventory: inventory, Users: users, Orders: orders, Shifts: shifts}
}
