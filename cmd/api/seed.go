package main

import (
	"log"

	"go-outlet-ops/internal/model"
	"go-outlet-ops/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seedReferenceData creates the outlets, users, and sample products if they
// don't exist yet. Safe to run on every boot.
func seedReferenceData(db *gorm.DB) {
	outletRepo := repository.NewOutletRepo(db)
	userRepo := repository.NewUserRepo(db)

	outlets := []struct {
		name string
		typ  model.OutletType
	}{
		{"University Cafe", model.OutletCafe},
		{"University Restaurant", model.OutletRestaurant},
		{"Mini Market", model.OutletMiniMarket},
	}

	outletIDs := map[model.OutletType]uuid.UUID{}
	for _, o := range outlets {
		existing, err := outletRepo.FindByName(o.name)
		if err == nil {
			outletIDs[o.typ] = existing.ID
			continue
		}
		outlet := &model.Outlet{Name: o.name, Type: o.typ}
		if err := outletRepo.Create(outlet); err != nil {
			log.Printf("Warning: failed to seed outlet %s: %v", o.name, err)
			continue
		}
		outletIDs[o.typ] = outlet.ID
	}

	users := []struct {
		email  string
		name   string
		role   model.Role
		outlet model.OutletType
	}{
		{"owner@inventory.com", "Owner Admin", model.RoleOwner, ""},
		{"purchasing@inventory.com", "Purchasing Staff", model.RolePurchasing, ""},
		{"cafe@inventory.com", "Cafe Staff", model.RoleOutletCafe, model.OutletCafe},
		{"restaurant@inventory.com", "Restaurant Staff", model.RoleOutletRestaurant, model.OutletRestaurant},
		{"minimarket@inventory.com", "Mini Market Staff", model.RoleOutletMiniMarket, model.OutletMiniMarket},
	}

	for _, u := range users {
		if _, err := userRepo.FindByEmail(u.email); err == nil {
			continue
		}
		user := &model.User{
			Email: u.email,
			Name:  u.name,
			Role:  u.role,
		}
		if u.outlet != "" {
			if id, ok := outletIDs[u.outlet]; ok {
				outletID := id
				user.OutletID = &outletID
			}
		}
		if err := user.SetPassword("password123"); err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", u.email, err)
			continue
		}
		if err := userRepo.Create(user); err != nil {
			log.Printf("Warning: failed to seed user %s: %v", u.email, err)
		} else {
			log.Printf("Seeded user %s (%s)", u.email, u.role)
		}
	}

	products := []model.Product{
		{Name: "Coffee Beans", Unit: "kg", Category: "Beverages", IsFixed: false},
		{Name: "Sugar", Unit: "kg", Category: "Ingredients", IsFixed: true},
		{Name: "Bread", Unit: "pieces", Category: "Bakery", IsFixed: false},
		{Name: "Bottled Water", Unit: "bottles", Category: "Beverages", IsFixed: true},
	}

	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count == 0 {
		for i := range products {
			if err := db.Create(&products[i]).Error; err != nil {
				log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
			}
		}
		log.Println("Seeded sample products")
	}
}
