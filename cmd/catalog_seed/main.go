// Seeds the card-template catalog. Safe to run repeatedly: templates
// that already exist (by card key) are left untouched.
package main

import (
	"context"
	"log"
	"os"

	"credlytics/internal/config"
	"credlytics/internal/models"
	"credlytics/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

var catalog = []models.CardTemplate{
	{
		CardKey:   "acme-gold",
		Name:      "Acme Gold",
		Issuer:    "Acme Bank",
		AnnualFee: 250,
		Network:   strPtr("Visa"),
		Country:   "US",
		Benefits: []models.CardTemplateBenefit{
			{
				Title:       "Annual travel credit",
				Description: strPtr("Statement credit for travel purchases."),
				Category:    models.CategoryTravel,
				BenefitType: models.BenefitTypeAnnual,
				Value:       strPtr("$250 annual credit"),
				ResetPeriod: strPtr("calendar year"),
			},
			{
				Title:       "Dining rewards",
				Description: strPtr("Bonus points at restaurants."),
				Category:    models.CategoryDining,
				BenefitType: models.BenefitTypeOngoing,
				Value:       strPtr("$100 dining value"),
			},
			{
				Title:       "Airport lounge passes",
				Category:    models.CategoryLounge,
				BenefitType: models.BenefitTypeAnnual,
				Value:       strPtr("2 passes"),
				Terms:       strPtr("Participating lounges only."),
			},
		},
	},
	{
		CardKey:   "acme-platinum",
		Name:      "Acme Platinum",
		Issuer:    "Acme Bank",
		AnnualFee: 695,
		Network:   strPtr("Amex"),
		Country:   "US",
		Benefits: []models.CardTemplateBenefit{
			{
				Title:       "Hotel credit",
				Category:    models.CategoryTravel,
				BenefitType: models.BenefitTypeAnnual,
				Value:       strPtr("$200 hotel credit"),
				ResetPeriod: strPtr("calendar year"),
			},
			{
				Title:       "Monthly streaming credit",
				Category:    models.CategoryShopping,
				BenefitType: models.BenefitTypeMonthly,
				Value:       strPtr("$20 per month"),
				ResetPeriod: strPtr("monthly"),
			},
			{
				Title:       "Purchase protection",
				Category:    models.CategoryInsurance,
				BenefitType: models.BenefitTypeOngoing,
				Terms:       strPtr("Up to 90 days from purchase."),
			},
		},
	},
	{
		CardKey:   "everyday-cash",
		Name:      "Everyday Cash",
		Issuer:    "Union Credit",
		AnnualFee: 0,
		Network:   strPtr("Mastercard"),
		Country:   "US",
		Benefits: []models.CardTemplateBenefit{
			{
				Title:       "Grocery cashback",
				Category:    models.CategoryCashback,
				BenefitType: models.BenefitTypeOngoing,
				Value:       strPtr("3% back on groceries"),
			},
		},
	},
	{
		// Recently launched product; catalog benefits not published yet.
		CardKey:   "voyager-basic",
		Name:      "Voyager Basic",
		Issuer:    "Voyager Financial",
		AnnualFee: 95,
		Network:   strPtr("Visa"),
		Country:   "CA",
	},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	seeded := 0
	for _, template := range catalog {
		var existing models.CardTemplate
		result := repositories.DB.Where("card_key = ?", template.CardKey).First(&existing)
		if result.Error == nil {
			log.Printf("Template %q already exists, skipping", template.CardKey)
			continue
		}

		if err := repositories.DB.Create(&template).Error; err != nil {
			log.Fatalf("Failed to seed template %q: %v", template.CardKey, err)
		}
		seeded++
	}

	// The catalog cache holds the pre-seed state; drop it.
	if repositories.CacheService != nil && seeded > 0 {
		if err := repositories.CacheService.InvalidateTemplates(context.Background()); err != nil {
			log.Printf("⚠️ Failed to invalidate catalog cache: %v", err)
		}
	}

	seedAdmin()

	log.Printf("✅ Catalog seeded (%d new templates)", seeded)
}

// seedAdmin creates the admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set. Skipped otherwise.
func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	var existing models.User
	if repositories.DB.Where("email = ?", adminEmail).First(&existing).Error == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Name:         "Administrator",
		Role:         "admin",
		Status:       "active",
		TokenVersion: 1,
	}

	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("✅ Admin account created successfully!")
}
