package seedController

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luksiny/UrbanHarvestHub/models"
	"github.com/luksiny/UrbanHarvestHub/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func tags(values ...string) datatypes.JSON {
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrTime(v time.Time) *time.Time {
	return &v
}

func demoWorkshops() []models.Workshop {
	return []models.Workshop{
		{
			Title:       "Urban Gardening Basics",
			Description: "Learn the fundamentals of growing vegetables in small urban spaces. Perfect for beginners!",
			Instructor:  "Sarah Green",
			Date:        time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Duration:    3,
			Location:    "Community Center, 123 Main St",
			CoordLat:    ptrFloat(40.7128),
			CoordLng:    ptrFloat(-74.006),
			Price:       45,
			Capacity:    20,
			Category:    "Gardening",
			Tags:        tags("beginner", "urban", "vegetables"),
		},
		{
			Title:       "Preserving Your Harvest",
			Description: "Master the art of canning, pickling, and preserving your garden produce.",
			Instructor:  "Mike Preserve",
			Date:        time.Date(2024, 3, 20, 14, 0, 0, 0, time.UTC),
			Duration:    4,
			Location:    "Kitchen Studio, 456 Oak Ave",
			CoordLat:    ptrFloat(40.758),
			CoordLng:    ptrFloat(-73.9855),
			Price:       60,
			Capacity:    15,
			Category:    "Preservation",
			Tags:        tags("canning", "preservation", "intermediate"),
		},
		{
			Title:       "Sustainable Composting",
			Description: "Turn your kitchen scraps into nutrient-rich compost for your garden.",
			Instructor:  "Emma Earth",
			Date:        time.Date(2024, 3, 25, 11, 0, 0, 0, time.UTC),
			Duration:    2,
			Location:    "Green Space, 789 Park Blvd",
			CoordLat:    ptrFloat(40.7505),
			CoordLng:    ptrFloat(-73.9934),
			Price:       35,
			Capacity:    25,
			Category:    "Sustainability",
			Tags:        tags("composting", "sustainability", "all-levels"),
		},
	}
}

func demoProducts() []models.Product {
	return []models.Product{
		{Name: "Fresh Tomatoes", Description: "Locally grown, vine-ripened tomatoes perfect for salads and sauces.", Price: 4.99, Category: "Vegetables", Stock: 50, Unit: "lb", Organic: true, Tags: tags("fresh", "local", "tomatoes"), Seller: "Green Valley Farm"},
		{Name: "Rainbow Carrots", Description: "A colorful mix of orange, purple, and yellow carrots from urban gardens.", Price: 3.99, Category: "Vegetables", Stock: 40, Unit: "bunch", Organic: true, Tags: tags("carrots", "root", "rainbow"), Seller: "City Roots Collective"},
		{Name: "Baby Spinach", Description: "Tender baby spinach leaves harvested this morning.", Price: 2.99, Category: "Vegetables", Stock: 60, Unit: "pack", Organic: true, Tags: tags("greens", "salad"), Seller: "Rooftop Greens Co"},
		{Name: "Crisp Cucumbers", Description: "Crunchy cucumbers ideal for pickling or snacking.", Price: 1.99, Category: "Vegetables", Stock: 70, Unit: "lb", Organic: false, Tags: tags("cucumbers", "snack"), Seller: "Neighborhood Growers"},
		{Name: "Strawberry Punnets", Description: "Sweet, sun-ripened strawberries grown in raised beds.", Price: 5.49, Category: "Fruits", Stock: 35, Unit: "pack", Organic: true, Tags: tags("berries", "dessert"), Seller: "Green Valley Farm"},
		{Name: "Urban Orchard Apples", Description: "Crisp apples harvested from community orchard trees.", Price: 3.49, Category: "Fruits", Stock: 45, Unit: "lb", Organic: false, Tags: tags("apples", "snack"), Seller: "Urban Orchard Co"},
		{Name: "Backyard Blueberries", Description: "Hand-picked blueberries with intense flavor.", Price: 6.99, Category: "Fruits", Stock: 25, Unit: "pack", Organic: true, Tags: tags("blueberries", "antioxidants"), Seller: "Rooftop Greens Co"},
		{Name: "Citrus Medley", Description: "Assorted oranges, lemons, and limes for juicing and cooking.", Price: 7.99, Category: "Fruits", Stock: 30, Unit: "pack", Organic: false, Tags: tags("citrus", "mixed"), Seller: "Market Street Collective"},
		{Name: "Organic Basil", Description: "Fragrant organic basil, perfect for pesto and pizza.", Price: 3.5, Category: "Herbs", Stock: 30, Unit: "bunch", Organic: true, Tags: tags("herbs", "basil"), Seller: "Herb Garden Co"},
		{Name: "Garden Mint", Description: "Cooling mint leaves ideal for teas and cocktails.", Price: 2.5, Category: "Herbs", Stock: 35, Unit: "bunch", Organic: true, Tags: tags("mint", "herbs"), Seller: "Herb Garden Co"},
		{Name: "Rosemary Sprigs", Description: "Woody rosemary sprigs for roasting vegetables and breads.", Price: 2.75, Category: "Herbs", Stock: 28, Unit: "bunch", Organic: false, Tags: tags("rosemary", "aromatic"), Seller: "City Roots Collective"},
		{Name: "Coriander (Cilantro) Bunch", Description: "Fresh coriander leaves used in salsas and curries.", Price: 2.2, Category: "Herbs", Stock: 32, Unit: "bunch", Organic: true, Tags: tags("cilantro", "coriander"), Seller: "Neighborhood Growers"},
		{Name: "Heirloom Seeds Pack", Description: "Assorted heirloom vegetable seeds for your garden.", Price: 12.99, Category: "Seeds", Stock: 20, Unit: "pack", Organic: true, Tags: tags("seeds", "heirloom"), Seller: "Seed Masters"},
		{Name: "Salad Greens Seed Mix", Description: "Blend of lettuce, arugula, and chard seeds for cut-and-come-again harvests.", Price: 6.49, Category: "Seeds", Stock: 40, Unit: "pack", Organic: true, Tags: tags("salad", "greens", "seeds"), Seller: "Seed Masters"},
		{Name: "Pollinator Flower Mix", Description: "Seed mix designed to attract bees and butterflies to your urban garden.", Price: 5.99, Category: "Seeds", Stock: 35, Unit: "pack", Organic: false, Tags: tags("flowers", "pollinators"), Seller: "Bee Friendly Co"},
		{Name: "Balcony Tomato Seeds", Description: "Compact tomato variety ideal for balconies and small containers.", Price: 4.5, Category: "Seeds", Stock: 45, Unit: "pack", Organic: true, Tags: tags("tomato", "container"), Seller: "City Seeds Collective"},
		{Name: "Brinjal Seeds", Description: "Quality brinjal (eggplant) seeds for growing in pots or garden beds. Great for curries and grilling.", Price: 5.99, Category: "Seeds", Stock: 30, Unit: "pack", Organic: true, Tags: tags("brinjal", "eggplant", "seeds", "vegetable"), Seller: "Seed Masters"},
		{Name: "Garden Trowel", Description: "Stainless steel garden trowel, perfect for planting.", Price: 15.99, Category: "Tools", Stock: 15, Unit: "piece", Organic: false, Tags: tags("tools", "trowel"), Seller: "Garden Tools Inc"},
		{Name: "Pruning Shears", Description: "Bypass pruning shears for trimming herbs and small branches.", Price: 18.5, Category: "Tools", Stock: 20, Unit: "piece", Organic: false, Tags: tags("pruners", "tools"), Seller: "Garden Tools Inc"},
		{Name: "Metal Watering Can", Description: "Powder-coated watering can with a fine rose for gentle watering.", Price: 24.99, Category: "Tools", Stock: 12, Unit: "piece", Organic: false, Tags: tags("watering", "irrigation"), Seller: "Urban Garden Supply"},
		{Name: "Coco Coir Seed Trays", Description: "Biodegradable seed starting trays made from coco coir.", Price: 9.99, Category: "Tools", Stock: 30, Unit: "pack", Organic: true, Tags: tags("seed-starting", "eco"), Seller: "Eco Grow Co"},
		{Name: "Compost Starter Kit", Description: "Microbial starter mix to help jump-start your compost pile.", Price: 14.99, Category: "Other", Stock: 25, Unit: "pack", Organic: true, Tags: tags("compost", "sustainability"), Seller: "Green Cycle Co"},
		{Name: "Reusable Produce Bags", Description: "Set of 5 breathable mesh bags for plastic-free shopping.", Price: 10.99, Category: "Other", Stock: 40, Unit: "pack", Organic: false, Tags: tags("zero-waste", "bags"), Seller: "Eco Market"},
		{Name: "Soil Test Kit", Description: "Home soil testing kit to measure pH and key nutrients.", Price: 19.99, Category: "Other", Stock: 18, Unit: "pack", Organic: false, Tags: tags("soil", "testing"), Seller: "Urban Garden Supply"},
		{Name: "Rain Barrel Diverter", Description: "Downspout diverter to direct rainwater into your barrel.", Price: 29.99, Category: "Other", Stock: 10, Unit: "piece", Organic: false, Tags: tags("rainwater", "harvesting"), Seller: "Water Wise Co"},
	}
}

func demoEvents() []models.Event {
	return []models.Event{
		{
			Title:       "Spring Harvest Festival",
			Description: "Join us for a celebration of the spring harvest with local vendors, food, and live music!",
			Date:        time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC),
			EndDate:     ptrTime(time.Date(2024, 4, 10, 18, 0, 0, 0, time.UTC)),
			Location:    "City Park, 100 Central Ave",
			CoordLat:    ptrFloat(40.7614),
			CoordLng:    ptrFloat(-73.9776),
			Price:       0,
			Capacity:    ptrInt(500),
			Category:    "Harvest Festival",
			Tags:        tags("festival", "community"),
			Organizer:   "Urban Harvest Community",
		},
		{
			Title:       "Weekly Farmers Market",
			Description: "Fresh produce, local vendors, and community connection every Saturday morning.",
			Date:        time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC),
			EndDate:     ptrTime(time.Date(2024, 3, 16, 13, 0, 0, 0, time.UTC)),
			Location:    "Market Square, 200 Commerce St",
			CoordLat:    ptrFloat(40.7282),
			CoordLng:    ptrFloat(-73.9942),
			Price:       0,
			Category:    "Farmers Market",
			Tags:        tags("market", "weekly"),
			Organizer:   "Local Farmers Association",
		},
	}
}

// SeedHandler loads the demo catalog and a default admin account. It
// only runs against an empty catalog so a stray request cannot wipe
// production rows.
func SeedHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productCount int64
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to seed database")
			return
		}
		if productCount > 0 {
			utils.Error(c, http.StatusConflict, "Database already contains data. Seed skipped.")
			return
		}

		workshops := demoWorkshops()
		products := demoProducts()
		events := demoEvents()

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&workshops).Error; err != nil {
				return err
			}
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
			if err := tx.Create(&events).Error; err != nil {
				return err
			}

			var admin models.Admin
			err := tx.First(&admin, "email = ?", "admin@urbanharvesthub.com").Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				admin = models.Admin{
					Email:    "admin@urbanharvesthub.com",
					Password: "Admin123!",
					Name:     "Admin",
				}
				return tx.Create(&admin).Error
			}
			return err
		})
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to seed database")
			return
		}

		utils.SuccessMessage(c, http.StatusCreated, "Seed data created successfully", gin.H{
			"workshops": len(workshops),
			"products":  len(products),
			"events":    len(events),
		})
	}
}
