package seed

import (
	"github.com/shopspring/decimal"

	"github.com/tair/virtual-tryon/internal/catalog/domain"
)

// Categories is the fixed category set, in creation order
var Categories = []string{"Running", "Casual", "Sport", "Hiking", "Fashion"}

// ProductSpec describes one seeded product. Category refers to a category by
// name; ids are assigned by the store at seeding time.
type ProductSpec struct {
	Name        string
	Price       string
	Description string
	Rating      string
	Category    string
	Image       string
	Model       string
}

const imageBase = "https://images.unsplash.com/"
const imageQuery = "?ixlib=rb-1.2.1&auto=format&fit=crop&w=1200&q=80"

// Products is the in-code catalog dataset
var Products = []ProductSpec{
	{Name: "Air Cloud Runner", Price: "129.99", Description: "Lightweight running shoes with cloud-like comfort", Rating: "4.8", Category: "Running", Image: "photo-1595950653106-6c9ebd614d3a", Model: "/models/air_cloud_runner.glb"},
	{Name: "Urban Street Pro", Price: "89.99", Description: "Stylish casual shoes for everyday wear", Rating: "4.6", Category: "Casual", Image: "photo-1584735175315-9d5df23be610", Model: "/models/urban_street_pro.glb"},
	{Name: "Flex Runner 2.0", Price: "149.99", Description: "High-performance running shoes with flex technology", Rating: "4.9", Category: "Running", Image: "photo-1606107557195-0e29a4b5b4aa", Model: "/models/flex_runner.glb"},
	{Name: "Trail Blazer", Price: "159.99", Description: "Durable hiking shoes for rough terrain", Rating: "4.7", Category: "Hiking", Image: "photo-1608231387042-66d1773070a5", Model: "/models/trail_blazer.glb"},
	{Name: "Sport Max", Price: "119.99", Description: "Multi-purpose sports shoes with extra grip", Rating: "4.5", Category: "Sport", Image: "photo-1542291026-7eec264c27ff", Model: "/models/sport_max.glb"},
	{Name: "City Walker", Price: "99.99", Description: "Comfortable casual shoes for city exploration", Rating: "4.4", Category: "Casual", Image: "photo-1525966222134-fcfa99b8ae77", Model: "/models/city_walker.glb"},
	{Name: "Velocity X", Price: "159.99", Description: "Premium running shoes with enhanced speed design", Rating: "4.7", Category: "Running", Image: "photo-1539185441755-769473a23570", Model: "/models/velocity_x.glb"},
	{Name: "Summit Pro", Price: "179.99", Description: "Advanced hiking shoes for serious mountain trails", Rating: "4.9", Category: "Hiking", Image: "photo-1553545985-1e0d8781d5db", Model: "/models/summit_pro.glb"},
	{Name: "Urban Chic", Price: "129.99", Description: "Trendy fashion sneakers for style-conscious individuals", Rating: "4.6", Category: "Fashion", Image: "photo-1551107696-a4b0c5a0d9a2", Model: "/models/urban_chic.glb"},
	{Name: "Retro Classic", Price: "99.99", Description: "Vintage-inspired casual shoes with modern comfort", Rating: "4.5", Category: "Casual", Image: "photo-1600269452121-4f2416e55c28", Model: "/models/retro_classic.glb"},
	{Name: "Bounce Elite", Price: "149.99", Description: "Basketball shoes with superior cushioning and ankle support", Rating: "4.8", Category: "Sport", Image: "photo-1579338559194-a162d19bf842", Model: "/models/bounce_elite.glb"},
	{Name: "Street Flow", Price: "119.99", Description: "Sleek and stylish urban sneakers for everyday wear", Rating: "4.4", Category: "Fashion", Image: "photo-1560769629-975ec94e6a86", Model: "/models/street_flow.glb"},
	{Name: "Alpine Trek", Price: "189.99", Description: "Waterproof hiking boots for extreme conditions", Rating: "4.9", Category: "Hiking", Image: "photo-1606890658317-7d14490b76fd", Model: "/models/alpine_trek.glb"},
	{Name: "Marathon Pro", Price: "169.99", Description: "Long-distance running shoes with enhanced durability", Rating: "4.8", Category: "Running", Image: "photo-1515955656352-a1fa3ffcd111", Model: "/models/marathon_pro.glb"},
}

// ImageURL returns the absolute product image URL
func (s ProductSpec) ImageURL() string {
	return imageBase + s.Image + imageQuery
}

// Product builds the domain record for a resolved category id
func (s ProductSpec) Product(categoryID uint) domain.Product {
	return domain.Product{
		Name:        s.Name,
		Price:       decimal.RequireFromString(s.Price),
		Description: s.Description,
		Rating:      decimal.RequireFromString(s.Rating),
		CategoryID:  categoryID,
		ImageURL:    s.ImageURL(),
		ModelURL:    s.Model,
	}
}

// Source provides the seed dataset to the catalog
type Source interface {
	Categories() []string
	Products() []ProductSpec
}

// Static serves the in-code dataset
type Static struct{}

func (Static) Categories() []string    { return Categories }
func (Static) Products() []ProductSpec { return Products }
