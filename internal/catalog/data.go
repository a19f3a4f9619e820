package catalog

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fptr(v float64) *float64 {
	return &v
}

// Categoriesはサンプルのカテゴリ6件。
func Categories() []model.Category {
	return []model.Category{
		{
			ID:          "lumber",
			Name:        "Lumber & Building Materials",
			Description: "Quality lumber, boards, and structural materials",
			ImageURL:    "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400&h=300&fit=crop",
			Slug:        "lumber",
		},
		{
			ID:          "tools",
			Name:        "Tools & Equipment",
			Description: "Power tools, hand tools, and equipment",
			ImageURL:    "https://images.unsplash.com/photo-1581092795442-48544a65e3d1?w=400&h=300&fit=crop",
			Slug:        "tools",
		},
		{
			ID:          "hardware",
			Name:        "Hardware & Fasteners",
			Description: "Screws, bolts, nails, and hardware accessories",
			ImageURL:    "https://images.unsplash.com/photo-1609205096401-2ee8b8caa1e9?w=400&h=300&fit=crop",
			Slug:        "hardware",
		},
		{
			ID:          "electrical",
			Name:        "Electrical Supplies",
			Description: "Wire, outlets, switches, and electrical components",
			ImageURL:    "https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=400&h=300&fit=crop",
			Slug:        "electrical",
		},
		{
			ID:          "plumbing",
			Name:        "Plumbing",
			Description: "Pipes, fittings, fixtures, and plumbing supplies",
			ImageURL:    "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
			Slug:        "plumbing",
		},
		{
			ID:          "concrete",
			Name:        "Concrete & Masonry",
			Description: "Cement, concrete mix, blocks, and masonry supplies",
			ImageURL:    "https://images.unsplash.com/photo-1541888946425-d81bb19240f5?w=400&h=300&fit=crop",
			Slug:        "concrete",
		},
	}
}

// Productsはサンプルの商品8件。
func Products() []model.Product {
	return []model.Product{
		{
			ID:          "lumber-001",
			Name:        "2x4x8 Pressure Treated Lumber",
			Description: "High-quality pressure treated lumber perfect for outdoor construction projects. Resistant to rot, decay, and insects.",
			Price:       price("8.97"),
			CategoryID:  "lumber",
			Category:    "Lumber & Building Materials",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
				"https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 250,
			Specifications: map[string]string{
				"Dimensions":       `2" x 4" x 8'`,
				"Material":         "Southern Yellow Pine",
				"Treatment":        "Pressure Treated",
				"Grade":            "Ground Contact",
				"Moisture Content": "19% or less",
			},
			Weight:     fptr(12.5),
			Dimensions: &model.Dimensions{Length: 96, Width: 3.5, Height: 1.5},
			Brand:      "ProBuild",
			SKU:        "LUM-PT-2X4X8",
			Tags:       []string{"lumber", "treated", "outdoor", "construction"},
		},
		{
			ID:          "lumber-002",
			Name:        `1/2" x 4' x 8' Plywood Sheathing`,
			Description: "CDX plywood sheathing for subflooring, roof decking, and wall sheathing applications.",
			Price:       price("45.98"),
			CategoryID:  "lumber",
			Category:    "Lumber & Building Materials",
			ImageURL:    "https://images.unsplash.com/photo-1609205096391-6b6b7a6e5a0e?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1609205096391-6b6b7a6e5a0e?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 85,
			Specifications: map[string]string{
				"Thickness":  "1/2 inch",
				"Dimensions": "4' x 8'",
				"Grade":      "CDX",
				"Core":       "Veneer",
				"Glue Type":  "Exterior",
			},
			Weight:     fptr(46),
			Dimensions: &model.Dimensions{Length: 96, Width: 48, Height: 0.5},
			Brand:      "Georgia-Pacific",
			SKU:        "PLY-CDX-48X96X05",
			Tags:       []string{"plywood", "sheathing", "construction", "subflooring"},
		},
		{
			ID:          "tool-001",
			Name:        "DEWALT 20V MAX Cordless Drill",
			Description: "High-performance cordless drill with LED light and 15 clutch settings for precise torque control.",
			Price:       price("129.99"),
			CategoryID:  "tools",
			Category:    "Tools & Equipment",
			ImageURL:    "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1572981779307-38b8cabb2407?w=400&h=400&fit=crop",
				"https://images.unsplash.com/photo-1581092795442-48544a65e3d1?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 45,
			Specifications: map[string]string{
				"Voltage":    "20V MAX",
				"Chuck Size": "1/2 inch",
				"Max Torque": "300 UWO",
				"Speed":      "0-450/0-1,650 RPM",
				"Battery":    "Lithium Ion",
				"LED Light":  "Yes",
			},
			Weight: fptr(3.6),
			Brand:  "DEWALT",
			SKU:    "DCD771C2",
			Tags:   []string{"cordless", "drill", "power tool", "dewalt", "battery"},
		},
		{
			ID:          "tool-002",
			Name:        "Estwing Framing Hammer",
			Description: "Professional grade 22 oz framing hammer with shock reduction grip and milled face.",
			Price:       price("47.99"),
			CategoryID:  "tools",
			Category:    "Tools & Equipment",
			ImageURL:    "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 78,
			Specifications: map[string]string{
				"Weight": "22 oz",
				"Handle": "Shock Reduction Grip",
				"Face":   "Milled",
				"Claw":   "Straight",
				"Length": "13 inches",
			},
			Weight: fptr(1.4),
			Brand:  "Estwing",
			SKU:    "E3-22S",
			Tags:   []string{"hammer", "framing", "hand tool", "estwing"},
		},
		{
			ID:          "hardware-001",
			Name:        `3" Wood Screws (1 lb box)`,
			Description: "Premium quality wood screws with deep threads for superior holding power. Phillips drive head.",
			Price:       price("12.45"),
			CategoryID:  "hardware",
			Category:    "Hardware & Fasteners",
			ImageURL:    "https://images.unsplash.com/photo-1609205096401-2ee8b8caa1e9?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1609205096401-2ee8b8caa1e9?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 120,
			Specifications: map[string]string{
				"Length":     "3 inches",
				"Drive Type": "Phillips",
				"Thread":     "Deep Wood Thread",
				"Finish":     "Yellow Zinc",
				"Quantity":   "Approximately 45 screws",
			},
			Weight: fptr(1),
			Brand:  "FastenMaster",
			SKU:    "WS-3-1LB",
			Tags:   []string{"screws", "wood", "fasteners", "construction"},
		},
		{
			ID:          "electrical-001",
			Name:        "12 AWG Romex Wire (250 ft)",
			Description: "Non-metallic sheathed cable for residential wiring. 12 AWG with ground, suitable for 20-amp circuits.",
			Price:       price("89.99"),
			CategoryID:  "electrical",
			Category:    "Electrical Supplies",
			ImageURL:    "https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 32,
			Specifications: map[string]string{
				"Wire Gauge":         "12 AWG",
				"Conductors":         "2 with Ground",
				"Length":             "250 feet",
				"Jacket":             "PVC",
				"Temperature Rating": "90°C",
				"Voltage":            "600V",
			},
			Weight: fptr(35),
			Brand:  "Southwire",
			SKU:    "ROMEX-12-2WG-250",
			Tags:   []string{"wire", "electrical", "romex", "cable"},
		},
		{
			ID:          "plumbing-001",
			Name:        `1/2" Copper Pipe (10 ft)`,
			Description: "Type L copper tubing for potable water systems. Durable and corrosion resistant.",
			Price:       price("24.95"),
			CategoryID:  "plumbing",
			Category:    "Plumbing",
			ImageURL:    "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 95,
			Specifications: map[string]string{
				"Diameter":    "1/2 inch",
				"Type":        "Type L",
				"Length":      "10 feet",
				"Material":    "Copper",
				"Application": "Potable Water",
			},
			Weight: fptr(2.1),
			Brand:  "Mueller",
			SKU:    "CU-L-05-10",
			Tags:   []string{"copper", "pipe", "plumbing", "water"},
		},
		{
			ID:          "concrete-001",
			Name:        "Quikrete Concrete Mix (80 lb)",
			Description: "Premium concrete mix for setting fence posts, footings, and other general concrete applications.",
			Price:       price("4.98"),
			CategoryID:  "concrete",
			Category:    "Concrete & Masonry",
			ImageURL:    "https://images.unsplash.com/photo-1541888946425-d81bb19240f5?w=400&h=400&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1541888946425-d81bb19240f5?w=400&h=400&fit=crop",
			},
			InStock:       true,
			StockQuantity: 200,
			Specifications: map[string]string{
				"Weight":               "80 pounds",
				"Coverage":             "0.6 cubic feet",
				"Compressive Strength": "4000 PSI",
				"Set Time":             "20-40 minutes",
				"Full Cure":            "28 days",
			},
			Weight: fptr(80),
			Brand:  "Quikrete",
			SKU:    "QC-110180",
			Tags:   []string{"concrete", "mix", "cement", "foundation"},
		},
	}
}
