package catalog

import "techstore-service/internal/domain"

// seedProducts returns the fixed demo dataset. A fresh slice is returned on
// every call so two Catalogs never alias the same backing array.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Price:       999,
			Image:       "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?w=400&q=80",
			Description: "A17 Pro chip, 256GB storage, titanium design",
			Category:    "smartphones",
			Rating:      4.5,
			Features:    []string{"A17 Pro Chip", "256GB Storage", "Titanium Design", "48MP Camera"},
		},
		{
			ID:          "2",
			Name:        "MacBook Air Pro",
			Price:       1299,
			Image:       "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400&q=80",
			Description: "M2 chip, 13.6\" Retina display, 8GB RAM, 512GB SSD",
			Category:    "laptops",
			Rating:      4.8,
			Features:    []string{"M2 Chip", "Retina Display", "18h Battery", "Touch ID"},
		},
		{
			ID:          "3",
			Name:        "AirPods Pro",
			Price:       249,
			Image:       "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=400&q=80",
			Description: "Active noise cancellation, up to 30 hours battery life",
			Category:    "audio",
			Rating:      4.3,
			Features:    []string{"Noise Cancellation", "30h Battery", "Water Resistant"},
		},
		{
			ID:          "4",
			Name:        "iPad Pro",
			Price:       1099,
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400&q=80",
			Description: "12.9\" Liquid Retina XDR display, M2 chip",
			Category:    "tablets",
			Rating:      4.7,
			Features:    []string{"M2 Chip", "12.9\" Display", "Face ID", "5G Support"},
		},
		{
			ID:          "5",
			Name:        "Apple Watch Series 9",
			Price:       399,
			Image:       "https://images.unsplash.com/photo-1551816230-ef5deaed4a26?w=400&q=80",
			Description: "Smartwatch with ECG functionality and GPS",
			Category:    "wearables",
			Rating:      4.6,
			Features:    []string{"ECG", "GPS", "Waterproof", "Retina Display"},
		},
		{
			ID:          "6",
			Name:        "Samsung Galaxy S24",
			Price:       799,
			Image:       "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&q=80",
			Description: "Flagship smartphone with 108MP camera",
			Category:    "smartphones",
			Rating:      4.4,
			Features:    []string{"108MP Camera", "5G", "120Hz Display", "Snapdragon 8"},
		},
		{
			ID:          "7",
			Name:        "Sony WH-1000XM5",
			Price:       349,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&q=80",
			Description: "Industry-leading noise canceling headphones",
			Category:    "audio",
			Rating:      4.7,
			Features:    []string{"Noise Canceling", "30h Battery", "Touch Controls", "Hi-Fi Audio"},
		},
		{
			ID:          "8",
			Name:        "Dell XPS 13",
			Price:       1199,
			Image:       "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?w=400&q=80",
			Description: "13.4\" FHD+ InfinityEdge touch display, Intel Core i7",
			Category:    "laptops",
			Rating:      4.5,
			Features:    []string{"Intel i7", "16GB RAM", "512GB SSD", "InfinityEdge Display"},
		},
		{
			ID:          "9",
			Name:        "Samsung Galaxy Tab S9",
			Price:       849,
			Image:       "https://images.unsplash.com/photo-1542751110-97427bbecf20?w=400&q=80",
			Description: "11\" AMOLED display, S Pen included, Snapdragon 8 Gen 2",
			Category:    "tablets",
			Rating:      4.4,
			Features:    []string{"AMOLED Display", "S Pen", "Snapdragon 8", "5G Support"},
		},
		{
			ID:          "10",
			Name:        "Google Pixel 8 Pro",
			Price:       899,
			Image:       "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=400&q=80",
			Description: "Advanced AI camera system, Tensor G3 processor",
			Category:    "smartphones",
			Rating:      4.3,
			Features:    []string{"Tensor G3", "AI Camera", "120Hz Display", "7 Years Updates"},
		},
		{
			ID:          "11",
			Name:        "Bose QuietComfort 45",
			Price:       329,
			Image:       "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&q=80",
			Description: "World-class noise cancellation and balanced audio",
			Category:    "audio",
			Rating:      4.5,
			Features:    []string{"Noise Cancellation", "24h Battery", "Comfortable Fit", "Voice Assistants"},
		},
		{
			ID:          "12",
			Name:        "HP Spectre x360",
			Price:       1349,
			Image:       "https://images.unsplash.com/photo-1587614382346-4ec70e388b28?w=400&q=80",
			Description: "14\" 2-in-1 laptop with OLED display, Intel Evo platform",
			Category:    "laptops",
			Rating:      4.6,
			Features:    []string{"2-in-1 Design", "OLED Display", "Intel Evo", "16GB RAM"},
		},
		{
			ID:          "13",
			Name:        "OnePlus 12",
			Price:       699,
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&q=80",
			Description: "Flagship killer with Hasselblad camera and fast charging",
			Category:    "smartphones",
			Rating:      4.2,
			Features:    []string{"Hasselblad Camera", "80W Charging", "120Hz Display", "Snapdragon 8"},
		},
		{
			ID:          "14",
			Name:        "Microsoft Surface Pro 9",
			Price:       999,
			Image:       "https://images.unsplash.com/photo-1561154464-82e9adf32764?w=400&q=80",
			Description: "Versatile 2-in-1 laptop and tablet with PixelSense display",
			Category:    "tablets",
			Rating:      4.4,
			Features:    []string{"2-in-1 Design", "PixelSense Display", "Intel i5", "Surface Pen"},
		},
		{
			ID:          "15",
			Name:        "Fitbit Charge 6",
			Price:       159,
			Image:       "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=400&q=80",
			Description: "Advanced fitness tracker with GPS and heart rate monitoring",
			Category:    "wearables",
			Rating:      4.1,
			Features:    []string{"GPS", "Heart Rate Monitor", "7 Days Battery", "Sleep Tracking"},
		},
		{
			ID:          "16",
			Name:        "Lenovo ThinkPad X1",
			Price:       1499,
			Image:       "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400&q=80",
			Description: "Business laptop with military-grade durability",
			Category:    "laptops",
			Rating:      4.7,
			Features:    []string{"Military Grade", "Intel i7", "32GB RAM", "1TB SSD"},
		},
		{
			ID:          "17",
			Name:        "JBL Flip 6",
			Price:       129,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&q=80",
			Description: "Portable Bluetooth speaker with powerful sound",
			Category:    "audio",
			Rating:      4.3,
			Features:    []string{"Waterproof", "12h Battery", "PartyBoost", "Rich Bass"},
		},
		{
			ID:          "18",
			Name:        "Garmin Forerunner 265",
			Price:       449,
			Image:       "https://images.unsplash.com/photo-1544117519-31a4b719223d?w=400&q=80",
			Description: "Advanced running watch with training metrics",
			Category:    "wearables",
			Rating:      4.6,
			Features:    []string{"Running Metrics", "GPS", "7 Days Battery", "Music Storage"},
		},
		{
			ID:          "19",
			Name:        "Asus ROG Zephyrus",
			Price:       1799,
			Image:       "https://images.unsplash.com/photo-1593640408182-31c70c8268f5?w=400&q=80",
			Description: "Gaming laptop with RTX 4070 and high refresh rate display",
			Category:    "laptops",
			Rating:      4.8,
			Features:    []string{"RTX 4070", "240Hz Display", "AMD Ryzen 9", "RGB Keyboard"},
		},
		{
			ID:          "20",
			Name:        "Xiaomi Pad 6",
			Price:       399,
			Image:       "https://images.unsplash.com/photo-1561154464-82e9adf32764?w=400&q=80",
			Description: "11\" 2.8K display with Snapdragon 870 and Dolby Vision",
			Category:    "tablets",
			Rating:      4.2,
			Features:    []string{"2.8K Display", "Snapdragon 870", "Dolby Vision", "33W Fast Charge"},
		},
	}
}

// seedCategories returns the declared category list. Every seed product's
// Category value matches one of these slugs, which keeps category counts
// consistent with category filters.
func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Smartphones", Slug: "smartphones"},
		{ID: "2", Name: "Laptops", Slug: "laptops"},
		{ID: "3", Name: "Tablets", Slug: "tablets"},
		{ID: "4", Name: "Audio", Slug: "audio"},
		{ID: "5", Name: "Wearables", Slug: "wearables"},
	}
}
