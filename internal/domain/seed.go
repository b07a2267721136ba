package domain

// Seed catalog. Both backends bootstrap from these fixed rows: the memory
// store at construction, the relational store once when the category table
// is empty.

func SeedCategories() []Category {
	return []Category{
		{ID: "tequila", Name: "Tequila", Description: "Authentic Mexican tequilas and cream liqueurs"},
		{ID: "whiskey", Name: "Whiskey", Description: "Premium scotch, bourbon, and blends"},
		{ID: "wine", Name: "Wine", Description: "Red, white, and sparkling wines"},
		{ID: "local", Name: "Local Brands", Description: "Proudly Philippine made favorites"},
	}
}

func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Tequila Rose",
			CategoryID:  "tequila",
			Description: "Strawberry cream liqueur with a splash of tequila.",
			Price:       899.00,
			Volume:      "750ml",
			ABV:         15,
			ImageURL:    "/products/tequila-rose.jpg",
			Tags:        StringList{"cream", "sweet", "pink"},
			IsFeatured:  true,
			Stock:       50,
		},
		{
			ID:          "2",
			Name:        "Cazadores Reposado",
			CategoryID:  "tequila",
			Description: "Original tequila made with 100% Blue Agave, aged in new oak barrels.",
			Price:       1100.00,
			Volume:      "750ml",
			ABV:         40,
			ImageURL:    "/products/cazadores-reposado.jpg",
			Tags:        StringList{"reposado", "100% agave", "smooth"},
			IsFeatured:  false,
			Stock:       30,
		},
		{
			ID:          "3",
			Name:        "Jose Cuervo Gold",
			CategoryID:  "tequila",
			Description: "Golden-style joven tequila made from a blend of reposado and younger tequilas.",
			Price:       1099.00,
			Volume:      "700ml",
			ABV:         40,
			ImageURL:    "/products/jose-cuervo.jpg",
			Tags:        StringList{"gold", "classic", "mixer"},
			IsFeatured:  false,
			Stock:       100,
		},
		{
			ID:          "4",
			Name:        "Jose Cuervo Especial Silver",
			CategoryID:  "tequila",
			Description: "Silver tequila specially crafted for smoothness.",
			Price:       899.00,
			Volume:      "700ml",
			ABV:         40,
			ImageURL:    "/products/jose-cuervo-blue.jpg",
			Tags:        StringList{"silver", "clear", "smooth"},
			IsFeatured:  false,
			Stock:       60,
		},
		{
			ID:          "5",
			Name:        "Johnnie Walker Black Label",
			CategoryID:  "whiskey",
			Description: "Iconic blend of whiskies aged for a minimum of 12 years.",
			Price:       1150.00,
			Volume:      "700ml",
			ABV:         40,
			ImageURL:    "/products/jw-black.jpg",
			Tags:        StringList{"scotch", "blended", "12 year"},
			IsFeatured:  true,
			Stock:       80,
		},
		{
			ID:          "6",
			Name:        "Jack Daniel's Old No. 7",
			CategoryID:  "whiskey",
			Description: "Tennessee sour mash whiskey, charcoal mellowed for smoothness.",
			Price:       1299.00,
			Volume:      "700ml",
			ABV:         40,
			ImageURL:    "/products/jack-daniels.jpg",
			Tags:        StringList{"tennessee", "bourbon", "classic"},
			IsFeatured:  true,
			Stock:       90,
		},
		{
			ID:          "7",
			Name:        "Johnnie Walker Blue Label",
			CategoryID:  "whiskey",
			Description: "An exquisite blend of Scotland's rarest and most exceptional whiskies.",
			Price:       6299.00,
			Volume:      "750ml",
			ABV:         40,
			ImageURL:    "/products/jw-blue.jpg",
			Tags:        StringList{"luxury", "rare", "gift"},
			IsFeatured:  true,
			Stock:       10,
		},
		{
			ID:          "8",
			Name:        "Glenfiddich 12 Year",
			CategoryID:  "whiskey",
			Description: "The world's most awarded single malt Scotch whisky.",
			Price:       2299.00,
			Volume:      "700ml",
			ABV:         40,
			ImageURL:    "/products/glenfiddich.jpg",
			Tags:        StringList{"single malt", "scotch", "aged"},
			IsFeatured:  false,
			Stock:       25,
		},
		{
			ID:          "9",
			Name:        "Carlo Rossi California Red",
			CategoryID:  "wine",
			Description: "A rich, fruit-forward red wine with flavors of raspberry and cherry.",
			Price:       349.00,
			Volume:      "750ml",
			ABV:         11.5,
			ImageURL:    "/products/carlo-rossi-red.jpg",
			Tags:        StringList{"red wine", "california", "table wine"},
			IsFeatured:  false,
			Stock:       100,
		},
		{
			ID:          "10",
			Name:        "Carlo Rossi Sangria",
			CategoryID:  "wine",
			Description: "Sweet and refreshing wine with citrus fruit flavors.",
			Price:       349.00,
			Volume:      "750ml",
			ABV:         10,
			ImageURL:    "/products/carlo-rossi-sangria.jpg",
			Tags:        StringList{"sweet", "sangria", "fruity"},
			IsFeatured:  false,
			Stock:       100,
		},
		{
			ID:          "11",
			Name:        "Lindeman's Cawarra Chardonnay",
			CategoryID:  "wine",
			Description: "Medium-bodied white wine with stone fruit flavors and a creamy finish.",
			Price:       449.00,
			Volume:      "750ml",
			ABV:         13.5,
			ImageURL:    "/products/lindemans-chardonnay.jpg",
			Tags:        StringList{"white wine", "dry", "australian"},
			IsFeatured:  false,
			Stock:       40,
		},
		{
			ID:          "12",
			Name:        "Santa Carolina Premio Red",
			CategoryID:  "wine",
			Description: "A classic Chilean red blend perfect for everyday dining.",
			Price:       429.00,
			Volume:      "750ml",
			ABV:         12,
			ImageURL:    "/products/vsc-premio.jpg",
			Tags:        StringList{"red wine", "value", "dinner"},
			IsFeatured:  false,
			Stock:       60,
		},
		{
			ID:          "13",
			Name:        "Ginebra San Miguel Frasco",
			CategoryID:  "local",
			Description: "The world's largest selling gin. Distinct taste and strong kick.",
			Price:       140.00,
			Volume:      "700ml",
			ABV:         40,
			ImageURL:    "/products/ginebra-frasco.jpg",
			Tags:        StringList{"gin", "local", "strong"},
			IsFeatured:  false,
			Stock:       200,
		},
		{
			ID:          "14",
			Name:        "San Miguel Pale Pilsen",
			CategoryID:  "local",
			Description: "The original Philippine beer. Full-bodied with a pleasant bitterness.",
			Price:       120.00,
			Volume:      "320ml",
			ABV:         5,
			ImageURL:    "/products/pale-pilsen.jpg",
			Tags:        StringList{"beer", "classic", "local"},
			IsFeatured:  true,
			Stock:       200,
		},
		{
			ID:          "15",
			Name:        "Alfonso Light",
			CategoryID:  "local",
			Description: "A premium brandy liqueur that is easy to drink.",
			Price:       285.00,
			Volume:      "700ml",
			ABV:         25,
			ImageURL:    "/products/alfonso-light.jpg",
			Tags:        StringList{"brandy", "local", "light"},
			IsFeatured:  false,
			Stock:       150,
		},
		{
			ID:          "16",
			Name:        "Fundador Super Special",
			CategoryID:  "local",
			Description: "Distinctive spirit drink with a balanced aroma and smooth taste.",
			Price:       300.00,
			Volume:      "1L",
			ABV:         23.5,
			ImageURL:    "/products/fundador.jpg",
			Tags:        StringList{"brandy", "imported-local", "smooth"},
			IsFeatured:  false,
			Stock:       120,
		},
	}
}
