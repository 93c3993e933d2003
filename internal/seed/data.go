// internal/seed/data.go
package seed

// Catalog fixtures written by the seeder. Image URLs point at publicly hosted
// photos; the seeder re-uploads them into the configured GCS bucket so the
// app never depends on third-party hosting.

type CategorySeed struct {
	Name        string
	Description string
}

type CustomizationSeed struct {
	Name  string
	Price float64
	Type  string
}

type MenuItemSeed struct {
	Name           string
	Description    string
	ImageURL       string
	Price          float64
	Rating         float64
	Calories       int
	Protein        int
	CategoryName   string
	Customizations []string // customization names
}

var Categories = []CategorySeed{
	{Name: "Burgers", Description: "Flame-grilled classics and stacked specials"},
	{Name: "Pizzas", Description: "Stone-baked with house tomato sauce"},
	{Name: "Burritos", Description: "Rolled fresh with slow-cooked fillings"},
	{Name: "Sandwiches", Description: "Toasted on artisan bread"},
	{Name: "Wraps", Description: "Light, fresh and packed with flavor"},
	{Name: "Bowls", Description: "Grain and salad bowls with house dressings"},
}

var Customizations = []CustomizationSeed{
	{Name: "Extra Cheese", Price: 2.00, Type: "topping"},
	{Name: "Bacon", Price: 3.50, Type: "topping"},
	{Name: "Jalapenos", Price: 1.00, Type: "topping"},
	{Name: "Avocado", Price: 2.50, Type: "topping"},
	{Name: "Onions", Price: 0.50, Type: "topping"},
	{Name: "Mushrooms", Price: 1.50, Type: "topping"},
	{Name: "Fried Egg", Price: 1.75, Type: "topping"},
	{Name: "Fries", Price: 3.00, Type: "side"},
	{Name: "Onion Rings", Price: 3.50, Type: "side"},
	{Name: "Coleslaw", Price: 2.50, Type: "side"},
	{Name: "Garlic Dip", Price: 1.00, Type: "side"},
	{Name: "Iced Tea", Price: 2.75, Type: "side"},
}

var MenuItems = []MenuItemSeed{
	{
		Name:         "Classic Cheeseburger",
		Description:  "Beef patty, cheddar, lettuce, tomato and house sauce",
		ImageURL:     "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
		Price:        10.99,
		Rating:       4.5,
		Calories:     650,
		Protein:      34,
		CategoryName: "Burgers",
		Customizations: []string{
			"Extra Cheese", "Bacon", "Onions", "Fries",
		},
	},
	{
		Name:         "Smash Double",
		Description:  "Two smashed patties, american cheese, pickles",
		ImageURL:     "https://images.unsplash.com/photo-1603064752734-4c48eff53d05",
		Price:        13.49,
		Rating:       4.8,
		Calories:     890,
		Protein:      52,
		CategoryName: "Burgers",
		Customizations: []string{
			"Extra Cheese", "Bacon", "Jalapenos", "Fried Egg", "Onion Rings",
		},
	},
	{
		Name:         "Margherita Pizza",
		Description:  "San Marzano tomatoes, fior di latte, fresh basil",
		ImageURL:     "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
		Price:        12.50,
		Rating:       4.6,
		Calories:     780,
		Protein:      28,
		CategoryName: "Pizzas",
		Customizations: []string{
			"Extra Cheese", "Mushrooms", "Garlic Dip",
		},
	},
	{
		Name:         "Pepperoni Pizza",
		Description:  "Loaded pepperoni over a mozzarella blend",
		ImageURL:     "https://images.unsplash.com/photo-1628840042765-356cda07504e",
		Price:        15.50,
		Rating:       4.7,
		Calories:     920,
		Protein:      38,
		CategoryName: "Pizzas",
		Customizations: []string{
			"Extra Cheese", "Jalapenos", "Mushrooms", "Garlic Dip",
		},
	},
	{
		Name:         "Carnitas Burrito",
		Description:  "Slow-cooked pork, cilantro rice, black beans, salsa verde",
		ImageURL:     "https://images.unsplash.com/photo-1626700051175-6818013e1d4f",
		Price:        11.25,
		Rating:       4.4,
		Calories:     840,
		Protein:      41,
		CategoryName: "Burritos",
		Customizations: []string{
			"Avocado", "Jalapenos", "Extra Cheese", "Coleslaw",
		},
	},
	{
		Name:         "Veggie Burrito",
		Description:  "Grilled peppers, corn, pinto beans, chipotle crema",
		ImageURL:     "https://images.unsplash.com/photo-1566740933430-b5e70b06d2d5",
		Price:        9.75,
		Rating:       4.2,
		Calories:     690,
		Protein:      19,
		CategoryName: "Burritos",
		Customizations: []string{
			"Avocado", "Jalapenos", "Onions",
		},
	},
	{
		Name:         "Club Sandwich",
		Description:  "Roast chicken, bacon, egg and mayo on toasted sourdough",
		ImageURL:     "https://images.unsplash.com/photo-1528735602780-2552fd46c7af",
		Price:        10.50,
		Rating:       4.3,
		Calories:     720,
		Protein:      36,
		CategoryName: "Sandwiches",
		Customizations: []string{
			"Bacon", "Fried Egg", "Coleslaw", "Fries",
		},
	},
	{
		Name:         "Caprese Sandwich",
		Description:  "Mozzarella, tomato and basil pesto on ciabatta",
		ImageURL:     "https://images.unsplash.com/photo-1539252554453-80ab65ce3586",
		Price:        8.95,
		Rating:       4.1,
		Calories:     540,
		Protein:      22,
		CategoryName: "Sandwiches",
		Customizations: []string{
			"Extra Cheese", "Avocado",
		},
	},
	{
		Name:         "Chicken Caesar Wrap",
		Description:  "Grilled chicken, romaine, parmesan, caesar dressing",
		ImageURL:     "https://images.unsplash.com/photo-1626700051175-6818013e1d4f",
		Price:        9.25,
		Rating:       4.0,
		Calories:     580,
		Protein:      33,
		CategoryName: "Wraps",
		Customizations: []string{
			"Bacon", "Extra Cheese", "Iced Tea",
		},
	},
	{
		Name:         "Falafel Wrap",
		Description:  "Crispy falafel, hummus, pickled cabbage, tahini",
		ImageURL:     "https://images.unsplash.com/photo-1601050690597-df0568f70950",
		Price:        8.50,
		Rating:       4.4,
		Calories:     610,
		Protein:      21,
		CategoryName: "Wraps",
		Customizations: []string{
			"Avocado", "Jalapenos", "Coleslaw",
		},
	},
	{
		Name:         "Teriyaki Chicken Bowl",
		Description:  "Teriyaki-glazed chicken, jasmine rice, charred broccoli",
		ImageURL:     "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
		Price:        12.95,
		Rating:       4.6,
		Calories:     740,
		Protein:      44,
		CategoryName: "Bowls",
		Customizations: []string{
			"Fried Egg", "Avocado", "Iced Tea",
		},
	},
	{
		Name:         "Harvest Grain Bowl",
		Description:  "Quinoa, roasted squash, kale, goat cheese, lemon dressing",
		ImageURL:     "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
		Price:        11.50,
		Rating:       4.5,
		Calories:     620,
		Protein:      18,
		CategoryName: "Bowls",
		Customizations: []string{
			"Avocado", "Mushrooms",
		},
	},
}
