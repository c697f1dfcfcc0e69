package catalog

var popularIndianDishes = []Dish{
	{
		ID:       "local-butter-chicken",
		Name:     "Butter Chicken",
		Keywords: []string{"murgh makhani", "makhani chicken", "chicken makhani"},
		Category: "Chicken",
		Area:     "Indian",
		Instructions: "Marinate chicken pieces in yogurt, ginger-garlic paste, chilli powder and salt for at least an hour. " +
			"Grill or pan-sear until charred at the edges. In a separate pan melt butter, add pureed tomatoes, " +
			"kasuri methi, garam masala and a little sugar, and simmer for 15 minutes. Stir in cream, add the chicken " +
			"and simmer for 5 more minutes. Serve with naan or rice.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/wyxwsp1486979827.jpg",
	},
	{
		ID:       "local-chicken-biryani",
		Name:     "Chicken Biryani",
		Keywords: []string{"biryani", "biriyani", "dum biryani"},
		Category: "Chicken",
		Area:     "Indian",
		Instructions: "Marinate chicken with yogurt, biryani masala, fried onions, mint and coriander. Parboil soaked basmati " +
			"rice with whole spices. Layer the chicken and rice in a heavy pot, top with saffron milk, ghee and more fried " +
			"onions. Seal the lid and cook on low heat (dum) for 25 minutes. Rest 10 minutes before serving.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/xrttsx1487339558.jpg",
	},
	{
		ID:       "local-masala-dosa",
		Name:     "Masala Dosa",
		Keywords: []string{"dosa", "dosai"},
		Category: "Vegetarian",
		Area:     "Indian",
		Instructions: "Soak rice and urad dal separately, grind into a smooth batter and ferment overnight. For the filling, " +
			"temper mustard seeds, curry leaves and onions, then add boiled potatoes, turmeric and salt. Spread a ladle of " +
			"batter thinly on a hot griddle, drizzle oil, cook until crisp, fill with potato masala and fold.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/1550441275.jpg",
	},
	{
		ID:       "local-paneer-tikka",
		Name:     "Paneer Tikka",
		Keywords: []string{"tikka paneer"},
		Category: "Vegetarian",
		Area:     "Indian",
		Instructions: "Cube paneer, capsicum and onion. Marinate in hung curd, tikka masala, mustard oil, lemon juice and salt " +
			"for 30 minutes. Thread onto skewers and grill or bake at 220C for 12-15 minutes, turning once. Finish with " +
			"chaat masala and serve with mint chutney.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/9h66e01587327283.jpg",
	},
	{
		ID:       "local-palak-paneer",
		Name:     "Palak Paneer",
		Keywords: []string{"saag paneer", "spinach paneer"},
		Category: "Vegetarian",
		Area:     "Indian",
		Instructions: "Blanch spinach and blend to a smooth puree. Saute cumin, onions, ginger, garlic and green chillies in " +
			"ghee, add tomatoes and spices, then the spinach puree. Simmer 5 minutes, add paneer cubes and a splash of " +
			"cream, and cook 2 more minutes.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/yypwwq1511304979.jpg",
	},
	{
		ID:       "local-chole-bhature",
		Name:     "Chole Bhature",
		Keywords: []string{"chole", "chana masala", "bhature"},
		Category: "Vegetarian",
		Area:     "Indian",
		Instructions: "Pressure cook soaked chickpeas with a tea bag for colour. Cook onions, tomatoes, ginger and chole masala " +
			"into a thick gravy, add the chickpeas and simmer 20 minutes. For bhature, knead maida with yogurt, a pinch of " +
			"baking soda and salt, rest 2 hours, roll out and deep fry until puffed.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/1529444113.jpg",
	},
	{
		ID:       "local-dal-makhani",
		Name:     "Dal Makhani",
		Keywords: []string{"maa ki dal", "black dal"},
		Category: "Vegetarian",
		Area:     "Indian",
		Instructions: "Soak whole urad dal and rajma overnight and pressure cook until very soft. Cook tomato puree, " +
			"ginger-garlic paste and chilli powder in butter, add the lentils and simmer on low heat for at least an hour, " +
			"mashing lightly. Finish with cream and butter.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/wuxrtu1483564410.jpg",
	},
	{
		ID:       "local-rogan-josh",
		Name:     "Rogan Josh",
		Keywords: []string{"lamb rogan josh", "mutton rogan josh"},
		Category: "Lamb",
		Area:     "Indian",
		Instructions: "Brown lamb pieces in mustard oil with whole spices. Add Kashmiri chilli, fennel and dry ginger powder " +
			"mixed with yogurt, stirring constantly. Add water, cover and simmer for 1.5 hours until tender. Garnish with " +
			"garam masala.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/vvstvq1487342592.jpg",
	},
	{
		ID:       "local-pav-bhaji",
		Name:     "Pav Bhaji",
		Keywords: []string{"bhaji pav"},
		Category: "Vegetarian",
		Area:     "Indian",
		Instructions: "Boil potatoes, cauliflower, peas and carrots and mash. Cook onions, capsicum and tomatoes in plenty of " +
			"butter with pav bhaji masala, add the mashed vegetables and simmer, mashing until smooth. Toast buttered pav " +
			"buns on the griddle and serve with chopped onion and lemon.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/1550440197.jpg",
	},
	{
		ID:       "local-gulab-jamun",
		Name:     "Gulab Jamun",
		Keywords: []string{"gulab jamoon"},
		Category: "Dessert",
		Area:     "Indian",
		Instructions: "Knead khoya with a little maida and baking soda into a soft dough and roll into smooth balls. Fry on " +
			"low heat in ghee until deep golden. Soak in warm sugar syrup flavoured with cardamom and rose water for at " +
			"least 2 hours.",
		Thumbnail: "https://www.themealdb.com/images/media/meals/twspvx1511784937.jpg",
	},
}
