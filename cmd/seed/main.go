package main

import (
	"context"
	"log"

	"school-store/config"
	"school-store/models"
	"school-store/repositories"
)

var products = []models.Product{
	{
		Name: "Peanut Chiki", BasePrice: 9.00, Category: "chiki",
		Description: "Crunchy roasted peanuts bound with natural jaggery. A perfect energy booster.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_akp1e0akp1e0akp1.png",
		Nutrition:   []string{"Calories: 150 kcal", "Protein: 5g", "Iron: 10%"},
	},
	{
		Name: "Sesame Chiki", BasePrice: 9.00, Category: "chiki",
		Description: "Nutrition-packed sesame seeds with natural sweeteners. Good for immunity.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_x4u95dx4u95dx4u9.png",
		Nutrition:   []string{"Calories: 160 kcal", "Calcium: 15%", "Fiber: 3g"},
	},
	{
		Name: "Nutritius Crush", BasePrice: 9.00, Category: "chiki",
		Description: "Crushed peanut chikki, easy to eat and delicious for quick bites.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_odg9gbodg9gbodg9.png",
		Nutrition:   []string{"Protein: 4g", "Carbs: 12g"},
	},
	{
		Name: "Chocolate Smoodh", BasePrice: 9.00, Category: "smooth",
		Description: "Indulgent chocolate and milk blend. Rich, creamy, and satisfying.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_40bubd40bubd40bu.png",
		Nutrition:   []string{"Calcium: 25%", "Vitamin D: 10%"},
	},
	{
		Name: "Hazelnut Smoodh", BasePrice: 9.00, Category: "smooth",
		Description: "Delightful blend of hazelnut and chocolate. A premium treat.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_p3vc40p3vc40p3vc.png",
		Nutrition:   []string{"Vitamin E: 10%", "Energy: 180kcal"},
	},
	{
		Name: "Coffee Frappe", BasePrice: 9.00, Category: "smooth",
		Description: "Refreshing blend of coffee and milk to keep you alert.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_y4dlpqy4dlpqy4dl.png",
		Nutrition:   []string{"Caffeine: 80mg", "Calcium: 20%"},
	},
	{
		Name: "Badam Milk", BasePrice: 9.00, Category: "milk",
		Description: "Rich almond milk, dairy-free alternative loaded with nuts.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_gu6iu6gu6iu6gu6i.png",
		Nutrition:   []string{"Vitamin E: 50%", "Healthy Fats: 6g"},
	},
	{
		Name: "Rose Milk", BasePrice: 9.00, Category: "milk",
		Description: "Lightly sweetened milk with authentic rose flavor. Cooling effect.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_15zs4c15zs4c15zs.png",
		Nutrition:   []string{"Calcium: 40%", "Sugar: 8g"},
	},
	{
		Name: "Chocolate Milk", BasePrice: 9.00, Category: "milk",
		Description: "Rich cocoa flavor with creamy milk. Kids favorite.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_acoo6acoo6acoo6a.png",
		Nutrition:   []string{"Calcium: 45%", "Protein: 8g"},
	},
	{
		Name: "Socks", BasePrice: 80.00, Category: "Dress",
		Description: "Navy Blue School Socks. Durable cotton blend.",
		Image:       "https://ik.imagekit.io/m1aziocop/Rmdis%20socks.jpg",
		Variants: []models.Variant{
			{Size: "S (1-3)", Price: 80},
			{Size: "M (4-6)", Price: 80},
			{Size: "L (7-10)", Price: 90},
		},
	},
	{
		Name: "Shoes", BasePrice: 499.00, Category: "Dress",
		Description: "Black School Shoes, comfortable fit for all day wear.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shoes.jpg",
		Variants: []models.Variant{
			{Size: "5", Price: 499},
			{Size: "6", Price: 499},
			{Size: "7", Price: 549},
			{Size: "8", Price: 549},
			{Size: "9", Price: 599},
			{Size: "10", Price: 599},
		},
	},
	{
		Name: "Normal Pants", BasePrice: 499.00, Category: "Dress",
		Description: "School Black Normal Pants. Wrinkle-free fabric.",
		Image:       "https://ik.imagekit.io/m1aziocop/Normal%20PAnt.jpg",
		Variants:    sizeRun(499, 20),
	},
	{
		Name: "Sports Pants", BasePrice: 599.00, Category: "Dress",
		Description: "School Sports Pants with orange stripe. Stretchable.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_nqz5oenqz5oenqz5.png",
		Variants:    sizeRun(599, 20),
	},
	{
		Name: "Sports Shirt", BasePrice: 599.00, Category: "Dress",
		Description: "Breathable School Sports Shirt. Sweat wicking technology.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_egk1wyegk1wyegk1.png",
		Variants:    sizeRun(599, 20),
	},
	{
		Name: "Hoodie", BasePrice: 799.00, Category: "Dress",
		Description: "Soft and warm School Hoodie. Perfect for winter mornings.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_umas1mumas1mumas.png",
		Variants:    sizeRun(799, 20),
	},
	{
		Name: "Normal Shirt (Sr)", BasePrice: 399.00, Category: "Dress",
		Description: "Shirt for Std 8-10. Formal fit.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_tpcmtotpcmtotpcm.png",
		Variants:    sizeRun(399, 20),
	},
	{
		Name: "Girls Skirt", BasePrice: 399.00, Category: "Dress",
		Description: "Comfortable School Skirt. Pleated design.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_43q8gp43q8gp43q8.png",
		Variants:    sizeRun(399, 20),
	},
	{
		Name: "Normal Shirt (Jr)", BasePrice: 399.00, Category: "Dress",
		Description: "Shirt For Std 1-7. Cotton rich fabric.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_1tsw0n1tsw0n1tsw.png",
		Variants:    sizeRun(399, 20),
	},
	{
		Name: "School Bag", BasePrice: 599.00, Category: "Dress",
		Description: "Durable School Bag with multiple compartments.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_q9oco9q9oco9q9oc.png",
	},
	{
		Name: "Pre-Primary Uniform Set", BasePrice: 650.00, Category: "Dress",
		Description: "Complete uniform set for Nursery/LKG/UKG. Includes shirt and shorts/skirt. Soft fabric for delicate skin.",
		Image:       "https://ik.imagekit.io/m1aziocop/Shlok/Gemini_Generated_Image_1tsw0n1tsw0n1tsw.png",
		Nutrition:   []string{"Fabric: 100% Cotton", "Set: Shirt + Bottom"},
		Variants: []models.Variant{
			{Size: "16 (Nursery)", Price: 650},
			{Size: "18 (LKG)", Price: 680},
			{Size: "20 (UKG)", Price: 710},
		},
	},
}

// sizeRun builds the standard clothing size ladder 22-32, stepping the
// price up 20 per size.
func sizeRun(base float64, step float64) []models.Variant {
	sizes := []string{"22", "24", "26", "28", "30", "32"}
	variants := make([]models.Variant, 0, len(sizes))
	for i, s := range sizes {
		variants = append(variants, models.Variant{Size: s, Price: base + float64(i)*step})
	}
	return variants
}

func main() {
	config.LoadConfig()
	config.ConnectDB()
	defer config.CloseDB()

	ctx := context.Background()

	if _, err := config.DB.Exec(ctx, "DELETE FROM products"); err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}

	repo := repositories.NewProductRepository()
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			log.Fatalf("Failed to insert %q: %v", products[i].Name, err)
		}
	}

	log.Printf("Seeded %d products", len(products))
}
