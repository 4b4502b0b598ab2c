package product

// defaultProducts is the built-in catalog served when the backend is
// unreachable, so the storefront always has something to render.
var defaultProducts = []*Product{
	{
		ID:            "1",
		Name:          "Premium Domain Package",
		Description:   "Get started with our premium domain registration and hosting bundle",
		Price:         99.99,
		DiscountPrice: 149.99,
		Image:         "/products/domain-1.jpg",
		Category:      "Domains",
		Stock:         100,
		Rating:        5,
		Reviews:       234,
	},
	{
		ID:            "2",
		Name:          "SSL Certificate Pro",
		Description:   "Secure your website with industry-leading SSL encryption",
		Price:         49.99,
		DiscountPrice: 79.99,
		Image:         "/products/ssl-1.jpg",
		Category:      "Security",
		Stock:         50,
		Rating:        4.8,
		Reviews:       189,
	},
	{
		ID:          "3",
		Name:        "Web Hosting Plus",
		Description: "Fast, reliable hosting with 99.9% uptime guarantee",
		Price:       79.99,
		Image:       "/products/hosting-1.jpg",
		Category:    "Hosting",
		Stock:       75,
		Rating:      4.9,
		Reviews:     567,
	},
	{
		ID:          "4",
		Name:        "Email Professional",
		Description: "Professional email hosting for your business",
		Price:       29.99,
		Image:       "/products/email-1.jpg",
		Category:    "Email",
		Stock:       120,
		Rating:      4.7,
		Reviews:     342,
	},
	{
		ID:            "5",
		Name:          "Domain Privacy",
		Description:   "Protect your personal information with domain privacy",
		Price:         9.99,
		DiscountPrice: 14.99,
		Image:         "/products/privacy-1.jpg",
		Category:      "Security",
		Stock:         200,
		Rating:        4.6,
		Reviews:       123,
	},
	{
		ID:          "6",
		Name:        "Website Builder",
		Description: "Build your professional website with drag-and-drop ease",
		Price:       39.99,
		Image:       "/products/builder-1.jpg",
		Category:    "Hosting",
		Stock:       90,
		Rating:      4.5,
		Reviews:     278,
	},
	{
		ID:          "7",
		Name:        "VPS Hosting",
		Description: "Dedicated resources for high-performance applications",
		Price:       199.99,
		Image:       "/products/vps-1.jpg",
		Category:    "Hosting",
		Stock:       30,
		Rating:      4.9,
		Reviews:     156,
	},
	{
		ID:          "8",
		Name:        "CDN Service",
		Description: "Speed up your website with global content delivery",
		Price:       59.99,
		Image:       "/products/cdn-1.jpg",
		Category:    "Hosting",
		Stock:       0,
		Rating:      4.7,
		Reviews:     89,
	},
}

var defaultCategories = []string{"Domains", "Hosting", "Security", "Email"}
