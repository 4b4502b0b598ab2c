package content

// Fallback content served when the content endpoints are unreachable. The
// homepage must render regardless of backend health.

func defaultHomepage() *Homepage {
	return &Homepage{
		Hero: Hero{
			Title:    "Welcome to the Marketplace",
			Subtitle: "Discover amazing products at unbeatable prices",
			CTAText:  "Shop Now",
			CTALink:  "/products",
		},
		Stats: []Stat{
			{Label: "Products", Value: "10,000+"},
			{Label: "Customers", Value: "50,000+"},
			{Label: "Orders", Value: "100,000+"},
			{Label: "Satisfaction", Value: "99%"},
		},
		FeaturedProducts: []FeaturedProduct{},
	}
}

func defaultAbout() *About {
	return &About{
		Title:    "About Us",
		Subtitle: "Your trusted e-commerce partner",
		Mission:  "To provide high-quality products at affordable prices with exceptional customer service.",
		Vision:   "To become the most customer-centric online marketplace.",
		Values: []Value{
			{Title: "Quality", Description: "We never compromise on product quality", Icon: "star"},
			{Title: "Affordability", Description: "Best prices guaranteed on all products", Icon: "coin"},
			{Title: "Customer First", Description: "Your satisfaction is our top priority", Icon: "heart"},
		},
	}
}

func defaultFeatures() []Feature {
	return []Feature{
		{
			Title:       "Fast Shipping",
			Description: "Get your orders delivered quickly",
			Icon:        "rocket",
			Benefits:    []string{"Free shipping on orders over $50", "2-day delivery available", "Track your order in real-time"},
		},
		{
			Title:       "Secure Payments",
			Description: "Shop with confidence",
			Icon:        "lock",
			Benefits:    []string{"SSL encryption", "Multiple payment options", "Buyer protection"},
		},
		{
			Title:       "24/7 Support",
			Description: "We're here to help",
			Icon:        "chat",
			Benefits:    []string{"Live chat support", "Email assistance", "Comprehensive help center"},
		},
	}
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:      1,
			Name:    "Sarah Johnson",
			Role:    "Verified Buyer",
			Company: "Home Essentials",
			Content: "Amazing products and fast delivery! Highly recommended.",
			Rating:  5,
		},
		{
			ID:      2,
			Name:    "Mike Chen",
			Role:    "Regular Customer",
			Company: "Tech Enthusiast",
			Content: "Best prices I've found online. Customer service is top-notch!",
			Rating:  5,
		},
	}
}

func defaultFAQs() []FAQItem {
	return []FAQItem{
		{
			Question: "How long does shipping take?",
			Answer:   "Standard shipping takes 3-5 business days. Express shipping is available for 1-2 day delivery.",
			Category: "Shipping",
		},
		{
			Question: "What is your return policy?",
			Answer:   "We offer a 30-day return policy on most items. Items must be unused and in original packaging.",
			Category: "Returns",
		},
		{
			Question: "Do you offer international shipping?",
			Answer:   "Yes, we ship to most countries worldwide. Shipping costs and delivery times vary by location.",
			Category: "Shipping",
		},
	}
}
