package content

type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTAText         string `json:"ctaText"`
	CTALink         string `json:"ctaLink"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FeaturedProduct struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Badge       string  `json:"badge,omitempty"`
}

type Homepage struct {
	Hero             Hero              `json:"hero"`
	Stats            []Stat            `json:"stats"`
	FeaturedProducts []FeaturedProduct `json:"featuredProducts"`
}

type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type About struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Mission  string  `json:"mission"`
	Vision   string  `json:"vision"`
	Values   []Value `json:"values"`
}

type Feature struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Benefits    []string `json:"benefits"`
}

type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type Banner struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Link     string `json:"link,omitempty"`
	LinkText string `json:"linkText,omitempty"`
	Active   bool   `json:"active"`
}
