package domain

// Category is a named storefront collection exported to its own CSV file.
type Category struct {
	Name string `json:"name"`
	URL  string `json:"url"` // Collection products.json endpoint
}
