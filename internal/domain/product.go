package domain

type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Variant struct {
	Title   string   `json:"title"`
	Price   string   `json:"price"`
	Option1 string   `json:"option1"`
	Option2 string   `json:"option2"`
	Option3 string   `json:"option3"`
	Images  []string `json:"images"` // Resolved image URLs of the variant itself
}

// Product is one element of a products.json page. Missing fields decode to
// their zero values.
type Product struct {
	Title    string    `json:"title"`
	BodyHTML string    `json:"body_html"`
	Tags     []string  `json:"tags"`
	Variants []Variant `json:"variants"`
	Options  []Option  `json:"options"`
	Images   []string  `json:"images"` // featured_image.src, else every images[].src
}

type ProductsPage struct {
	Number   int       `json:"number"`   // 1-based page number
	Products []Product `json:"products"` // Empty once the collection is exhausted
}
