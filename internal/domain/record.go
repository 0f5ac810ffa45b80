package domain

type ProductType string

func (t ProductType) String() string {
	return string(t)
}

const (
	ProductTypeSimple    ProductType = "simple"    // Single purchasable product
	ProductTypeVariable  ProductType = "variable"  // Parent of variations
	ProductTypeVariation ProductType = "variation" // One option combination of a variable product
)

// MaxAttributes is the number of attribute column groups in the import schema.
const MaxAttributes = 3

// Columns is the WooCommerce product import header, in file order.
var Columns = []string{
	"ID",
	"Type",
	"SKU",
	"Parent",
	"Name",
	"Published",
	"Is featured?",
	"Visibility in catalog",
	"Short description",
	"Description",
	"Tax status",
	"Tax class",
	"In stock?",
	"Backorders allowed",
	"Sold_individually?",
	"Weight (lbs)",
	"Length (in)",
	"Width (in)",
	"Height (in)",
	"Allow customer reviews?",
	"Purchase note",
	"Sale price",
	"Regular price",
	"Categories",
	"Tags",
	"Shipping class",
	"Attribute 1 name",
	"Attribute 1 value(s)",
	"Attribute 2 name",
	"Attribute 2 value(s)",
	"Attribute 1 visible",
	"Attribute 1 global",
	"Attribute 2 visible",
	"Attribute 2 global",
	"Attribute 3 name",
	"Attribute 3 value(s)",
	"Attribute 3 visible",
	"Attribute 3 global",
	"Images",
}

type Attribute struct {
	Name    string
	Values  string // "|"-joined on parents, a single value on variations
	Visible string
	Global  string
}

// Record is one row of the product import file.
type Record struct {
	ID                string
	Type              ProductType
	SKU               string
	Parent            string
	Name              string
	Published         string
	IsFeatured        string
	Visibility        string
	ShortDescription  string
	Description       string
	TaxStatus         string
	TaxClass          string
	InStock           string
	BackordersAllowed string
	SoldIndividually  string
	Weight            string
	Length            string
	Width             string
	Height            string
	AllowReviews      string
	PurchaseNote      string
	SalePrice         string
	RegularPrice      string
	Categories        string
	Tags              string
	ShippingClass     string
	Attributes        [MaxAttributes]Attribute
	Images            string
}

// NewRecord returns a record of the given type with the columns that are
// constant across every exported row already filled in.
func NewRecord(productType ProductType) Record {
	return Record{
		Type:              productType,
		Published:         "1",
		IsFeatured:        "0",
		Visibility:        "visible",
		TaxStatus:         "taxable",
		InStock:           "1",
		BackordersAllowed: "0",
		SoldIndividually:  "0",
		AllowReviews:      "1",
	}
}

// Values returns the record cells aligned with Columns.
func (r Record) Values() []string {
	a := r.Attributes
	return []string{
		r.ID,
		r.Type.String(),
		r.SKU,
		r.Parent,
		r.Name,
		r.Published,
		r.IsFeatured,
		r.Visibility,
		r.ShortDescription,
		r.Description,
		r.TaxStatus,
		r.TaxClass,
		r.InStock,
		r.BackordersAllowed,
		r.SoldIndividually,
		r.Weight,
		r.Length,
		r.Width,
		r.Height,
		r.AllowReviews,
		r.PurchaseNote,
		r.SalePrice,
		r.RegularPrice,
		r.Categories,
		r.Tags,
		r.ShippingClass,
		a[0].Name,
		a[0].Values,
		a[1].Name,
		a[1].Values,
		a[0].Visible,
		a[0].Global,
		a[1].Visible,
		a[1].Global,
		a[2].Name,
		a[2].Values,
		a[2].Visible,
		a[2].Global,
		r.Images,
	}
}

// Field returns the cell stored under column, or "" for an unknown column.
func (r Record) Field(column string) string {
	for i, c := range Columns {
		if c == column {
			return r.Values()[i]
		}
	}
	return ""
}
