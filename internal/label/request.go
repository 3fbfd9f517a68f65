package label

import (
	"strings"

	imagepkg "github.com/vistaar/vistaar/internal/image"
)

// Request is the validated input of one label render.
type Request struct {
	ProductName     string `form:"productName" json:"productName"`
	Category        string `form:"category" json:"category"`
	Ingredients     string `form:"ingredients" json:"ingredients"`
	NutritionalInfo string `form:"nutritionalInfo" json:"nutritionalInfo"`
	SellerName      string `form:"sellerName" json:"sellerName"`

	// LogoPath points at an already stored logo image; empty means no logo.
	LogoPath string `form:"-" json:"-"`
}

// Normalize trims surrounding whitespace from the text fields.
func (r *Request) Normalize() {
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.Category = strings.TrimSpace(r.Category)
	r.SellerName = strings.TrimSpace(r.SellerName)
	r.Ingredients = strings.TrimSpace(r.Ingredients)
	r.NutritionalInfo = strings.TrimSpace(r.NutritionalInfo)
}

// Validate reports every missing required field at once.
func (r Request) Validate() error {
	var missing []string
	if strings.TrimSpace(r.ProductName) == "" {
		missing = append(missing, "productName")
	}
	if strings.TrimSpace(r.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(r.SellerName) == "" {
		missing = append(missing, "sellerName")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Payload is what the label's QR code encodes.
func (r Request) Payload() imagepkg.Payload {
	return imagepkg.Payload{
		Product:  r.ProductName,
		Seller:   r.SellerName,
		Category: r.Category,
	}
}

// IngredientList splits the comma separated ingredients, dropping blanks.
func (r Request) IngredientList() []string {
	if r.Ingredients == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(r.Ingredients, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
