package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	valid := Request{ProductName: "Soap", Category: "Cosmetic", SellerName: "Acme"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		req     Request
		missing []string
	}{
		{"no product", Request{Category: "c", SellerName: "s"}, []string{"productName"}},
		{"no category", Request{ProductName: "p", SellerName: "s"}, []string{"category"}},
		{"blank seller", Request{ProductName: "p", Category: "c", SellerName: "   "}, []string{"sellerName"}},
		{"nothing", Request{Ingredients: "salt"}, []string{"productName", "category", "sellerName"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.missing, verr.Missing)
		})
	}
}

func TestRequestIngredientList(t *testing.T) {
	r := Request{Ingredients: " water, glycerin ,, aloe vera ,"}
	assert.Equal(t, []string{"water", "glycerin", "aloe vera"}, r.IngredientList())
	assert.Nil(t, Request{}.IngredientList())
}

func TestRequestPayload(t *testing.T) {
	r := Request{ProductName: "Soap", SellerName: "Acme", Category: "Cosmetic"}
	assert.Equal(t, `{"product":"Soap","seller":"Acme","category":"Cosmetic"}`, r.Payload().String())
}
