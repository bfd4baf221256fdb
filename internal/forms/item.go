package forms

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wareview/wareview/internal/warehouse"
)

// ItemForm is the staged creation draft for an inventory item.
type ItemForm struct {
	Name       string          `validate:"required"`
	Category   string          `validate:"required"`
	Quantity   int             `validate:"gte=0"`
	Price      decimal.Decimal `validate:"gte=0"`
	SupplierID *int64
}

// ParseItemForm coerces raw form input into an item draft and validates it.
// The returned map holds field errors keyed by input name; an empty map means
// the draft may be submitted.
func ParseItemForm(values url.Values) (ItemForm, map[string]string) {
	coerce := map[string]string{}
	form := ItemForm{
		Name:     strings.TrimSpace(values.Get("name")),
		Category: strings.TrimSpace(values.Get("category")),
	}
	if raw := strings.TrimSpace(values.Get("quantity")); raw != "" {
		if qty, err := strconv.Atoi(raw); err == nil {
			form.Quantity = qty
		} else {
			coerce["quantity"] = "Quantity must be a number"
		}
	}
	if raw := strings.TrimSpace(values.Get("price")); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			form.Price = price
		} else {
			coerce["price"] = "Price must be a number"
		}
	}
	if raw := strings.TrimSpace(values.Get("supplier_id")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			form.SupplierID = &id
		} else {
			coerce["supplier_id"] = "Supplier is not valid"
		}
	}

	errs := form.Validate()
	for field, msg := range coerce {
		errs[field] = msg
	}
	return form, errs
}

// Validate applies the shared validation contract to the draft.
func (f ItemForm) Validate() map[string]string {
	return check(f)
}

// SupplierSelected reports whether the draft references the given supplier.
func (f ItemForm) SupplierSelected(id int64) bool {
	return f.SupplierID != nil && *f.SupplierID == id
}

// Payload converts the validated draft into the creation payload.
func (f ItemForm) Payload() warehouse.InventoryItemCreate {
	price, _ := f.Price.Float64()
	return warehouse.InventoryItemCreate{
		Name:       f.Name,
		Quantity:   f.Quantity,
		Category:   f.Category,
		Price:      price,
		SupplierID: f.SupplierID,
	}
}
