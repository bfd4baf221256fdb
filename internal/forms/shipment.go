package forms

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/wareview/wareview/internal/warehouse"
)

// ShipmentForm is the staged creation draft for a shipment.
type ShipmentForm struct {
	ItemID                int64  `validate:"required"`
	Quantity              int    `validate:"gte=0"`
	Origin                string `validate:"required"`
	Destination           string `validate:"required"`
	Status                string `validate:"required,oneof='Pending' 'In Transit' 'Delivered'"`
	EstimatedDeliveryDate string `validate:"required,datetime=2006-01-02"`
}

// ParseShipmentForm coerces raw form input into a shipment draft and
// validates it.
func ParseShipmentForm(values url.Values) (ShipmentForm, map[string]string) {
	coerce := map[string]string{}
	form := ShipmentForm{
		Origin:                strings.TrimSpace(values.Get("origin")),
		Destination:           strings.TrimSpace(values.Get("destination")),
		Status:                strings.TrimSpace(values.Get("status")),
		EstimatedDeliveryDate: strings.TrimSpace(values.Get("estimated_delivery_date")),
	}
	if raw := strings.TrimSpace(values.Get("item_id")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			form.ItemID = id
		} else {
			coerce["item_id"] = "Item is not valid"
		}
	}
	if raw := strings.TrimSpace(values.Get("quantity")); raw != "" {
		if qty, err := strconv.Atoi(raw); err == nil {
			form.Quantity = qty
		} else {
			coerce["quantity"] = "Quantity must be a number"
		}
	}

	errs := form.Validate()
	for field, msg := range coerce {
		errs[field] = msg
	}
	return form, errs
}

// Validate applies the shared validation contract to the draft.
func (f ShipmentForm) Validate() map[string]string {
	return check(f)
}

// Payload converts the validated draft into the creation payload.
func (f ShipmentForm) Payload() warehouse.ShipmentCreate {
	return warehouse.ShipmentCreate{
		ItemID:                f.ItemID,
		Quantity:              f.Quantity,
		Origin:                f.Origin,
		Destination:           f.Destination,
		Status:                f.Status,
		EstimatedDeliveryDate: f.EstimatedDeliveryDate,
	}
}
