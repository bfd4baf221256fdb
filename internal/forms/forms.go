// Package forms stages and validates creation input before it reaches the
// transport layer. All three creation forms share one validation contract:
// required text fields must be non-empty after trimming, numbers must be
// non-negative, and a failing form never issues a request.
package forms

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
	return v
}

// decimalToFloat lets validator apply numeric tags to decimal fields.
func decimalToFloat(field reflect.Value) any {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := value.Float64()
		return f
	}
	return nil
}

// check runs the shared validator over a form struct and returns field errors
// keyed by form input name. An empty map means the form may be submitted.
func check(form any) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["form"] = "Invalid input"
		return errs
	}
	for _, fe := range fieldErrs {
		errs[inputName(fe.StructField())] = messageFor(fe)
	}
	return errs
}

func inputName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Category":
		return "category"
	case "Quantity":
		return "quantity"
	case "Price":
		return "price"
	case "SupplierID":
		return "supplier_id"
	case "ContactPerson":
		return "contact_person"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "ItemID":
		return "item_id"
	case "Origin":
		return "origin"
	case "Destination":
		return "destination"
	case "Status":
		return "status"
	case "EstimatedDeliveryDate":
		return "estimated_delivery_date"
	}
	return structField
}

func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return "Name is required"
	case "Category":
		return "Category is required"
	case "Quantity":
		return "Quantity must be non-negative"
	case "Price":
		return "Price must be non-negative"
	case "Email":
		if fe.Tag() == "email" {
			return "Email must be a valid email address"
		}
		return "Email is required"
	case "ItemID":
		return "Item is required"
	case "Origin":
		return "Origin is required"
	case "Destination":
		return "Destination is required"
	case "Status":
		return "Status must be Pending, In Transit or Delivered"
	case "EstimatedDeliveryDate":
		return "Estimated delivery date must be a valid date"
	}
	return "Invalid value"
}
