package forms

import (
	"net/url"
	"strings"

	"github.com/wareview/wareview/internal/warehouse"
)

// SupplierForm is the staged creation draft for a supplier. Contact person
// and phone are optional.
type SupplierForm struct {
	Name          string `validate:"required"`
	ContactPerson string
	Email         string `validate:"required,email"`
	Phone         string
}

// ParseSupplierForm coerces raw form input into a supplier draft and
// validates it.
func ParseSupplierForm(values url.Values) (SupplierForm, map[string]string) {
	form := SupplierForm{
		Name:          strings.TrimSpace(values.Get("name")),
		ContactPerson: strings.TrimSpace(values.Get("contact_person")),
		Email:         strings.TrimSpace(values.Get("email")),
		Phone:         strings.TrimSpace(values.Get("phone")),
	}
	return form, form.Validate()
}

// Validate applies the shared validation contract to the draft.
func (f SupplierForm) Validate() map[string]string {
	return check(f)
}

// Payload converts the validated draft into the creation payload.
func (f SupplierForm) Payload() warehouse.SupplierCreate {
	return warehouse.SupplierCreate{
		Name:          f.Name,
		ContactPerson: f.ContactPerson,
		Email:         f.Email,
		Phone:         f.Phone,
	}
}
