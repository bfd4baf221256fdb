package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemFormRejectsBlankAndNegativeInput(t *testing.T) {
	_, errs := ParseItemForm(url.Values{
		"name":     {"   "},
		"category": {""},
		"quantity": {"-1"},
		"price":    {"-0.01"},
	})

	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Category is required", errs["category"])
	assert.Equal(t, "Quantity must be non-negative", errs["quantity"])
	assert.Equal(t, "Price must be non-negative", errs["price"])
}

func TestParseItemFormAcceptsZeroQuantityAndPrice(t *testing.T) {
	form, errs := ParseItemForm(url.Values{
		"name":     {" Widget "},
		"category": {"Hardware"},
		"quantity": {"0"},
		"price":    {"0"},
	})

	require.Empty(t, errs)
	assert.Equal(t, "Widget", form.Name, "surrounding whitespace is trimmed")

	payload := form.Payload()
	assert.Equal(t, 0, payload.Quantity)
	assert.Equal(t, 0.0, payload.Price)
	assert.Nil(t, payload.SupplierID)
}

func TestParseItemFormCoercesSupplierID(t *testing.T) {
	form, errs := ParseItemForm(url.Values{
		"name":        {"Widget"},
		"category":    {"Hardware"},
		"quantity":    {"3"},
		"price":       {"9.50"},
		"supplier_id": {"2"},
	})

	require.Empty(t, errs)
	require.NotNil(t, form.SupplierID)
	assert.Equal(t, int64(2), *form.SupplierID)
	assert.True(t, form.SupplierSelected(2))
	assert.False(t, form.SupplierSelected(3))

	payload := form.Payload()
	require.NotNil(t, payload.SupplierID)
	assert.Equal(t, int64(2), *payload.SupplierID)
	assert.Equal(t, 9.5, payload.Price)
}

func TestParseItemFormRejectsNonNumericInput(t *testing.T) {
	_, errs := ParseItemForm(url.Values{
		"name":     {"Widget"},
		"category": {"Hardware"},
		"quantity": {"three"},
		"price":    {"cheap"},
	})

	assert.Equal(t, "Quantity must be a number", errs["quantity"])
	assert.Equal(t, "Price must be a number", errs["price"])
}

func TestParseSupplierFormValidatesEmail(t *testing.T) {
	_, errs := ParseSupplierForm(url.Values{
		"name":  {"Acme"},
		"email": {"not-an-email"},
	})
	assert.Equal(t, "Email must be a valid email address", errs["email"])

	_, errs = ParseSupplierForm(url.Values{
		"name": {"Acme"},
	})
	assert.Equal(t, "Email is required", errs["email"])
}

func TestParseSupplierFormOptionalFieldsMayBeEmpty(t *testing.T) {
	form, errs := ParseSupplierForm(url.Values{
		"name":  {"Acme"},
		"email": {"sales@acme.test"},
	})

	require.Empty(t, errs)
	payload := form.Payload()
	assert.Equal(t, "Acme", payload.Name)
	assert.Equal(t, "sales@acme.test", payload.Email)
	assert.Empty(t, payload.ContactPerson)
	assert.Empty(t, payload.Phone)
}

func TestParseShipmentFormRequiresAllFields(t *testing.T) {
	_, errs := ParseShipmentForm(url.Values{})

	assert.Equal(t, "Item is required", errs["item_id"])
	assert.Equal(t, "Origin is required", errs["origin"])
	assert.Equal(t, "Destination is required", errs["destination"])
	assert.NotEmpty(t, errs["status"])
	assert.NotEmpty(t, errs["estimated_delivery_date"])
}

func TestParseShipmentFormRejectsUnknownStatusAndBadDate(t *testing.T) {
	_, errs := ParseShipmentForm(url.Values{
		"item_id":                 {"1"},
		"quantity":                {"5"},
		"origin":                  {"Rotterdam"},
		"destination":             {"Oslo"},
		"status":                  {"Teleported"},
		"estimated_delivery_date": {"03/01/2024"},
	})

	assert.Equal(t, "Status must be Pending, In Transit or Delivered", errs["status"])
	assert.Equal(t, "Estimated delivery date must be a valid date", errs["estimated_delivery_date"])
}

func TestParseShipmentFormAcceptsEveryStatus(t *testing.T) {
	for _, status := range []string{"Pending", "In Transit", "Delivered"} {
		form, errs := ParseShipmentForm(url.Values{
			"item_id":                 {"1"},
			"quantity":                {"5"},
			"origin":                  {"Rotterdam"},
			"destination":             {"Oslo"},
			"status":                  {status},
			"estimated_delivery_date": {"2024-06-01"},
		})
		require.Empty(t, errs, "status %q should validate", status)

		payload := form.Payload()
		assert.Equal(t, int64(1), payload.ItemID)
		assert.Equal(t, status, payload.Status)
		assert.Equal(t, "2024-06-01", payload.EstimatedDeliveryDate)
	}
}
