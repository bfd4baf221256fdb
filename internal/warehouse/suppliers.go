package warehouse

import "context"

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := c.get(ctx, "/suppliers/", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier creates a supplier and returns the server-assigned record.
func (c *Client) CreateSupplier(ctx context.Context, payload SupplierCreate) (Supplier, error) {
	var supplier Supplier
	if err := c.postJSON(ctx, "/suppliers/", payload, &supplier); err != nil {
		return Supplier{}, err
	}
	return supplier, nil
}

// Suppliers exposes the supplier resource with the generic list/create shape.
type Suppliers struct {
	*Client
}

func (s Suppliers) List(ctx context.Context) ([]Supplier, error) {
	return s.ListSuppliers(ctx)
}

func (s Suppliers) Create(ctx context.Context, payload SupplierCreate) (Supplier, error) {
	return s.CreateSupplier(ctx, payload)
}
