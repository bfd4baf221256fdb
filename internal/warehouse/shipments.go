package warehouse

import "context"

// ListShipments fetches all shipments, items expanded.
func (c *Client) ListShipments(ctx context.Context) ([]Shipment, error) {
	var shipments []Shipment
	if err := c.get(ctx, "/shipments/", &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

// CreateShipment creates a shipment and returns the server-assigned record.
func (c *Client) CreateShipment(ctx context.Context, payload ShipmentCreate) (Shipment, error) {
	var shipment Shipment
	if err := c.postJSON(ctx, "/shipments/", payload, &shipment); err != nil {
		return Shipment{}, err
	}
	return shipment, nil
}

// Shipments exposes the shipment resource with the generic list/create shape.
type Shipments struct {
	*Client
}

func (s Shipments) List(ctx context.Context) ([]Shipment, error) {
	return s.ListShipments(ctx)
}

func (s Shipments) Create(ctx context.Context, payload ShipmentCreate) (Shipment, error) {
	return s.CreateShipment(ctx, payload)
}
