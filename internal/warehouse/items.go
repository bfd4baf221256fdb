package warehouse

import "context"

// ListItems fetches all inventory items, suppliers expanded where present.
func (c *Client) ListItems(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	if err := c.get(ctx, "/items/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem creates an inventory item and returns the server-assigned record.
func (c *Client) CreateItem(ctx context.Context, payload InventoryItemCreate) (InventoryItem, error) {
	var item InventoryItem
	if err := c.postJSON(ctx, "/items/", payload, &item); err != nil {
		return InventoryItem{}, err
	}
	return item, nil
}

// Items exposes the item resource with the generic list/create shape used by
// page controllers.
type Items struct {
	*Client
}

func (i Items) List(ctx context.Context) ([]InventoryItem, error) {
	return i.ListItems(ctx)
}

func (i Items) Create(ctx context.Context, payload InventoryItemCreate) (InventoryItem, error) {
	return i.CreateItem(ctx, payload)
}
