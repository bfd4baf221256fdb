package warehouse

import "context"

// StockByCategory returns aggregate quantity keyed by category name.
func (c *Client) StockByCategory(ctx context.Context) (map[string]int, error) {
	var stock map[string]int
	if err := c.get(ctx, "/analytics/stock_by_category/", &stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// DailyShipments returns shipped quantity keyed by ISO date string.
func (c *Client) DailyShipments(ctx context.Context) (map[string]int, error) {
	var daily map[string]int
	if err := c.get(ctx, "/analytics/daily_shipments/", &daily); err != nil {
		return nil, err
	}
	return daily, nil
}

// LowStockAlerts returns items whose quantity fell below the server-owned
// threshold. The threshold semantics live entirely in the backend.
func (c *Client) LowStockAlerts(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	if err := c.get(ctx, "/analytics/low_stock_alerts/", &items); err != nil {
		return nil, err
	}
	return items, nil
}
