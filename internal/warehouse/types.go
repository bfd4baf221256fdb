package warehouse

// Supplier is a vendor record owned by the remote API.
type Supplier struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
}

// InventoryItem is a stocked product. Supplier is expanded by the server when
// the item references one.
type InventoryItem struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	SupplierID *int64    `json:"supplier_id,omitempty"`
	Supplier   *Supplier `json:"supplier,omitempty"`
}

// Shipment is a stock movement referencing an inventory item. The server
// expands the referenced item on reads. EstimatedDeliveryDate is a calendar
// date in 2006-01-02 form.
type Shipment struct {
	ID                    int64          `json:"id"`
	ItemID                int64          `json:"item_id"`
	Item                  *InventoryItem `json:"item,omitempty"`
	Quantity              int            `json:"quantity"`
	Origin                string         `json:"origin"`
	Destination           string         `json:"destination"`
	Status                string         `json:"status"`
	EstimatedDeliveryDate string         `json:"estimated_delivery_date"`
}

// Shipment statuses accepted by the API.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
)

// SupplierCreate is the payload for creating a supplier. The server assigns
// the identity.
type SupplierCreate struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
}

// InventoryItemCreate is the payload for creating an inventory item.
type InventoryItemCreate struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	SupplierID *int64  `json:"supplier_id,omitempty"`
}

// ShipmentCreate is the payload for creating a shipment.
type ShipmentCreate struct {
	ItemID                int64  `json:"item_id"`
	Quantity              int    `json:"quantity"`
	Origin                string `json:"origin"`
	Destination           string `json:"destination"`
	Status                string `json:"status"`
	EstimatedDeliveryDate string `json:"estimated_delivery_date"`
}
