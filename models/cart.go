package models

// CartSnapshotVersion is the current on-disk snapshot schema version.
// Snapshots carrying any other version are treated as malformed and discarded.
const CartSnapshotVersion = 1

// CartLineItem represents one distinct (product, size, color) entry in the cart.
// Size and Color are always-present strings (possibly empty) and form the
// identity key together with ProductID.
type CartLineItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // whole naira
	Size      string `json:"size"`
	Color     string `json:"color"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// MatchesKey reports whether the line item has the given identity key
func (li CartLineItem) MatchesKey(productID int64, size, color string) bool {
	return li.ProductID == productID && li.Size == size && li.Color == color
}

// CartSnapshot is the serialized form of the cart persisted across sessions
type CartSnapshot struct {
	Version int            `json:"version"`
	Items   []CartLineItem `json:"items"`
}

// AddCartItemRequest represents the request body for adding an item to the cart
// Example: {"productId": 1, "name": "Elegant Summer Dress", "price": 49990, "size": "M", "color": "Coral Pink", "image": "https://...", "quantity": 1}
// quantity is optional; values <= 0 default to 1
type AddCartItemRequest struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity,omitempty"`
}

// UpdateCartItemRequest represents the request body for setting a line item quantity
// Example: {"productId": 1, "size": "M", "color": "Coral Pink", "quantity": 3}
// quantity < 1 removes the line item
type UpdateCartItemRequest struct {
	ProductID int64  `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemRequest represents the request body for removing a line item
// Example: {"productId": 1, "size": "M", "color": "Coral Pink"}
type RemoveCartItemRequest struct {
	ProductID int64  `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// CartResponse represents the cart read model returned to the storefront
// Example response:
// {
//   "items": [
//     {"productId": 1, "name": "Elegant Summer Dress", "price": 49990, "size": "M", "color": "Coral Pink", "image": "https://...", "quantity": 2}
//   ],
//   "totalAmount": 99980,
//   "itemCount": 2
// }
type CartResponse struct {
	Items       []CartLineItem `json:"items"`
	TotalAmount int64          `json:"totalAmount"`
	ItemCount   int            `json:"itemCount"`
}
