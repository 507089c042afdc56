package request

type PurchaseTicketsRequest struct {
	// The original kiosk flow buys one ticket per tap, so the quantity is
	// optional and defaults to 1.
	Quantity *int `json:"quantity,omitempty"`
}

func (r PurchaseTicketsRequest) GetQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type CreateEventRequest struct {
	Name    string `json:"name" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Tickets *int   `json:"tickets" binding:"required"`
}

type SetTicketsRequest struct {
	Tickets *int `json:"tickets" binding:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
