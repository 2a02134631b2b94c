package domain

var (
	MessageSuccessGetManifest = "delivery manifest built successfully"
	MessageFailedGetManifest  = "failed to build delivery manifest"
)

type (
	DeliveryLineItem struct {
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
		Quantity    int    `json:"quantity"`
	}

	ResidentDelivery struct {
		UserID      string             `json:"user_id"`
		Name        string             `json:"name"`
		HouseNumber string             `json:"house_number"`
		Address     string             `json:"address,omitempty"`
		Items       []DeliveryLineItem `json:"items"`
	}

	ProductTotal struct {
		ProductID     string `json:"product_id"`
		ProductName   string `json:"product_name"`
		TotalQuantity int    `json:"total_quantity"`
	}

	DailyManifestResponse struct {
		Date          string             `json:"date"`
		Deliveries    []ResidentDelivery `json:"deliveries"`
		ProductTotals []ProductTotal     `json:"product_totals"`
	}
)
