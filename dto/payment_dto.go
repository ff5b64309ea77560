package dto

type CreatePaymentIntentInput struct {
	Price float64 `json:"price" binding:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentInput struct {
	Email         string   `json:"email" binding:"required,email"`
	Price         float64  `json:"price" binding:"required"`
	TransactionID string   `json:"transactionId" binding:"required"`
	CartIDs       []string `json:"cartIds" binding:"required"`
	MenuItemIDs   []string `json:"menuItemIds" binding:"required"`
	Status        string   `json:"status"`
}
