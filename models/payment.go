package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is recorded after a successful charge. CartIDs and MenuItemIDs hold
// hex ObjectIDs of the cart rows the payment covers and the menu items ordered.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          time.Time          `bson:"date" json:"date"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds" json:"menuItemIds"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}

// CategoryStat is one row of the per-category order report.
type CategoryStat struct {
	Category     string  `bson:"category" json:"category"`
	Quantity     int64   `bson:"quantity" json:"quantity"`
	TotalRevenue float64 `bson:"totalRevenue" json:"totalRevenue"`
}
