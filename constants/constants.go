package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Error messages
const (
	ErrUnexpected    = "Unexpected error"
	ErrInvalidID     = "Invalid id"
	ErrInvalidInput  = "Invalid input"
	ErrForbidden     = "forbidden access"
	ErrEmailRequired = "email query parameter is required"
	MsgUserExists    = "user already exists"
)

// Collection names in bistroDB
const (
	CollectionUsers    = "users"
	CollectionMenu     = "menu"
	CollectionReviews  = "reviews"
	CollectionCarts    = "carts"
	CollectionPayments = "payments"
)
