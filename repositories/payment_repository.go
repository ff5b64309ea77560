package repositories

import (
	"context"

	"bistro-boss-server/constants"
	"bistro-boss-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type IPaymentRepository interface {
	Insert(ctx context.Context, payment models.Payment) (interface{}, error)
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{collection: db.Collection(constants.CollectionPayments)}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment models.Payment) (interface{}, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}
	return result.InsertedID, nil
}

func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.EstimatedDocumentCount(ctx)
}

func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *PaymentRepository) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	cursor, err := r.collection.Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		return nil, err
	}
	var stats []models.CategoryStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// orderStatsPipeline explodes each payment's menuItemIds and joins them
// against the menu catalog. Ids that are not valid ObjectIDs or have no
// matching menu document fall out at the post-lookup $unwind, so the report
// has inner-join semantics.
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "menuItemObjectId", Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$menuItemIds"},
				{Key: "to", Value: "objectId"},
				{Key: "onError", Value: nil},
				{Key: "onNull", Value: nil},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constants.CollectionMenu},
			{Key: "localField", Value: "menuItemObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "totalRevenue", Value: "$revenue"},
		}}},
	}
}
