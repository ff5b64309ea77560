package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The order report must behave as an inner join: payments referencing menu
// ids that are malformed or missing from the catalog contribute nothing.
func TestOrderStatsPipelineInnerJoin(t *testing.T) {
	pipeline := orderStatsPipeline()
	require.Len(t, pipeline, 6)

	assert.Equal(t, "$unwind", pipeline[0][0].Key)
	assert.Equal(t, "$menuItemIds", pipeline[0][0].Value)

	// malformed ids convert to null instead of failing the aggregation
	addFields := pipeline[1][0]
	require.Equal(t, "$addFields", addFields.Key)
	convert := addFields.Value.(bson.D)[0].Value.(bson.D)[0]
	require.Equal(t, "$convert", convert.Key)
	convertArgs := convert.Value.(bson.D)
	assert.Equal(t, "objectId", findKey(t, convertArgs, "to"))
	assert.Nil(t, findKey(t, convertArgs, "onError"))

	lookup := pipeline[2][0]
	require.Equal(t, "$lookup", lookup.Key)
	assert.Equal(t, "menu", findKey(t, lookup.Value.(bson.D), "from"))
	assert.Equal(t, "_id", findKey(t, lookup.Value.(bson.D), "foreignField"))

	// a bare $unwind drops payments whose lookup matched nothing; this is
	// what makes the join inner
	unwind := pipeline[3][0]
	require.Equal(t, "$unwind", unwind.Key)
	assert.Equal(t, "$menuItems", unwind.Value)

	group := pipeline[4][0]
	require.Equal(t, "$group", group.Key)
	assert.Equal(t, "$menuItems.category", findKey(t, group.Value.(bson.D), "_id"))

	project := pipeline[5][0]
	require.Equal(t, "$project", project.Key)
	assert.Equal(t, "$_id", findKey(t, project.Value.(bson.D), "category"))
	assert.Equal(t, "$revenue", findKey(t, project.Value.(bson.D), "totalRevenue"))
}

func findKey(t *testing.T, doc bson.D, key string) interface{} {
	t.Helper()
	for _, elem := range doc {
		if elem.Key == key {
			return elem.Value
		}
	}
	t.Fatalf("key %q not found in %v", key, doc)
	return nil
}
