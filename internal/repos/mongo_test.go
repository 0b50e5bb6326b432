package repos

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoFilter(t *testing.T) {
	require.Equal(t, bson.D{}, mongoFilter(nil))

	got := mongoFilter(Filter{Eq("brand", "Exide")})
	require.Equal(t, bson.D{{Key: "brand", Value: "Exide"}}, got)

	got = mongoFilter(Filter{Eq("type", "inverter"), ContainsFold("name", "zelio+")})
	require.Equal(t, bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "type", Value: "inverter"}},
		bson.D{{Key: "name", Value: primitive.Regex{Pattern: `zelio\+`, Options: "i"}}},
	}}}, got)
}

// Runs against a live server only when MONGO_TEST_URL is set.
func TestMongoStoreLive(t *testing.T) {
	url := os.Getenv("MONGO_TEST_URL")
	if url == "" {
		t.Skip("MONGO_TEST_URL not set")
	}
	ctx := context.Background()
	name := "chiragbattery_test_" + primitive.NewObjectID().Hex()
	st, err := OpenMongo(ctx, url, name, 5*time.Second)
	require.NoError(t, err)
	defer func() {
		_ = st.db.Drop(ctx)
		_ = st.Close()
	}()

	prods := NewProductRepo(st)
	n, err := SeedIfEmpty(ctx, prods)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	docs, err := st.Find(ctx, "product", Filter{ContainsFold("name", "AMARON")}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.NotContains(t, docs[0], "_id")

	docs, err = st.Find(ctx, "product", nil, 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	names, err := st.CollectionNames(ctx)
	require.NoError(t, err)
	require.Contains(t, names, "product")
}

func TestOpenMongoUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials the network")
	}
	_, err := OpenMongo(context.Background(), "mongodb://127.0.0.1:1", "", 200*time.Millisecond)
	require.ErrorIs(t, err, ErrUnavailable)
}
