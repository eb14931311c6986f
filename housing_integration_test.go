package housing_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/application/service"
	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/domain/regression"
)

func newClient(t *testing.T, opts ...housing.Option) *housing.Client {
	t.Helper()
	if len(opts) == 0 {
		opts = []housing.Option{housing.WithSQLite(filepath.Join(t.TempDir(), "test.db"))}
	}
	client, err := housing.New(opts...)
	require.NoError(t, err, "create client")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func sampleParams(medv float64) service.HomeCreateParams {
	return service.HomeCreateParams{
		Rooms:              6.5,
		LowStatusPct:       4.98,
		EmploymentDistance: 6.0,
		TaxRate:            296,
		PupilTeacherRatio:  15.3,
		Age:                65.2,
		IndustrialPct:      2.31,
		MedianValue:        medv,
	}
}

func TestClient_New_WiresServices(t *testing.T) {
	client := newClient(t)

	assert.NotNil(t, client.Homes)
	assert.NotNil(t, client.Prediction)
	assert.NotNil(t, client.Recommendation)
	assert.NotNil(t, client.Store())
	assert.Equal(t, home.FeatureCount, client.Pipeline().FeatureCount())
}

func TestClient_New_RejectsMismatchedPipeline(t *testing.T) {
	p, err := regression.NewPipeline(
		[]string{"a", "b"},
		[]float64{0, 0},
		[]float64{1, 1},
		make([]float64, regression.TermCount(2)),
		0,
	)
	require.NoError(t, err)

	_, err = housing.New(
		housing.WithSQLite(filepath.Join(t.TempDir(), "test.db")),
		housing.WithPipeline(p),
	)
	assert.Error(t, err)
}

func TestClient_StoreAndRecommendRoundTrip(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	for _, medv := range []float64{10, 20, 30} {
		_, err := client.Homes.Create(ctx, sampleParams(medv))
		require.NoError(t, err)
	}

	count, err := client.Homes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Converting a stored median value to display currency and asking
	// for the nearest home must return that record first.
	homes, err := client.Recommendation.Recommend(ctx, 20*service.DisplayCurrencyFactor, 1)
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, 20.0, homes[0].MedianValue())
}

func TestClient_PredictPrice_UsesEmbeddedModel(t *testing.T) {
	client := newClient(t)

	features := home.NewFeatures(6.5, 4.98, 6.0, 296, 15.3, 65.2, 2.31)
	price := client.Prediction.PredictPrice(features)

	raw := client.Pipeline().Predict(features.Vector())
	assert.Equal(t, raw*service.DisplayCurrencyFactor, price)
	assert.Greater(t, price, 0.0)
}

func TestClient_WithAPIKeys(t *testing.T) {
	client := newClient(t,
		housing.WithSQLite(filepath.Join(t.TempDir(), "test.db")),
		housing.WithAPIKeys("k1", "k2"),
	)

	assert.Equal(t, []string{"k1", "k2"}, client.APIKeys())
}
