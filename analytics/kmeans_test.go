package analytics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

func TestStandardizeMeanZeroStdOne(t *testing.T) {
	matrix := [][]float64{
		{20, 100, 3, 33.3},
		{45, 900, 12, 75},
		{70, 5000, 40, 125},
		{31, 250, 7, 35.7},
		{58, 2200, 25, 88},
	}

	out := Standardize(matrix)
	require.Len(t, out, len(matrix))

	dims := len(matrix[0])
	n := float64(len(matrix))
	for d := 0; d < dims; d++ {
		mean := 0.0
		for _, row := range out {
			mean += row[d]
		}
		mean /= n

		variance := 0.0
		for _, row := range out {
			variance += (row[d] - mean) * (row[d] - mean)
		}
		std := math.Sqrt(variance / n)

		assert.InDelta(t, 0, mean, 1e-9, "feature %d mean", d)
		assert.InDelta(t, 1, std, 1e-9, "feature %d std", d)
	}
}

func TestStandardizeZeroVarianceColumn(t *testing.T) {
	matrix := [][]float64{
		{5, 10},
		{5, 20},
		{5, 30},
	}

	out := Standardize(matrix)
	for _, row := range out {
		assert.Equal(t, 0.0, row[0])
	}
}

// well-separated natural groups must be recovered exactly
func TestClusterClientsWellSeparatedGroups(t *testing.T) {
	var profiles []ClientProfile
	groups := []struct {
		age    int
		total  float64
		count  int
		basket float64
	}{
		{22, 150, 3, 50},
		{45, 3000, 15, 200},
		{68, 20000, 60, 330},
	}
	id := 1
	for _, g := range groups {
		for i := 0; i < 3; i++ {
			profiles = append(profiles, ClientProfile{
				ClientID:         id,
				Age:              g.age + i,
				TotalPurchases:   g.total + float64(i)*10,
				TransactionCount: g.count + i,
				AverageBasket:    g.basket + float64(i),
			})
			id++
		}
	}

	rng := rand.New(rand.NewSource(1))
	result, err := ClusterClients(profiles, DefaultKMeansOptions(), rng)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 9)
	require.Len(t, result.Centroids, 3)

	// every client assigned to exactly one cluster in [0,2]
	for _, a := range result.Assignments {
		assert.GreaterOrEqual(t, a.Cluster, 0)
		assert.Less(t, a.Cluster, 3)
	}

	// each natural group of 3 lands in one cluster, and the three
	// groups land in three different clusters
	seen := map[int]bool{}
	for g := 0; g < 3; g++ {
		label := result.Assignments[g*3].Cluster
		for i := 1; i < 3; i++ {
			assert.Equal(t, label, result.Assignments[g*3+i].Cluster)
		}
		assert.False(t, seen[label], "two groups merged into cluster %d", label)
		seen[label] = true
	}

	for _, size := range result.Sizes {
		assert.Equal(t, 3, size)
	}
}

func TestClusterClientsDeterministicWithSeed(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var profiles []ClientProfile
	for i := 0; i < 40; i++ {
		profiles = append(profiles, ClientProfile{
			ClientID:         i + 1,
			Age:              18 + rng.Intn(58),
			TotalPurchases:   rng.Float64() * 10000,
			TransactionCount: 1 + rng.Intn(50),
			AverageBasket:    rng.Float64() * 400,
		})
	}

	first, err := ClusterClients(profiles, DefaultKMeansOptions(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := ClusterClients(profiles, DefaultKMeansOptions(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Centroids, second.Centroids)
	assert.Equal(t, first.Inertia, second.Inertia)
}

func TestClusterClientsInsufficientData(t *testing.T) {
	profiles := []ClientProfile{
		{ClientID: 1, Age: 30, TotalPurchases: 100, TransactionCount: 2, AverageBasket: 50},
		{ClientID: 2, Age: 40, TotalPurchases: 200, TransactionCount: 4, AverageBasket: 50},
	}

	_, err := ClusterClients(profiles, DefaultKMeansOptions(), rand.New(rand.NewSource(1)))
	var ide *InsufficientDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, 3, ide.Need)
	assert.Equal(t, 2, ide.Got)
}

func TestBuildClientProfiles(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		{ClientID: 1, ClientAge: 30, ClientSegment: warehouse.SegmentPremium, TotalAmount: 100},
		{ClientID: 1, ClientAge: 30, ClientSegment: warehouse.SegmentPremium, TotalAmount: 300},
		{ClientID: 2, ClientAge: 55, ClientSegment: warehouse.SegmentEconomy, TotalAmount: 40},
	}

	profiles, err := BuildClientProfiles(rows)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, 1, profiles[0].ClientID)
	assert.Equal(t, 400.0, profiles[0].TotalPurchases)
	assert.Equal(t, 2, profiles[0].TransactionCount)
	assert.Equal(t, 200.0, profiles[0].AverageBasket)
	assert.Equal(t, 40.0, profiles[1].AverageBasket)
}
