package analytics

import (
	"math"
	"math/rand"
	"sort"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// ClientProfile is the per-client feature set fed to clustering.
type ClientProfile struct {
	ClientID         int     `json:"client_id"`
	ClientName       string  `json:"client_name"`
	Age              int     `json:"age"`
	Segment          string  `json:"segment"`
	TotalPurchases   float64 `json:"total_purchases"`
	TransactionCount int     `json:"transaction_count"`
	AverageBasket    float64 `json:"average_basket"`
}

// featureVector is the fixed 4-dimensional feature order used everywhere:
// age, total purchases, transaction count, average basket.
func (p ClientProfile) featureVector() []float64 {
	return []float64{
		float64(p.Age),
		p.TotalPurchases,
		float64(p.TransactionCount),
		p.AverageBasket,
	}
}

// ClusterAssignment maps one client to its cluster.
type ClusterAssignment struct {
	ClientID int `json:"client_id"`
	Cluster  int `json:"cluster"`
}

// ClusteringResult is the outcome of the standardization + k-means pipeline.
// Centroids live in standardized feature space. A cluster that empties during
// iteration keeps its previous centroid and reports size 0.
type ClusteringResult struct {
	Assignments []ClusterAssignment `json:"assignments"`
	Centroids   [][]float64         `json:"centroids"`
	Sizes       []int               `json:"sizes"`
	Inertia     float64             `json:"inertia"`
}

// KMeansOptions controls the clustering run.
type KMeansOptions struct {
	K             int
	Restarts      int
	MaxIterations int
}

// DefaultKMeansOptions matches the reference segmentation: 3 clusters, 25
// random restarts, capped at 300 Lloyd iterations.
func DefaultKMeansOptions() KMeansOptions {
	return KMeansOptions{K: 3, Restarts: 25, MaxIterations: 300}
}

// BuildClientProfiles folds the warehouse table into one ClientProfile per
// client seen in the input, sorted by client id.
func BuildClientProfiles(rows []warehouse.EnrichedSale) ([]ClientProfile, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("client profiles")
	}

	acc := make(map[int]*ClientProfile)
	for _, row := range rows {
		p, ok := acc[row.ClientID]
		if !ok {
			p = &ClientProfile{
				ClientID:   row.ClientID,
				ClientName: row.ClientName,
				Age:        row.ClientAge,
				Segment:    row.ClientSegment,
			}
			acc[row.ClientID] = p
		}
		p.TotalPurchases += row.TotalAmount
		p.TransactionCount++
	}

	profiles := make([]ClientProfile, 0, len(acc))
	for _, p := range acc {
		p.AverageBasket = p.TotalPurchases / float64(p.TransactionCount)
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ClientID < profiles[j].ClientID })

	return profiles, nil
}

// Standardize z-scores each feature column independently: (x-μ)/σ with the
// sample mean and standard deviation of that column. A zero-variance column
// maps to 0 for every row.
func Standardize(matrix [][]float64) [][]float64 {
	if len(matrix) == 0 {
		return nil
	}

	dims := len(matrix[0])
	n := float64(len(matrix))

	means := make([]float64, dims)
	for _, row := range matrix {
		for d, v := range row {
			means[d] += v
		}
	}
	for d := range means {
		means[d] /= n
	}

	stds := make([]float64, dims)
	for _, row := range matrix {
		for d, v := range row {
			diff := v - means[d]
			stds[d] += diff * diff
		}
	}
	for d := range stds {
		stds[d] = math.Sqrt(stds[d] / n)
	}

	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		out[i] = make([]float64, dims)
		for d, v := range row {
			if stds[d] == 0 {
				out[i][d] = 0
				continue
			}
			out[i][d] = (v - means[d]) / stds[d]
		}
	}

	return out
}

// ClusterClients standardizes the client feature matrix and partitions it
// with k-means. The rng drives centroid seeding across restarts; the same rng
// state and input always produce the same result.
func ClusterClients(profiles []ClientProfile, opts KMeansOptions, rng *rand.Rand) (*ClusteringResult, error) {
	if len(profiles) < opts.K {
		return nil, NewInsufficientDataError("clustering", opts.K, len(profiles))
	}

	matrix := make([][]float64, len(profiles))
	for i, p := range profiles {
		matrix[i] = p.featureVector()
	}

	best := kMeans(Standardize(matrix), opts, rng)

	assignments := make([]ClusterAssignment, len(profiles))
	for i, p := range profiles {
		assignments[i] = ClusterAssignment{ClientID: p.ClientID, Cluster: best.labels[i]}
	}

	sizes := make([]int, opts.K)
	for _, label := range best.labels {
		sizes[label]++
	}

	return &ClusteringResult{
		Assignments: assignments,
		Centroids:   best.centroids,
		Sizes:       sizes,
		Inertia:     best.inertia,
	}, nil
}

type kMeansRun struct {
	labels    []int
	centroids [][]float64
	inertia   float64
}

// kMeans runs Lloyd's algorithm with multiple random restarts and keeps the
// restart with the lowest inertia. Lloyd only finds a local optimum, so
// results are only comparable across runs with the same restart count and
// rng seed.
func kMeans(points [][]float64, opts KMeansOptions, rng *rand.Rand) kMeansRun {
	best := kMeansRun{inertia: math.Inf(1)}
	for r := 0; r < opts.Restarts; r++ {
		run := lloyd(points, opts.K, opts.MaxIterations, rng)
		if run.inertia < best.inertia {
			best = run
		}
	}
	return best
}

func lloyd(points [][]float64, k, maxIterations int, rng *rand.Rand) kMeansRun {
	dims := len(points[0])

	// Seed centroids from k distinct points.
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centroids[i] = append([]float64(nil), points[idx]...)
	}

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if nearest != labels[i] {
				labels[i] = nearest
				changed = true
			}
		}
		if !changed {
			break
		}

		// Recompute each centroid as the mean of its members. An empty
		// cluster keeps its previous centroid.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, point := range points {
			c := labels[i]
			counts[c]++
			for d, v := range point {
				sums[c][d] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for d := range centroids[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	inertia := 0.0
	for i, point := range points {
		inertia += squaredDistance(point, centroids[labels[i]])
	}

	return kMeansRun{labels: labels, centroids: centroids, inertia: inertia}
}

// nearestCentroid returns the index of the closest centroid, breaking
// distance ties toward the lowest index.
func nearestCentroid(point []float64, centroids [][]float64) int {
	nearest := 0
	minDist := squaredDistance(point, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := squaredDistance(point, centroids[c]); d < minDist {
			minDist = d
			nearest = c
		}
	}
	return nearest
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return sum
}
