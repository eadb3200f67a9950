package colour

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"slices"
)

// KMeansExtractor implements color extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
// The seed fixes centroid initialisation so the same image always yields the
// same palette.
func NewKMeansExtractor(seed uint64) *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Swatch is an extracted colour and the share of sampled pixels it represents.
type Swatch struct {
	RGB    RGB
	Weight float64
}

// Extract extracts up to count colours from an image, most dominant first.
// Duplicate centroids are merged.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]Swatch, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("color count too large: %d (maximum: 256)", count)
	}

	pixels := e.samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// Get unique colors first.
	unique := make([]RGB, 0, len(pixels))
	seen := make(map[RGB]int)
	for _, p := range pixels {
		rgb := ToRGB(p)
		if _, ok := seen[rgb]; !ok {
			unique = append(unique, rgb)
		}
		seen[rgb]++
	}

	// If we want more colors than unique colors exist, return all unique colors.
	if count >= len(unique) {
		swatches := make([]Swatch, len(unique))
		for i, rgb := range unique {
			swatches[i] = Swatch{RGB: rgb, Weight: float64(seen[rgb]) / float64(len(pixels))}
		}
		sortSwatches(swatches)
		return swatches, nil
	}

	centroids, weights := e.kmeans(pixels, count)

	merged := make(map[RGB]int)
	swatches := make([]Swatch, 0, len(centroids))
	for i, c := range centroids {
		rgb := RGB{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B)}
		if idx, ok := merged[rgb]; ok {
			swatches[idx].Weight += weights[i]
			continue
		}
		merged[rgb] = len(swatches)
		swatches = append(swatches, Swatch{RGB: rgb, Weight: weights[i]})
	}
	sortSwatches(swatches)
	return swatches, nil
}

func sortSwatches(swatches []Swatch) {
	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
}

func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// point3D represents a point in 3D RGB color space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples pixels from the image.
// For large images, we sample a subset on a regular grid.
func (e *KMeansExtractor) samplePixels(img image.Image) []color.Color {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	if totalPixels <= e.maxSamples {
		pixels := make([]color.Color, 0, totalPixels)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, img.At(x, y))
			}
		}
		return pixels
	}

	step := max(int(math.Sqrt(float64(totalPixels)/float64(e.maxSamples))), 1)

	pixels := make([]color.Color, 0, e.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, img.At(x, y))
			if len(pixels) >= e.maxSamples {
				return pixels
			}
		}
	}

	return pixels
}

// kmeans performs k-means clustering on the pixel data.
// Returns centroids and their weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(pixels []color.Color, k int) ([]point3D, []float64) {
	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		rgb := ToRGB(c)
		points[i] = point3D{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
	}

	centroids := e.initializeCentroids(points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Fewer than 1% of assignments moved.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}

	return centroids, weights
}

// initializeCentroids picks starting centroids with k-means++.
func (e *KMeansExtractor) initializeCentroids(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.IntN(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := e.rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a point.
func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids recalculates centroid positions based on assigned points.
func (e *KMeansExtractor) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		} else {
			// Empty cluster - reinitialize randomly.
			centroids[i] = points[e.rng.IntN(len(points))]
		}
	}

	return centroids
}
