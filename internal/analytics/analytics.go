// Package analytics holds the aggregation transforms behind the dashboard.
// Every transform is a pure function over an immutable dataset.Table: it
// allocates its result fresh on each call, never mutates the table, and is
// deterministic, so callers may run the transforms concurrently.
package analytics

import (
	"sort"

	"github.com/filmlens/filmlens/internal/dataset"
	"github.com/filmlens/filmlens/internal/domain"
)

// GenreCounts returns the number of rating rows per distinct genre, one
// entry per genre in first-seen row order. An empty table yields an empty
// slice.
func GenreCounts(t *dataset.Table) []domain.GenreCount {
	return countGenres(t, func(domain.Record) bool { return true })
}

// FiveStarGenreCounts returns per-genre counts restricted to rows rated at
// the top of the scale. A dataset with no five-star ratings yields an empty
// slice, which is a valid result rather than an error.
func FiveStarGenreCounts(t *dataset.Table) []domain.GenreCount {
	return countGenres(t, func(rec domain.Record) bool {
		return rec.Rating == domain.MaxRating
	})
}

func countGenres(t *dataset.Table, keep func(domain.Record) bool) []domain.GenreCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := 0; i < t.Len(); i++ {
		rec := t.At(i)
		if !keep(rec) {
			continue
		}
		if _, seen := counts[rec.Genre]; !seen {
			order = append(order, rec.Genre)
		}
		counts[rec.Genre]++
	}

	out := make([]domain.GenreCount, 0, len(order))
	for _, genre := range order {
		out = append(out, domain.GenreCount{Genre: genre, Count: counts[genre]})
	}
	return out
}

// YearlyMeanRatings returns the arithmetic mean rating per release year in
// ascending year order. Ascending order is part of the contract: the line
// chart consumes the sequence left to right. Years with no rows are absent.
func YearlyMeanRatings(t *dataset.Table) []domain.YearlyMean {
	type acc struct {
		sum float64
		n   int
	}
	byYear := make(map[int]*acc)
	for i := 0; i < t.Len(); i++ {
		rec := t.At(i)
		a, ok := byYear[rec.Year]
		if !ok {
			a = &acc{}
			byYear[rec.Year] = a
		}
		a.sum += rec.Rating
		a.n++
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]domain.YearlyMean, 0, len(years))
	for _, year := range years {
		a := byYear[year]
		out = append(out, domain.YearlyMean{
			Year:       year,
			MeanRating: a.sum / float64(a.n),
		})
	}
	return out
}

// TopMovies ranks movies by average rating. Movies with fewer than
// minRatings observations are excluded, the remainder are sorted by average
// descending, and the result is capped at topN entries. Equal averages are
// broken by title ascending so the ranking is deterministic. minRatings or
// topN exceeding the dataset simply shrink the result; they never error.
func TopMovies(t *dataset.Table, minRatings, topN int) []domain.MovieStat {
	if topN <= 0 {
		return []domain.MovieStat{}
	}
	if minRatings < 1 {
		minRatings = 1
	}

	type acc struct {
		sum float64
		n   int
	}
	byTitle := make(map[string]*acc)
	order := make([]string, 0)
	for i := 0; i < t.Len(); i++ {
		rec := t.At(i)
		a, ok := byTitle[rec.Title]
		if !ok {
			a = &acc{}
			byTitle[rec.Title] = a
			order = append(order, rec.Title)
		}
		a.sum += rec.Rating
		a.n++
	}

	stats := make([]domain.MovieStat, 0, len(order))
	for _, title := range order {
		a := byTitle[title]
		if a.n < minRatings {
			continue
		}
		stats = append(stats, domain.MovieStat{
			Title:       title,
			AvgRating:   a.sum / float64(a.n),
			RatingCount: a.n,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AvgRating != stats[j].AvgRating {
			return stats[i].AvgRating > stats[j].AvgRating
		}
		return stats[i].Title < stats[j].Title
	})

	if len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}
