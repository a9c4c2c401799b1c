package analytics

import (
	"fmt"
	"testing"

	"github.com/filmlens/filmlens/internal/dataset"
	"github.com/filmlens/filmlens/internal/domain"
)

func benchTable(rows int) *dataset.Table {
	genres := []string{"Action", "Animation", "Comedy", "Drama", "Horror", "Sci-Fi"}
	records := make([]domain.Record, 0, rows)
	for i := 0; i < rows; i++ {
		records = append(records, domain.Record{
			Title:  fmt.Sprintf("Movie %d", i%500),
			Genre:  genres[i%len(genres)],
			Rating: float64(i%10+1) / 2,
			Year:   1980 + i%40,
		})
	}
	return dataset.NewTable(records)
}

func BenchmarkGenreCounts(b *testing.B) {
	table := benchTable(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if counts := GenreCounts(table); len(counts) == 0 {
			b.Fatal("expected non-empty counts")
		}
	}
}

func BenchmarkYearlyMeanRatings(b *testing.B) {
	table := benchTable(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if means := YearlyMeanRatings(table); len(means) == 0 {
			b.Fatal("expected non-empty means")
		}
	}
}

func BenchmarkTopMovies(b *testing.B) {
	table := benchTable(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stats := TopMovies(table, 50, 5); len(stats) == 0 {
			b.Fatal("expected non-empty stats")
		}
	}
}
