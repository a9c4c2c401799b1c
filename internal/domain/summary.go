package domain

// GenreCount is the number of rating rows observed for a genre. Unique by
// genre within a result set.
type GenreCount struct {
	Genre string
	Count int
}

// YearlyMean is the arithmetic mean rating across all rows for one release
// year. Unique by year within a result set.
type YearlyMean struct {
	Year       int
	MeanRating float64
}

// MovieStat provides average and count for a movie's ratings.
type MovieStat struct {
	Title       string
	AvgRating   float64
	RatingCount int
}
