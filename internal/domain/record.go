package domain

// MaxRating is the top of the rating scale. A rating equal to MaxRating is
// a "five-star" observation.
const MaxRating = 5.0

// Record represents a single rating observation: one user's rating of one
// movie, with the movie's genre and release year denormalized onto the row.
type Record struct {
	Title  string
	Genre  string
	Rating float64
	Year   int
}
