package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/filmlens/filmlens/internal/analytics"
	"github.com/filmlens/filmlens/internal/domain"
)

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type genreCountResponse struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type genreCountListResponse struct {
	Items []genreCountResponse `json:"items"`
}

type yearlyMeanResponse struct {
	Year       int     `json:"year"`
	MeanRating float64 `json:"meanRating"`
}

type yearlyMeanListResponse struct {
	Items []yearlyMeanResponse `json:"items"`
}

type movieStatResponse struct {
	Title       string  `json:"title"`
	AvgRating   float64 `json:"avgRating"`
	RatingCount int     `json:"ratingCount"`
}

type topMoviesResponse struct {
	MinRatings int                 `json:"minRatings"`
	TopN       int                 `json:"topN"`
	Items      []movieStatResponse `json:"items"`
}

func (s *Server) handleGenreCounts(w http.ResponseWriter, r *http.Request) {
	counts := analytics.GenreCounts(s.table)
	s.respondJSON(w, http.StatusOK, toGenreCountList(counts))
}

func (s *Server) handleFiveStarGenreCounts(w http.ResponseWriter, r *http.Request) {
	counts := analytics.FiveStarGenreCounts(s.table)
	s.respondJSON(w, http.StatusOK, toGenreCountList(counts))
}

func (s *Server) handleYearlyMeanRatings(w http.ResponseWriter, r *http.Request) {
	means := analytics.YearlyMeanRatings(s.table)

	items := make([]yearlyMeanResponse, 0, len(means))
	for _, m := range means {
		items = append(items, yearlyMeanResponse{Year: m.Year, MeanRating: m.MeanRating})
	}
	s.respondJSON(w, http.StatusOK, yearlyMeanListResponse{Items: items})
}

func (s *Server) handleTopMovies(w http.ResponseWriter, r *http.Request) {
	minRatings, topN, err := s.buildTopMoviesParams(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	stats := analytics.TopMovies(s.table, minRatings, topN)

	items := make([]movieStatResponse, 0, len(stats))
	for _, stat := range stats {
		items = append(items, movieStatResponse{
			Title:       stat.Title,
			AvgRating:   stat.AvgRating,
			RatingCount: stat.RatingCount,
		})
	}
	s.respondJSON(w, http.StatusOK, topMoviesResponse{
		MinRatings: minRatings,
		TopN:       topN,
		Items:      items,
	})
}

// buildTopMoviesParams parses the ranking parameters, falling back to the
// configured defaults when a parameter is absent.
func (s *Server) buildTopMoviesParams(query url.Values) (minRatings, topN int, err error) {
	minRatings = s.cfg.TopMoviesMinRatings
	topN = s.cfg.TopMoviesTopN

	if val := strings.TrimSpace(query.Get("minRatings")); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("minRatings must be a positive integer")
		}
		minRatings = parsed
	}
	if val := strings.TrimSpace(query.Get("topN")); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("topN must be a positive integer")
		}
		topN = parsed
	}
	return minRatings, topN, nil
}

// toGenreCountList re-sorts counts ascending for display. The transform
// itself guarantees uniqueness, not order; the bar chart and treemap both
// want smallest-to-largest. Equal counts fall back to genre name so the
// payload is stable across requests.
func toGenreCountList(counts []domain.GenreCount) genreCountListResponse {
	sorted := make([]domain.GenreCount, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count < sorted[j].Count
		}
		return sorted[i].Genre < sorted[j].Genre
	})

	items := make([]genreCountResponse, 0, len(sorted))
	for _, c := range sorted {
		items = append(items, genreCountResponse{Genre: c.Genre, Count: c.Count})
	}
	return genreCountListResponse{Items: items}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Printf("failed to encode response: %v", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
