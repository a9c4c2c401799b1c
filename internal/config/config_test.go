package config

import (
	"strings"
	"testing"
)

func setRequiredEnvs(t *testing.T) {
	t.Helper()
	t.Setenv("DATA_PATH", "data/movie_ratings.csv")
}

func TestLoadSuccess(t *testing.T) {
	setRequiredEnvs(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("TOP_MOVIES_MIN_RATINGS", "25")
	t.Setenv("TOP_MOVIES_TOP_N", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DataPath != "data/movie_ratings.csv" {
		t.Fatalf("DataPath = %s, want data/movie_ratings.csv", cfg.DataPath)
	}
	if cfg.ReadTimeoutSecs != 30 {
		t.Fatalf("ReadTimeoutSecs = %d, want 30", cfg.ReadTimeoutSecs)
	}
	if cfg.TopMoviesMinRatings != 25 {
		t.Fatalf("TopMoviesMinRatings = %d, want 25", cfg.TopMoviesMinRatings)
	}
	if cfg.TopMoviesTopN != 10 {
		t.Fatalf("TopMoviesTopN = %d, want 10", cfg.TopMoviesTopN)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnvs(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.TopMoviesMinRatings != 50 {
		t.Fatalf("TopMoviesMinRatings = %d, want 50", cfg.TopMoviesMinRatings)
	}
	if cfg.TopMoviesAltMinRatings != 150 {
		t.Fatalf("TopMoviesAltMinRatings = %d, want 150", cfg.TopMoviesAltMinRatings)
	}
	if cfg.TopMoviesTopN != 5 {
		t.Fatalf("TopMoviesTopN = %d, want 5", cfg.TopMoviesTopN)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr string
	}{
		{
			name: "missing data path",
			setup: func(t *testing.T) {
				t.Setenv("DATA_PATH", "")
			},
			wantErr: "DATA_PATH",
		},
		{
			name: "non-positive min ratings",
			setup: func(t *testing.T) {
				setRequiredEnvs(t)
				t.Setenv("TOP_MOVIES_MIN_RATINGS", "0")
			},
			wantErr: "TOP_MOVIES_MIN_RATINGS",
		},
		{
			name: "non-positive top n",
			setup: func(t *testing.T) {
				setRequiredEnvs(t)
				t.Setenv("TOP_MOVIES_TOP_N", "-1")
			},
			wantErr: "TOP_MOVIES_TOP_N",
		},
		{
			name: "non-positive read timeout",
			setup: func(t *testing.T) {
				setRequiredEnvs(t)
				t.Setenv("SERVER_READ_TIMEOUT", "0")
			},
			wantErr: "SERVER_READ_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
