package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/recommender"
)

const (
	ratingsFile = "rating.csv"
	animeFile   = "anime.csv"
)

// csvRatingRepository reads the rating and catalog dumps from flat CSV files
// under dataDir. Malformed rows are skipped with a log line; cleaning proper
// (sentinels, duplicates) belongs to the filter pipeline.
type csvRatingRepository struct {
	dataDir string
}

func NewCSVRatingRepository(dataDir string) domain.RatingSourceRepository {
	return &csvRatingRepository{dataDir: dataDir}
}

func (r *csvRatingRepository) LoadRatings(ctx context.Context) ([]recommender.Rating, error) {
	path := filepath.Join(r.dataDir, ratingsFile)
	var out []recommender.Rating
	err := readCSV(ctx, path, []string{"user_id", "anime_id", "rating"}, func(cols []int, rec []string) {
		userID, err1 := strconv.Atoi(rec[cols[0]])
		animeID, err2 := strconv.Atoi(rec[cols[1]])
		score, err3 := strconv.ParseFloat(rec[cols[2]], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			log.Printf("skipping malformed rating row %v", rec)
			return
		}
		out = append(out, recommender.Rating{UserID: userID, AnimeID: animeID, Score: score})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *csvRatingRepository) LoadItems(ctx context.Context) ([]recommender.Item, error) {
	path := filepath.Join(r.dataDir, animeFile)
	var out []recommender.Item
	err := readCSV(ctx, path, []string{"anime_id", "name"}, func(cols []int, rec []string) {
		animeID, err := strconv.Atoi(rec[cols[0]])
		if err != nil {
			log.Printf("skipping malformed anime row %v", rec)
			return
		}
		out = append(out, recommender.Item{AnimeID: animeID, Name: rec[cols[1]]})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// readCSV streams path row by row, locating the wanted header columns by name
// so extra catalog columns (genre, episodes, ...) are ignored.
func readCSV(ctx context.Context, path string, want []string, row func(cols []int, rec []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	cols := make([]int, len(want))
	for i, name := range want {
		cols[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				cols[i] = j
				break
			}
		}
		if cols[i] == -1 {
			return fmt.Errorf("%s: missing column %q", path, name)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			log.Printf("skipping unreadable row in %s: %v", path, err)
			continue
		}
		short := false
		for _, c := range cols {
			if c >= len(rec) {
				short = true
				break
			}
		}
		if short {
			continue
		}
		row(cols, rec)
	}
}
