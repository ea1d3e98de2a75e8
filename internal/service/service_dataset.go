package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

// Header substrings that locate each metric column, matched
// case-insensitively against the first row. The first matching column wins.
const (
	dateColumnHint         = "date"
	viewsColumnHint        = "view"
	interactionsColumnHint = "interact"
	followsColumnHint      = "follow"
	clicksColumnHint       = "click"
	reachColumnHint        = "reach"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

type datasetService struct {
	fileRepository store.FileRepository
	fileStorage    store.FileStorage

	logger *logger.Logger
}

func NewDatasetService(fileRepository store.FileRepository, fileStorage store.FileStorage, logger *logger.Logger) DatasetService {
	return &datasetService{
		fileRepository: fileRepository,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// Summarize parses the stored CSV export fileID into daily statistics,
// totals and the change between the two most recent years.
func (s *datasetService) Summarize(ctx context.Context, fileID int64) (models.DatasetSummary, error) {
	log := logger.FromContext(ctx)

	file, err := s.fileRepository.FindFileByID(ctx, fileID)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.DatasetSummary{}, ErrFileNotFound
	}
	if err != nil {
		return models.DatasetSummary{}, fmt.Errorf("error loading file record: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !models.CSVKind.Matches(ext, models.NormalizeMIMEType(file.MIMEType)) {
		return models.DatasetSummary{}, ErrNotCSV
	}

	content, err := s.fileStorage.Open(ctx, file.Filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("func", "*datasetService.Summarize").Int64("file_id", fileID).Msg("dataset record without file on disk")
		return models.DatasetSummary{}, ErrFileNotFound
	}
	if err != nil {
		return models.DatasetSummary{}, fmt.Errorf("error opening dataset: %w", err)
	}
	defer content.Close()

	stats, err := parseDailyStats(content)
	if err != nil {
		log.Info().Err(err).Str("func", "*datasetService.Summarize").Int64("file_id", fileID).Msg("dataset could not be parsed")
		return models.DatasetSummary{}, err
	}

	summary := summarizeDailyStats(stats)
	summary.FileID = file.FileID
	summary.OriginalName = file.OriginalName

	return summary, nil
}

// parseDailyStats reads a metrics export. Cells that do not hold a number
// count as zero; missing columns leave the metric at zero.
func parseDailyStats(r io.Reader) ([]models.DailyStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.DailyStats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotCSV, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var (
		dateCol         = findColumn(header, dateColumnHint)
		viewsCol        = findColumn(header, viewsColumnHint)
		interactionsCol = findColumn(header, interactionsColumnHint)
		followsCol      = findColumn(header, followsColumnHint)
		clicksCol       = findColumn(header, clicksColumnHint)
		reachCol        = findColumn(header, reachColumnHint)
	)

	stats := make([]models.DailyStats, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotCSV, err)
		}
		if isEmptyRecord(record) {
			continue
		}

		stats = append(stats, models.DailyStats{
			Date:         strings.TrimSpace(cell(record, dateCol)),
			Views:        parseCount(cell(record, viewsCol)),
			Interactions: parseCount(cell(record, interactionsCol)),
			Follows:      parseCount(cell(record, followsCol)),
			LinkClicks:   parseCount(cell(record, clicksCol)),
			Reach:        parseCount(cell(record, reachCol)),
		})
	}

	return stats, nil
}

func summarizeDailyStats(stats []models.DailyStats) models.DatasetSummary {
	summary := models.DatasetSummary{DailyStats: stats}

	byYear := make(map[int]*models.DailyStats)
	for _, day := range stats {
		summary.Totals.Add(day)

		year := parseYear(day.Date)
		if year == 0 {
			continue
		}
		if byYear[year] == nil {
			byYear[year] = &models.DailyStats{}
		}
		byYear[year].Add(day)
		summary.CurrentYear = max(summary.CurrentYear, year)
	}

	if summary.CurrentYear == 0 {
		return summary
	}
	summary.PreviousYear = summary.CurrentYear - 1

	current := byYear[summary.CurrentYear]
	previous := byYear[summary.PreviousYear]
	if previous == nil {
		previous = &models.DailyStats{}
	}

	summary.YoYChanges = models.MetricChanges{
		Views:        yoyChange(current.Views, previous.Views),
		Interactions: yoyChange(current.Interactions, previous.Interactions),
		Follows:      yoyChange(current.Follows, previous.Follows),
		LinkClicks:   yoyChange(current.LinkClicks, previous.LinkClicks),
		Reach:        yoyChange(current.Reach, previous.Reach),
	}

	return summary
}

// yoyChange is the percentage change from previous to current, or 0 when
// there is no previous value.
func yoyChange(current, previous int64) float64 {
	if previous <= 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

func findColumn(header []string, hint string) int {
	for i, name := range header {
		if strings.Contains(strings.ToLower(name), hint) {
			return i
		}
	}
	return -1
}

func cell(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}

func isEmptyRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// parseCount accepts integers, decimals (truncated) and thousands
// separators. Anything else, including values outside the int64 range, is 0.
func parseCount(value string) int64 {
	value = strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(value))
	if value == "" {
		return 0
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	// the range check also rejects NaN and ±Inf
	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return 0
}

func parseYear(date string) int {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year()
		}
	}
	return 0
}
