package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/Akash-2201/Student-data-analysis/config"
	"github.com/Akash-2201/Student-data-analysis/models"
)

const reportKeyPrefix = "report:" // String prefix: report:{id} -> report JSON

// reportNamespace scopes content-derived report IDs
var reportNamespace = uuid.MustParse("6f1c0f4e-3a52-4d8e-9d0b-5b8e2f7c1a90")

// ErrReportNotFound is returned when a report ID is unknown or has expired
var ErrReportNotFound = errors.New("report not found")

// ReportID derives a stable ID from uploaded bytes; equal uploads share an ID
func ReportID(content []byte) string {
	return uuid.NewSHA1(reportNamespace, content).String()
}

// ReportCache keeps recently built reports in Redis for a limited time so the
// page that displays a report can fetch its charts and workbook again.
type ReportCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewReportCache creates a new ReportCache instance
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		Client: client,
		TTL:    ttl,
	}
}

// Helper to generate report key
func getReportKey(id string) string {
	return reportKeyPrefix + id
}

// Save stores a report under its ID, which must be set
func (s *ReportCache) Save(ctx context.Context, report *models.Report) error {
	if report == nil || report.ID == "" {
		return errors.New("report ID cannot be empty")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := s.Client.Set(ctx, getReportKey(report.ID), data, s.TTL).Err(); err != nil {
		slog.Error("Error caching report",
			slog.String("report_id", report.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to save report to Redis: %w", err)
	}
	return nil
}

// Get loads a cached report, ErrReportNotFound when missing or expired
func (s *ReportCache) Get(ctx context.Context, id string) (*models.Report, error) {
	data, err := s.Client.Get(ctx, getReportKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReportNotFound
		}
		slog.Error("Error getting report",
			slog.String("report_id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get report from Redis: %w", err)
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode cached report %s: %w", id, err)
	}
	return &report, nil
}

// Ping checks the Redis connection
func (s *ReportCache) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// InitializeRedisClient creates and tests a Redis client connection
func InitializeRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", cfg.Addr, err)
	}

	slog.Info("Successfully connected to Redis",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB))
	return rdb, nil
}
