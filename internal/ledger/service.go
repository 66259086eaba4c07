// Package ledger implements the inventory ledger and the feeding transaction.
//
// Stock is never stored: it is the sum of the append-only inventory entries
// of a feed item. Consumption (feeding, wastage) re-validates stock after
// taking the ledger lock, so concurrent consumers are totally ordered and
// stock never goes negative through them. Purchases and adjustments are
// trusted inputs and are not stock-checked.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"zoo/internal/anomaly"
	"zoo/internal/platform/metrics"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/platform/sentinel"
	"zoo/pkg/requestcontext"
)

const defaultRecentLimit = 10

// Authorizer is the permission gate as seen by the ledger.
type Authorizer interface {
	Require(ctx context.Context, actor id.EmployeeID, animal id.AnimalID) error
}

// FeedingChecker runs the feeding anomaly check after a feeding commits.
type FeedingChecker interface {
	CheckFeeding(ctx context.Context, animal id.AnimalID) (*anomaly.Result, error)
}

type Service struct {
	store   Store
	gate    Authorizer
	checker FeedingChecker
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithFeedingChecker enables the post-commit feeding anomaly check.
func WithFeedingChecker(c FeedingChecker) Option {
	return func(s *Service) {
		s.checker = c
	}
}

func New(store Store, gate Authorizer, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("ledger store is required")
	}
	if gate == nil {
		return nil, fmt.Errorf("permission gate is required")
	}
	s := &Service{
		store:  store,
		gate:   gate,
		logger: slog.Default(),
		tracer: otel.Tracer("zoo/ledger"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Feed records that actor fed amount kg of feed to animal.
//
// The record and its paired ledger entry commit together or not at all. When
// stock is short the transaction rolls back and the error message carries the
// remaining quantity. The feeding anomaly check runs after commit and cannot
// undo the feeding.
func (s *Service) Feed(ctx context.Context, actor id.EmployeeID, animal id.AnimalID, feed id.FeedItemID, amount string) (*FeedResult, error) {
	qty, err := id.ParsePositiveQuantity(amount)
	if err != nil {
		s.countFeeding("invalid")
		return nil, err
	}
	if err := s.gate.Require(ctx, actor, animal); err != nil {
		s.countFeeding("forbidden")
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "ledger.feed", trace.WithAttributes(
		attribute.String("animal_id", string(animal)),
		attribute.String("feed_item_id", string(feed)),
		attribute.String("amount_kg", qty.String()),
	))
	defer span.End()

	info, err := s.store.Animal(ctx, animal)
	if err != nil {
		s.countFeeding("not_found")
		return nil, dErrors.FromStore(err, "animal not found")
	}

	start := time.Now()
	now := requestcontext.Now(ctx)
	var (
		result FeedResult
		item   *FeedItem
	)
	err = s.store.Update(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		if item, err = lockFeedItem(ctx, tx, feed); err != nil {
			return err
		}
		if err := tx.LockLedger(ctx); err != nil {
			return fmt.Errorf("lock ledger: %w", err)
		}
		stock, err := tx.Stock(ctx, feed)
		if err != nil {
			return fmt.Errorf("read stock: %w", err)
		}
		if stock.LessThan(qty) {
			return insufficientStock(stock)
		}

		rec := &FeedingRecord{
			AnimalID:   animal,
			FeedItemID: feed,
			Amount:     qty,
			At:         now,
			FedBy:      actor,
		}
		if err := tx.InsertFeedingRecord(ctx, rec); err != nil {
			return fmt.Errorf("insert feeding record: %w", err)
		}
		entry := &InventoryEntry{
			FeedItemID: feed,
			Quantity:   qty.Neg(),
			At:         now,
			Reason:     ReasonFeeding,
			FeedingID:  rec.ID,
			RecordedBy: actor,
		}
		if err := tx.InsertEntry(ctx, entry); err != nil {
			return fmt.Errorf("insert inventory entry: %w", err)
		}
		result = FeedResult{Record: rec, Entry: entry, Remaining: stock.Sub(qty)}
		return nil
	})
	if s.metrics != nil {
		s.metrics.ObserveFeedingTx(start)
	}
	if err != nil {
		err = dErrors.FromStore(err, "feeding failed")
		s.countFeeding(outcome(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "feeding rolled back")
		if !dErrors.HasCode(err, dErrors.CodeInsufficientStock) {
			s.logger.ErrorContext(ctx, "feeding transaction failed",
				"animal_id", animal,
				"feed_item_id", feed,
				"operator_id", actor,
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		return nil, err
	}
	s.countFeeding("success")
	span.SetAttributes(attribute.String("feeding_id", string(result.Record.ID)))

	result.Message = fmt.Sprintf("fed %s (%s) %s kg of %s, %s kg remaining",
		displayName(info), info.Species, id.FormatKg(qty), item.Name, id.FormatKg(result.Remaining))
	s.logger.InfoContext(ctx, "feeding recorded",
		"feeding_id", result.Record.ID,
		"animal_id", animal,
		"feed_item_id", feed,
		"amount_kg", qty.String(),
		"operator_id", actor,
	)

	if s.checker != nil {
		res, err := s.checker.CheckFeeding(ctx, animal)
		if err != nil {
			s.logger.WarnContext(ctx, "post-commit feeding anomaly check failed",
				"animal_id", animal,
				"feeding_id", result.Record.ID,
				"error", err,
			)
		} else {
			result.Anomaly = res
		}
	}
	return &result, nil
}

// Restock appends a purchase of amount kg.
func (s *Service) Restock(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, amount string) (*InventoryEntry, error) {
	qty, err := id.ParsePositiveQuantity(amount)
	if err != nil {
		return nil, err
	}
	return s.appendEntry(ctx, actor, feed, qty, ReasonPurchase)
}

// RecordWastage appends a wastage of amount kg. Like feeding, it fails when
// stock is short.
func (s *Service) RecordWastage(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, amount string) (*InventoryEntry, error) {
	qty, err := id.ParsePositiveQuantity(amount)
	if err != nil {
		return nil, err
	}
	return s.appendEntry(ctx, actor, feed, qty.Neg(), ReasonWastage)
}

// Adjust appends a signed stock correction, for example after a stock take.
func (s *Service) Adjust(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, delta string) (*InventoryEntry, error) {
	qty, err := id.ParseQuantity(delta)
	if err != nil {
		return nil, err
	}
	if qty.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "adjustment must not be zero")
	}
	return s.appendEntry(ctx, actor, feed, qty, ReasonAdjustment)
}

func (s *Service) appendEntry(ctx context.Context, actor id.EmployeeID, feed id.FeedItemID, qty decimal.Decimal, reason Reason) (*InventoryEntry, error) {
	entry := &InventoryEntry{
		FeedItemID: feed,
		Quantity:   qty,
		At:         requestcontext.Now(ctx),
		Reason:     reason,
		RecordedBy: actor,
	}
	err := s.store.Update(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := lockFeedItem(ctx, tx, feed); err != nil {
			return err
		}
		if err := tx.LockLedger(ctx); err != nil {
			return fmt.Errorf("lock ledger: %w", err)
		}
		if reason == ReasonWastage {
			stock, err := tx.Stock(ctx, feed)
			if err != nil {
				return fmt.Errorf("read stock: %w", err)
			}
			if stock.LessThan(qty.Neg()) {
				return insufficientStock(stock)
			}
		}
		if err := tx.InsertEntry(ctx, entry); err != nil {
			return fmt.Errorf("insert inventory entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, dErrors.FromStore(err, "stock update failed")
	}
	if s.metrics != nil {
		s.metrics.IncrementStockEntry(string(reason))
	}
	s.logger.InfoContext(ctx, "inventory entry recorded",
		"entry_id", entry.ID,
		"feed_item_id", feed,
		"reason", reason,
		"quantity_kg", qty.String(),
		"operator_id", actor,
	)
	return entry, nil
}

// StockReport lists the current stock of every feed item.
func (s *Service) StockReport(ctx context.Context) ([]StockLevel, error) {
	levels, err := s.store.StockLevels(ctx)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read stock levels")
	}
	return levels, nil
}

// RecentFeedings lists the latest feedings of animal, newest first.
func (s *Service) RecentFeedings(ctx context.Context, animal id.AnimalID, limit int) ([]FeedingRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	records, err := s.store.RecentFeedings(ctx, animal, limit)
	if err != nil {
		return nil, dErrors.FromStore(err, "failed to read feeding records")
	}
	return records, nil
}

func lockFeedItem(ctx context.Context, tx Tx, feed id.FeedItemID) (*FeedItem, error) {
	item, err := tx.LockFeedItem(ctx, feed)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "feed item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("lock feed item: %w", err)
	}
	return item, nil
}

func insufficientStock(stock decimal.Decimal) error {
	return dErrors.Wrap(sentinel.ErrInsufficientStock, dErrors.CodeInsufficientStock,
		fmt.Sprintf("insufficient stock, %s kg remaining", id.FormatKg(stock)))
}

func displayName(info *AnimalInfo) string {
	if info.Name != "" {
		return info.Name
	}
	return string(info.ID)
}

func outcome(err error) string {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInsufficientStock:
		return "insufficient_stock"
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeConflict:
		return "conflict"
	}
	return "error"
}

func (s *Service) countFeeding(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementFeeding(outcome)
	}
}
