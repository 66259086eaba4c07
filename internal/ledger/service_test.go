package ledger_test

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zoo/internal/anomaly"
	"zoo/internal/ledger"
	"zoo/internal/ledger/mocks"
	"zoo/internal/ledger/store"
	id "zoo/pkg/domain"
	dErrors "zoo/pkg/domain-errors"
	"zoo/pkg/requestcontext"
	"zoo/pkg/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	gate    *mocks.MockAuthorizer
	store   *store.InMemoryStore
	service *ledger.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 5, 4, 7, 30, 0, 0, time.UTC))
	s.ctrl = gomock.NewController(s.T())
	s.gate = mocks.NewMockAuthorizer(s.ctrl)
	s.store = store.NewInMemory()
	s.store.AddFeedItem(ledger.FeedItem{ID: "F1", Name: "Beef", Category: id.FeedCategoryMeat})
	s.store.AddFeedItem(ledger.FeedItem{ID: "F2", Name: "Bamboo", Category: id.FeedCategoryPlant})
	s.store.AddAnimal(ledger.AnimalInfo{ID: "A1", Name: "Bao", Species: "Tiger"})
	svc, err := ledger.New(s.store, s.gate)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) allowAll() {
	s.gate.EXPECT().Require(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *ServiceSuite) stock(feed id.FeedItemID) decimal.Decimal {
	levels, err := s.service.StockReport(s.ctx)
	s.Require().NoError(err)
	for _, l := range levels {
		if l.ID == feed {
			return l.Stock
		}
	}
	s.FailNow("feed item missing from stock report", feed)
	return decimal.Zero
}

// assertPaired checks every committed feeding has exactly one feeding entry
// carrying the negated amount.
func (s *ServiceSuite) assertPaired() {
	entries := s.store.Entries()
	for _, rec := range s.store.Records() {
		var matched []ledger.InventoryEntry
		for _, e := range entries {
			if e.Reason == ledger.ReasonFeeding && e.FeedingID == rec.ID {
				matched = append(matched, e)
			}
		}
		s.Require().Len(matched, 1, "feeding %s", rec.ID)
		s.True(matched[0].Quantity.Equal(rec.Amount.Neg()), "feeding %s", rec.ID)
	}
}

// =============================================================================
// Feeding transaction
// =============================================================================

func (s *ServiceSuite) TestFeedingScenario() {
	s.allowAll()
	t := s.T()

	testutil.Given(t, "F1 starts with 10.0 kg", func(t *testing.T) {
		_, err := s.service.Restock(s.ctx, "E001", "F1", "10.0")
		s.Require().NoError(err)
	})

	testutil.When(t, "6.0 kg is fed", func(t *testing.T) {
		res, err := s.service.Feed(s.ctx, "E002", "A1", "F1", "6.0")
		s.Require().NoError(err)
		s.Equal("4", res.Remaining.String())
		s.Equal("fed Bao (Tiger) 6.0 kg of Beef, 4.0 kg remaining", res.Message)
		s.Equal(id.RecordID("1"), res.Record.ID)
		s.Equal(ledger.ReasonFeeding, res.Entry.Reason)
		s.Equal(res.Record.ID, res.Entry.FeedingID)
	})

	testutil.Then(t, "a second 6.0 kg feeding fails and changes nothing", func(t *testing.T) {
		_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", "6.0")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInsufficientStock))
		s.Equal("insufficient stock, 4.0 kg remaining", dErrors.UserMessage(err))

		s.True(s.stock("F1").Equal(decimal.RequireFromString("4.0")))
		s.Len(s.store.Records(), 1)
		s.Len(s.store.Entries(), 2)
	})

	s.assertPaired()
}

func (s *ServiceSuite) TestFeedingIsDecimalExact() {
	s.allowAll()
	_, err := s.service.Restock(s.ctx, "E001", "F1", "0.3")
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", "0.1")
		s.Require().NoError(err, "feeding %d", i)
	}
	s.True(s.stock("F1").IsZero())

	_, err = s.service.Feed(s.ctx, "E002", "A1", "F1", "0.001")
	s.True(dErrors.HasCode(err, dErrors.CodeInsufficientStock))
	s.Equal("insufficient stock, 0.0 kg remaining", dErrors.UserMessage(err))
}

func (s *ServiceSuite) TestFeedRejectsBadAmountsBeforeTheGate() {
	// No gate expectation: gomock fails the test if Require is called.
	for _, amount := range []string{"0", "-1", "abc", "", "1.0001"} {
		_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", amount)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "amount %q", amount)
	}
	s.Empty(s.store.Entries())
}

func (s *ServiceSuite) TestFeedReturnsGateReasonUnchanged() {
	s.gate.EXPECT().Require(gomock.Any(), id.EmployeeID("E002"), id.AnimalID("A1")).
		Return(dErrors.New(dErrors.CodeForbidden, "not on duty for this animal"))

	_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", "1")
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	s.Equal("not on duty for this animal", dErrors.UserMessage(err))
	s.Empty(s.store.Records())
}

func (s *ServiceSuite) TestFeedUnknownFeedItemAndAnimal() {
	s.allowAll()

	_, err := s.service.Feed(s.ctx, "E002", "A1", "F9", "1")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("feed item not found", dErrors.UserMessage(err))

	_, err = s.service.Feed(s.ctx, "E002", "A9", "F1", "1")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestFailedEntryInsertRollsBackRecord() {
	s.allowAll()
	_, err := s.service.Restock(s.ctx, "E001", "F1", "10")
	s.Require().NoError(err)

	failing := &failingStore{InMemoryStore: s.store, failEntries: true}
	svc, err := ledger.New(failing, s.gate)
	s.Require().NoError(err)

	_, err = svc.Feed(s.ctx, "E002", "A1", "F1", "2")
	s.Require().Error(err)
	s.Equal("internal error", dErrors.UserMessage(err))
	s.Empty(s.store.Records(), "record without its entry must not commit")
	s.Len(s.store.Entries(), 1)
	s.True(s.stock("F1").Equal(decimal.NewFromInt(10)))
}

func (s *ServiceSuite) TestConcurrentFeedingsNeverOverdraw() {
	s.allowAll()
	const (
		attempts = 25
		enough   = 10
	)
	_, err := s.service.Restock(s.ctx, "E001", "F1", "10")
	s.Require().NoError(err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		shortages int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", "1.0")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case dErrors.HasCode(err, dErrors.CodeInsufficientStock):
				shortages++
			}
		}()
	}
	wg.Wait()

	s.Equal(enough, successes)
	s.Equal(attempts-enough, shortages)
	s.True(s.stock("F1").IsZero())
	s.Len(s.store.Records(), enough)
	s.assertPaired()

	seen := map[id.RecordID]bool{}
	for _, rec := range s.store.Records() {
		s.False(seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func (s *ServiceSuite) TestPostCommitCheckResult() {
	s.allowAll()
	checker := mocks.NewMockFeedingChecker(s.ctrl)
	svc, err := ledger.New(s.store, s.gate, ledger.WithFeedingChecker(checker))
	s.Require().NoError(err)
	_, err = svc.Restock(s.ctx, "E001", "F1", "10")
	s.Require().NoError(err)

	s.Run("anomaly result is attached", func() {
		checker.EXPECT().CheckFeeding(gomock.Any(), id.AnimalID("A1")).
			Return(&anomaly.Result{Verdict: anomaly.VerdictAnomaly, Message: "feeding anomaly +50.0%"}, nil)
		res, err := svc.Feed(s.ctx, "E002", "A1", "F1", "1")
		s.Require().NoError(err)
		s.Require().NotNil(res.Anomaly)
		s.True(res.Anomaly.IsAnomaly())
	})

	s.Run("check failure does not undo the feeding", func() {
		checker.EXPECT().CheckFeeding(gomock.Any(), id.AnimalID("A1")).
			Return(nil, errors.New("event store down"))
		res, err := svc.Feed(s.ctx, "E002", "A1", "F1", "1")
		s.Require().NoError(err)
		s.Nil(res.Anomaly)
		s.Len(s.store.Records(), 2)
	})
}

// =============================================================================
// Other ledger entries
// =============================================================================

func (s *ServiceSuite) TestWastageIsStockChecked() {
	_, err := s.service.Restock(s.ctx, "E001", "F2", "5")
	s.Require().NoError(err)

	_, err = s.service.RecordWastage(s.ctx, "E001", "F2", "5.5")
	s.True(dErrors.HasCode(err, dErrors.CodeInsufficientStock))

	entry, err := s.service.RecordWastage(s.ctx, "E001", "F2", "1.5")
	s.Require().NoError(err)
	s.Equal(ledger.ReasonWastage, entry.Reason)
	s.True(entry.Quantity.Equal(decimal.RequireFromString("-1.5")))
	s.True(s.stock("F2").Equal(decimal.RequireFromString("3.5")))
}

func (s *ServiceSuite) TestAdjustIsTrusted() {
	_, err := s.service.Adjust(s.ctx, "E001", "F2", "0")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	entry, err := s.service.Adjust(s.ctx, "E001", "F2", "-2")
	s.Require().NoError(err)
	s.Equal(ledger.ReasonAdjustment, entry.Reason)
	s.True(s.stock("F2").Equal(decimal.NewFromInt(-2)))
}

func (s *ServiceSuite) TestRestockValidation() {
	_, err := s.service.Restock(s.ctx, "E001", "F1", "-4")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.Restock(s.ctx, "E001", "F9", "4")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestOutOfRangeAmountsNeverReachTheLedger() {
	// No gate expectation: a rejected amount must not reach the permission check.
	for _, amount := range []string{"1e99999999", "1e-99999999", "1000000000", "1e10"} {
		_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", amount)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "feed %q", amount)
		s.Equal("quantity is out of range", dErrors.UserMessage(err), "feed %q", amount)

		_, err = s.service.Restock(s.ctx, "E001", "F1", amount)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "restock %q", amount)

		_, err = s.service.Adjust(s.ctx, "E001", "F1", "-"+amount)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "adjust -%q", amount)
	}
	s.Empty(s.store.Entries())
	s.Empty(s.store.Records())
}

func (s *ServiceSuite) TestRecentFeedingsNewestFirst() {
	s.allowAll()
	_, err := s.service.Restock(s.ctx, "E001", "F1", "10")
	s.Require().NoError(err)
	for _, amount := range []string{"1", "2", "3"} {
		_, err := s.service.Feed(s.ctx, "E002", "A1", "F1", amount)
		s.Require().NoError(err)
	}

	records, err := s.service.RecentFeedings(s.ctx, "A1", 2)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(id.RecordID("3"), records[0].ID)
	s.Equal(id.RecordID("2"), records[1].ID)
}

// failingStore wraps the in-memory store and fails inventory inserts.
type failingStore struct {
	*store.InMemoryStore
	failEntries bool
}

func (f *failingStore) Update(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	return f.InMemoryStore.Update(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return fn(ctx, &failingTx{Tx: tx, failEntries: f.failEntries})
	})
}

type failingTx struct {
	ledger.Tx
	failEntries bool
}

func (t *failingTx) InsertEntry(ctx context.Context, entry *ledger.InventoryEntry) error {
	if t.failEntries {
		return errors.New("disk full")
	}
	return t.Tx.InsertEntry(ctx, entry)
}
