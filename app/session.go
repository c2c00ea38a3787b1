package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"simple-bank/domain"
	"simple-bank/events"
	"simple-bank/shared"
	"simple-bank/store"
)

// Session owns the current account for one run. Execute is serialized so
// transactions and journal entries keep the order operations were submitted in.
type Session struct {
	mu      sync.Mutex
	id      string
	account domain.BankAccount
	version int

	ops     OperationTable
	journal store.EventStore
	logger  *slog.Logger
}

type SessionOption func(*Session)

// WithClock sets the time source for the session's account.
func WithClock(clock shared.Clock) SessionOption {
	return func(s *Session) { s.account = domain.NewBankAccount(domain.WithClock(clock)) }
}

func WithOperations(ops OperationTable) SessionOption {
	return func(s *Session) { s.ops = ops }
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSession(journal store.EventStore, opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.NewString(),
		account: domain.NewBankAccount(),
		ops:     NewOperationTable(DefaultCurrencySymbol),
		journal: journal,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	if s.journal == nil {
		s.journal = store.NewInMemoryEventStore(s.logger)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Account() domain.BankAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

// Execute dispatches one operation against the held account. On error the held
// account is left as it was.
func (s *Session) Execute(sel Selector, amount *domain.Money) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.account.History().Len()

	result, err := s.ops.Dispatch(sel, s.account, amount)
	if err != nil {
		s.logger.Info("operation rejected", "op", string(sel), "amount", amountAttr(amount), "error", err)
		return Result{Account: s.account}, err
	}

	if err := s.journalNew(result.Account, before); err != nil {
		s.logger.Error("journal write failed", "op", string(sel), "error", err)
		return Result{Account: s.account}, err
	}

	s.account = result.Account
	s.logger.Info("operation accepted", "op", string(sel), "amount", amountAttr(amount),
		"balance", s.account.Balance().String(), "transactions", s.account.History().Len())
	return result, nil
}

// Verify checks the journal ends at the session's version and that replaying it
// reproduces the held account.
func (s *Session) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ahead, err := s.journal.GetEventsAfterVersion(s.id, s.version)
	if err != nil {
		return fmt.Errorf("failed to read journal for session %s: %w", s.id, err)
	}
	if len(ahead) > 0 {
		return fmt.Errorf("%w: journal has %d entries past version %d",
			ErrJournalMismatch, len(ahead), s.version)
	}

	stream, err := s.journal.GetEvents(s.id)
	if err != nil {
		return fmt.Errorf("failed to read journal for session %s: %w", s.id, err)
	}
	history, err := domain.HistoryFromEvents(stream)
	if err != nil {
		return fmt.Errorf("failed to rebuild history for session %s: %w", s.id, err)
	}
	replayed, err := domain.RestoreAccount(history)
	if err != nil {
		return fmt.Errorf("failed to restore account for session %s: %w", s.id, err)
	}

	if !replayed.Balance().Equal(s.account.Balance()) || replayed.History().Len() != s.account.History().Len() {
		return fmt.Errorf("%w: journal has %d transactions, balance %s; account has %d, balance %s",
			ErrJournalMismatch, replayed.History().Len(), replayed.Balance(),
			s.account.History().Len(), s.account.Balance())
	}
	s.logger.Debug("journal verified", "version", s.version)
	return nil
}

func (s *Session) journalNew(next domain.BankAccount, before int) error {
	history := next.History()
	if history.Len() <= before {
		return nil
	}

	pending := make([]events.Event, 0, history.Len()-before)
	for i := before; i < history.Len(); i++ {
		pending = append(pending, domain.TransactionEvent(s.id, s.version+len(pending)+1, history.At(i)))
	}
	if err := s.journal.SaveEvents(s.id, s.version, pending); err != nil {
		return err
	}
	s.version += len(pending)
	return nil
}

func amountAttr(amount *domain.Money) string {
	if amount == nil {
		return ""
	}
	return amount.String()
}
