package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/segmentio/kafka-go"
)

// Transaction event names.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// FrequencyCustom selects an explicit date range.
const FrequencyCustom = "custom"

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, tx *models.TransactionDB) error
	Update(ctx context.Context, tx *models.TransactionDB) error
	Delete(ctx context.Context, publicID string, transactionID string) (*models.TransactionDB, error)
}

// TransactionReader defines read-only operations for transactions.
type TransactionReader interface {
	ListByOwner(ctx context.Context, publicID string, filter models.TransactionFilter) ([]models.TransactionDB, error)
	GetByID(ctx context.Context, publicID string, transactionID string) (*models.TransactionDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService handles owner scoped transaction CRUD and Kafka publishing.
type TransactionService struct {
	writer      TransactionWriter
	reader      TransactionReader
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewTransactionService creates a new TransactionService. kafkaWriter may be nil.
func NewTransactionService(writer TransactionWriter, reader TransactionReader, kafkaWriter KafkaWriter) *TransactionService {
	return &TransactionService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// publishTransaction publishes a transaction event to Kafka.
func (s *TransactionService) publishTransaction(ctx context.Context, event string, tx *models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "transaction_id", tx.TransactionID)
		return
	}

	data, err := json.Marshal(models.TransactionEvent{
		Event:         event,
		TransactionID: tx.TransactionID,
		PublicID:      tx.PublicID,
		Amount:        tx.Amount,
		Type:          tx.Type,
		Timestamp:     s.now().Unix(),
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal transaction for Kafka", "transaction_id", tx.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(tx.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish transaction to Kafka", "transaction_id", tx.TransactionID, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Transaction published to Kafka", "transaction_id", tx.TransactionID, "event", event)
	}
}

// List returns the owner's transactions. frequency is a number of days or
// "custom" with selectedDate holding the inclusive range; txType "all" or
// empty disables the type filter.
func (s *TransactionService) List(ctx context.Context, owner, frequency string, selectedDate []string, txType string) ([]models.TransactionDB, error) {
	filter, err := s.buildFilter(frequency, selectedDate, txType)
	if err != nil {
		return nil, err
	}

	transactions, err := s.reader.ListByOwner(ctx, owner, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list transactions", "owner", owner, "error", err)
		return nil, err
	}
	return transactions, nil
}

func (s *TransactionService) buildFilter(frequency string, selectedDate []string, txType string) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	switch frequency {
	case "":
	case FrequencyCustom:
		if len(selectedDate) != 2 {
			return filter, ErrInvalidFilter
		}
		from, err := parseDate(selectedDate[0])
		if err != nil {
			return filter, ErrInvalidFilter
		}
		to, err := parseDate(selectedDate[1])
		if err != nil {
			return filter, ErrInvalidFilter
		}
		filter.From, filter.To = &from, &to
	default:
		days, err := strconv.Atoi(frequency)
		if err != nil || days <= 0 {
			return filter, ErrInvalidFilter
		}
		after := s.now().AddDate(0, 0, -days)
		filter.After = &after
	}

	switch txType {
	case "", "all":
	case models.Income, models.Expense:
		filter.Type = txType
	default:
		return filter, ErrInvalidFilter
	}

	return filter, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func validTransaction(tx *models.TransactionDB) bool {
	return (tx.Type == models.Income || tx.Type == models.Expense) &&
		tx.Amount.IsPositive() &&
		!tx.Date.IsZero()
}

// Get returns one owned transaction.
func (s *TransactionService) Get(ctx context.Context, owner, transactionID string) (*models.TransactionDB, error) {
	tx, err := s.reader.GetByID(ctx, owner, transactionID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get transaction", "owner", owner, "transaction_id", transactionID, "error", err)
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

// Add stores a new transaction for owner.
func (s *TransactionService) Add(ctx context.Context, owner string, tx models.TransactionDB) (*models.TransactionDB, error) {
	if !validTransaction(&tx) {
		return nil, ErrInvalidTransaction
	}

	id, err := newTransactionID()
	if err != nil {
		return nil, err
	}
	tx.TransactionID = id
	tx.PublicID = owner

	if err := s.writer.Save(ctx, &tx); err != nil {
		logger.FromContext(ctx).Errorw("failed to save transaction", "owner", owner, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, EventCreated, &tx)
	return &tx, nil
}

// Edit overwrites an owned transaction.
func (s *TransactionService) Edit(ctx context.Context, owner, transactionID string, tx models.TransactionDB) (*models.TransactionDB, error) {
	if !validTransaction(&tx) {
		return nil, ErrInvalidTransaction
	}
	tx.TransactionID = transactionID
	tx.PublicID = owner

	if err := s.writer.Update(ctx, &tx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		logger.FromContext(ctx).Errorw("failed to update transaction", "owner", owner, "transaction_id", transactionID, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, EventUpdated, &tx)
	return &tx, nil
}

// Delete removes an owned transaction.
func (s *TransactionService) Delete(ctx context.Context, owner, transactionID string) error {
	tx, err := s.writer.Delete(ctx, owner, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		logger.FromContext(ctx).Errorw("failed to delete transaction", "owner", owner, "transaction_id", transactionID, "error", err)
		return err
	}

	s.publishTransaction(ctx, EventDeleted, tx)
	return nil
}
