package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
)

// issueScript stores a pending code unless the slot is consumed.
var issueScript = redis.NewScript(`
local state = redis.call('HGET', KEYS[1], 'state')
if state == 'consumed' then
	return 0
end
redis.call('HSET', KEYS[1], 'code', ARGV[1], 'target', ARGV[2], 'state', 'pending')
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// consumeScript marks a pending slot consumed if code and target match.
// 1 ok, 0 absent, -1 consumed, -2 mismatch.
var consumeScript = redis.NewScript(`
local data = redis.call('HMGET', KEYS[1], 'state', 'code', 'target')
if not data[1] then
	return 0
end
if data[1] ~= 'pending' then
	return -1
end
if data[2] ~= ARGV[1] or data[3] ~= ARGV[2] then
	return -2
end
redis.call('HSET', KEYS[1], 'state', 'consumed')
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// OTPRepository keeps one-time code slots in Redis hashes keyed by purpose
// and subject. Pending codes expire after exp, consumed slots are kept for
// tombstone so a replayed code is reported as already used.
type OTPRepository struct {
	client    *redis.Client
	exp       time.Duration
	tombstone time.Duration
}

func NewOTPRepository(client *redis.Client, exp, tombstone time.Duration) *OTPRepository {
	return &OTPRepository{client: client, exp: exp, tombstone: tombstone}
}

func otpKey(purpose models.OTPPurpose, subject string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, subject)
}

// Issue stores code for the subject, replacing a pending one.
// Returns models.ErrSlotConsumed if the slot was consumed and not yet expired.
func (r *OTPRepository) Issue(ctx context.Context, purpose models.OTPPurpose, subject, code, target string) error {
	key := otpKey(purpose, subject)

	res, err := issueScript.Run(ctx, r.client, []string{key}, code, target, r.exp.Milliseconds()).Int()

	logger.Log.Debugw("otp issue",
		"key", key,
		"result", res,
		"error", err,
	)

	if err != nil {
		return err
	}
	if res == 0 {
		return models.ErrSlotConsumed
	}
	return nil
}

// Consume checks code and target against the pending slot and consumes it.
func (r *OTPRepository) Consume(ctx context.Context, purpose models.OTPPurpose, subject, code, target string) error {
	key := otpKey(purpose, subject)

	res, err := consumeScript.Run(ctx, r.client, []string{key}, code, target, r.tombstone.Milliseconds()).Int()

	logger.Log.Debugw("otp consume",
		"key", key,
		"result", res,
		"error", err,
	)

	if err != nil {
		return err
	}
	switch res {
	case 0:
		return models.ErrSlotAbsent
	case -1:
		return models.ErrSlotConsumed
	case -2:
		return models.ErrSlotMismatch
	}
	return nil
}
