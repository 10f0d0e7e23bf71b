package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quickburst/internal/models"
)

const (
	// Key prefixes for Redis
	reminderKeyPrefix = "reminder:"
	remindersKey      = "reminders"
	remindAtIndex     = "reminders:remind_at"          // dated reminders scored by remindAt
	undatedIndex      = "reminders:undated:created_at" // undated reminders scored by createdAt
)

// ErrReminderNotFound is returned when a reminder is not found
var ErrReminderNotFound = errors.New("reminder not found")

// Config holds configuration for the Redis reminder repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed reminder repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveReminder persists a reminder and moves it to the index matching its date.
// Times are truncated to milliseconds in place so the stored value matches its
// index score.
func (r *redisRepository) SaveReminder(ctx context.Context, input *SaveReminderInput) error {
	if input == nil || input.Reminder == nil {
		return errors.New("input and reminder cannot be nil")
	}
	if input.Reminder.ID == "" {
		return errors.New("reminder ID cannot be empty")
	}

	input.Reminder.CreatedAt = input.Reminder.CreatedAt.Truncate(time.Millisecond)
	if input.Reminder.HasDate() {
		remindAt := input.Reminder.RemindAt.Truncate(time.Millisecond)
		input.Reminder.RemindAt = &remindAt
	}

	reminderJSON, err := json.Marshal(input.Reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	id := input.Reminder.ID
	pipe := r.client.Pipeline()

	pipe.Set(ctx, reminderKey(id), reminderJSON, 0)
	pipe.SAdd(ctx, remindersKey, id)

	if input.Reminder.HasDate() {
		pipe.ZAdd(ctx, remindAtIndex, redis.Z{
			Score:  score(*input.Reminder.RemindAt),
			Member: id,
		})
		pipe.ZRem(ctx, undatedIndex, id)
	} else {
		pipe.ZAdd(ctx, undatedIndex, redis.Z{
			Score:  score(input.Reminder.CreatedAt),
			Member: id,
		})
		pipe.ZRem(ctx, remindAtIndex, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}

	return nil
}

// GetReminder retrieves a reminder by ID from Redis
func (r *redisRepository) GetReminder(ctx context.Context, input *GetReminderInput) (*models.Reminder, error) {
	if input == nil || input.ReminderID == "" {
		return nil, errors.New("input and reminder ID cannot be empty")
	}

	reminderJSON, err := r.client.Get(ctx, reminderKey(input.ReminderID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	var reminder models.Reminder
	if err := json.Unmarshal([]byte(reminderJSON), &reminder); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reminder: %w", err)
	}

	return &reminder, nil
}

// DeleteReminder removes a reminder and its index entries
func (r *redisRepository) DeleteReminder(ctx context.Context, input *DeleteReminderInput) error {
	if input == nil || input.ReminderID == "" {
		return errors.New("input and reminder ID cannot be empty")
	}

	// Make sure it exists so callers get ErrReminderNotFound
	if _, err := r.GetReminder(ctx, &GetReminderInput{ReminderID: input.ReminderID}); err != nil {
		return err
	}

	id := input.ReminderID
	pipe := r.client.Pipeline()
	pipe.Del(ctx, reminderKey(id))
	pipe.SRem(ctx, remindersKey, id)
	pipe.ZRem(ctx, remindAtIndex, id)
	pipe.ZRem(ctx, undatedIndex, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

// ListReminders retrieves every reminder in no particular order
func (r *redisRepository) ListReminders(ctx context.Context, input *ListRemindersInput) (*ListRemindersOutput, error) {
	ids, err := r.client.SMembers(ctx, remindersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder IDs: %w", err)
	}

	return r.loadReminders(ctx, ids)
}

// ListRemindersDue retrieves dated reminders ordered by remindAt
func (r *redisRepository) ListRemindersDue(ctx context.Context, input *ListRemindersDueInput) (*ListRemindersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lo := bound(input.From)
	if input.ExcludeFrom && !input.From.IsZero() {
		lo = "(" + lo
	}

	ids, err := r.client.ZRangeByScore(ctx, remindAtIndex, &redis.ZRangeBy{
		Min: lo,
		Max: upperBound(input.Until),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to range reminders by date: %w", err)
	}

	return r.loadReminders(ctx, ids)
}

// ListUndatedReminders retrieves undated reminders ordered by createdAt
func (r *redisRepository) ListUndatedReminders(ctx context.Context, input *ListUndatedRemindersInput) (*ListRemindersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.ZRangeByScore(ctx, undatedIndex, &redis.ZRangeBy{
		Min: bound(input.CreatedFrom),
		Max: upperBound(input.CreatedUntil),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to range undated reminders: %w", err)
	}

	return r.loadReminders(ctx, ids)
}

// loadReminders fetches reminders by ID in one round trip, skipping IDs that vanished
func (r *redisRepository) loadReminders(ctx context.Context, ids []string) (*ListRemindersOutput, error) {
	reminders := make([]*models.Reminder, 0, len(ids))
	if len(ids) == 0 {
		return &ListRemindersOutput{Reminders: reminders}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = reminderKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var reminder models.Reminder
		if err := json.Unmarshal([]byte(raw), &reminder); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reminder %s: %w", ids[i], err)
		}
		reminders = append(reminders, &reminder)
	}

	return &ListRemindersOutput{
		Reminders: reminders,
	}, nil
}

func reminderKey(id string) string {
	return fmt.Sprintf("%s%s", reminderKeyPrefix, id)
}

// score converts a time to a zset score in unix milliseconds
func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// bound is an inclusive lower bound, open when t is zero
func bound(t time.Time) string {
	if t.IsZero() {
		return "-inf"
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// upperBound is an exclusive upper bound, open when t is zero
func upperBound(t time.Time) string {
	if t.IsZero() {
		return "+inf"
	}
	return "(" + strconv.FormatInt(t.UnixMilli(), 10)
}
