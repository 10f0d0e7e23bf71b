package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quickburst/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) save(id string, createdAt time.Time, remindAt *time.Time) *models.Reminder {
	reminder := &models.Reminder{
		ID:        id,
		Title:     "title " + id,
		Priority:  models.ReminderPriorityMedium,
		CreatedAt: createdAt,
		RemindAt:  remindAt,
	}
	s.Require().NoError(s.repo.SaveReminder(s.ctx, &SaveReminderInput{Reminder: reminder}))
	return reminder
}

func at(t time.Time) *time.Time {
	return &t
}

func ids(reminders []*models.Reminder) []string {
	result := make([]string, len(reminders))
	for i, r := range reminders {
		result[i] = r.ID
	}
	return result
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetReminder() {
	remindAt := s.testNow.Add(time.Hour)
	reminder := &models.Reminder{
		ID:        "r1",
		Title:     "Buy paper & markers",
		Details:   "the good ones",
		Priority:  models.ReminderPriorityHigh,
		CreatedAt: s.testNow,
		RemindAt:  &remindAt,
	}

	err := s.repo.SaveReminder(s.ctx, &SaveReminderInput{Reminder: reminder})
	s.Require().NoError(err)

	got, err := s.repo.GetReminder(s.ctx, &GetReminderInput{ReminderID: "r1"})
	s.Require().NoError(err)
	s.Equal("Buy paper & markers", got.Title)
	s.Equal("the good ones", got.Details)
	s.Equal(models.ReminderPriorityHigh, got.Priority)
	s.True(s.testNow.Equal(got.CreatedAt))
	s.Require().NotNil(got.RemindAt)
	s.True(remindAt.Equal(*got.RemindAt))

	// Check the indexes directly
	s.True(s.mr.Exists("reminder:r1"))
	isMember, err := s.mr.SIsMember("reminders", "r1")
	s.Require().NoError(err)
	s.True(isMember)
	score, err := s.mr.ZScore("reminders:remind_at", "r1")
	s.Require().NoError(err)
	s.Equal(float64(remindAt.UnixMilli()), score)
}

func (s *RedisRepositoryTestSuite) TestGetReminder_NotFound() {
	_, err := s.repo.GetReminder(s.ctx, &GetReminderInput{ReminderID: "missing"})
	s.ErrorIs(err, ErrReminderNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveReminder_InvalidInput() {
	s.Error(s.repo.SaveReminder(s.ctx, nil))
	s.Error(s.repo.SaveReminder(s.ctx, &SaveReminderInput{Reminder: &models.Reminder{}}))
}

func (s *RedisRepositoryTestSuite) TestSaveReminder_MovesBetweenIndexes() {
	reminder := s.save("r1", s.testNow, nil)

	members, err := s.mr.ZMembers("reminders:undated:created_at")
	s.Require().NoError(err)
	s.Equal([]string{"r1"}, members)

	reminder.RemindAt = at(s.testNow.Add(time.Hour))
	s.Require().NoError(s.repo.SaveReminder(s.ctx, &SaveReminderInput{Reminder: reminder}))

	members, err = s.mr.ZMembers("reminders:remind_at")
	s.Require().NoError(err)
	s.Equal([]string{"r1"}, members)

	undated, err := s.repo.ListUndatedReminders(s.ctx, &ListUndatedRemindersInput{})
	s.Require().NoError(err)
	s.Empty(undated.Reminders)
}

func (s *RedisRepositoryTestSuite) TestDeleteReminder() {
	s.save("r1", s.testNow, at(s.testNow.Add(time.Hour)))
	s.save("r2", s.testNow, nil)

	s.Require().NoError(s.repo.DeleteReminder(s.ctx, &DeleteReminderInput{ReminderID: "r1"}))
	s.Require().NoError(s.repo.DeleteReminder(s.ctx, &DeleteReminderInput{ReminderID: "r2"}))

	s.False(s.mr.Exists("reminder:r1"))
	s.False(s.mr.Exists("reminders"))
	s.False(s.mr.Exists("reminders:remind_at"))
	s.False(s.mr.Exists("reminders:undated:created_at"))

	err := s.repo.DeleteReminder(s.ctx, &DeleteReminderInput{ReminderID: "r1"})
	s.ErrorIs(err, ErrReminderNotFound)
}

func (s *RedisRepositoryTestSuite) TestListReminders() {
	s.save("r1", s.testNow, nil)
	s.save("r2", s.testNow, at(s.testNow.Add(time.Hour)))

	output, err := s.repo.ListReminders(s.ctx, &ListRemindersInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"r1", "r2"}, ids(output.Reminders))
}

func (s *RedisRepositoryTestSuite) TestListReminders_Empty() {
	output, err := s.repo.ListReminders(s.ctx, &ListRemindersInput{})
	s.Require().NoError(err)
	s.Empty(output.Reminders)
}

func (s *RedisRepositoryTestSuite) TestListRemindersDue_Bounds() {
	start := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	s.save("at-start", s.testNow, at(start))
	s.save("midday", s.testNow, at(start.Add(12*time.Hour)))
	s.save("at-end", s.testNow, at(end))
	s.save("yesterday", s.testNow, at(start.Add(-time.Minute)))

	output, err := s.repo.ListRemindersDue(s.ctx, &ListRemindersDueInput{From: start, Until: end})
	s.Require().NoError(err)
	s.Equal([]string{"at-start", "midday"}, ids(output.Reminders))

	output, err = s.repo.ListRemindersDue(s.ctx, &ListRemindersDueInput{From: start, ExcludeFrom: true})
	s.Require().NoError(err)
	s.Equal([]string{"midday", "at-end"}, ids(output.Reminders))
}

func (s *RedisRepositoryTestSuite) TestSaveReminder_TruncatesToIndexResolution() {
	sub := s.save("sub-ms", s.testNow.Add(300*time.Microsecond), at(s.testNow.Add(500*time.Microsecond)))
	s.save("next-ms", s.testNow, at(s.testNow.Add(time.Millisecond)))

	// the stored time matches the score, so it is not after now
	s.True(s.testNow.Equal(*sub.RemindAt))
	s.True(s.testNow.Equal(sub.CreatedAt))

	got, err := s.repo.GetReminder(s.ctx, &GetReminderInput{ReminderID: "sub-ms"})
	s.Require().NoError(err)
	s.True(s.testNow.Equal(*got.RemindAt))

	output, err := s.repo.ListRemindersDue(s.ctx, &ListRemindersDueInput{From: s.testNow, ExcludeFrom: true})
	s.Require().NoError(err)
	s.Equal([]string{"next-ms"}, ids(output.Reminders))

	output, err = s.repo.ListRemindersDue(s.ctx, &ListRemindersDueInput{From: s.testNow})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"sub-ms", "next-ms"}, ids(output.Reminders))
}

func (s *RedisRepositoryTestSuite) TestListUndatedReminders() {
	start := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	s.save("today", start.Add(time.Hour), nil)
	s.save("tomorrow", end, nil)
	s.save("dated", start.Add(time.Hour), at(start.Add(2*time.Hour)))

	output, err := s.repo.ListUndatedReminders(s.ctx, &ListUndatedRemindersInput{
		CreatedFrom:  start,
		CreatedUntil: end,
	})
	s.Require().NoError(err)
	s.Equal([]string{"today"}, ids(output.Reminders))
}

func (s *RedisRepositoryTestSuite) TestListReminders_SkipsVanishedEntries() {
	s.save("r1", s.testNow, nil)
	s.mr.Del("reminder:r1")

	output, err := s.repo.ListReminders(s.ctx, &ListRemindersInput{})
	s.Require().NoError(err)
	s.Empty(output.Reminders)
}
