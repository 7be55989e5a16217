package services

import (
	"context"
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"guildtrivia/database"
	"guildtrivia/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fixture is one guild-flagged challenge with two questions:
// Q1 (10 points): A1 correct, A2 incorrect
// Q2 (5 points):  A3 correct, A4 incorrect
type fixture struct {
	guild     models.Guild
	user      models.User
	challenge models.Challenge
	a1, a2    models.Answer
	a3, a4    models.Answer
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	f.guild = models.Guild{Name: "Night Owls"}
	require.NoError(t, db.Create(&f.guild).Error)

	f.user = models.User{Name: "Alice", Email: "alice@example.com", Password: "x", GuildID: &f.guild.ID}
	require.NoError(t, db.Create(&f.user).Error)

	f.challenge = models.Challenge{
		Name:             "General Knowledge",
		Difficulty:       1,
		IsGuildChallenge: true,
		Questions: []models.Question{
			{
				QuestionText: "Q1",
				Points:       10,
				Answers: []models.Answer{
					{Answer: "A1", IsCorrect: true},
					{Answer: "A2"},
				},
			},
			{
				QuestionText: "Q2",
				Points:       5,
				Answers: []models.Answer{
					{Answer: "A3", IsCorrect: true},
					{Answer: "A4"},
				},
			},
		},
	}
	require.NoError(t, db.Create(&f.challenge).Error)

	var answers []models.Answer
	require.NoError(t, db.Order("answer").Find(&answers).Error)
	require.Len(t, answers, 4)
	f.a1, f.a2, f.a3, f.a4 = answers[0], answers[1], answers[2], answers[3]
	return f
}

func (f *fixture) reloadUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", f.user.ID).Error)
	return user
}

func (f *fixture) reloadGuild(t *testing.T, db *gorm.DB) models.Guild {
	t.Helper()
	var guild models.Guild
	require.NoError(t, db.First(&guild, "id = ?", f.guild.ID).Error)
	return guild
}

func TestSubmitResponsesUserNotFound(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	_, err := svc.SubmitResponses(context.Background(), "6a54e4e6-31a3-4a34-9f0c-000000000000", []string{f.a1.ID})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubmitResponsesAnswerNotFound(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	_, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, "6a54e4e6-31a3-4a34-9f0c-000000000000"})
	require.ErrorIs(t, err, ErrAnswerNotFound)

	// All-or-nothing: nothing from the batch survives the rollback.
	var count int64
	require.NoError(t, db.Model(&models.Response{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitResponsesDuplicateIDsWithinBatch(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	_, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, f.a1.ID})
	require.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestSubmitResponsesDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	_, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID})
	require.NoError(t, err)
	before := f.reloadUser(t, db).Score

	// One already-answered item blocks the whole batch.
	_, err = svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, f.a3.ID})
	require.ErrorIs(t, err, ErrResponseExists)

	require.Equal(t, before, f.reloadUser(t, db).Score)
	var count int64
	require.NoError(t, db.Model(&models.Response{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSubmitResponsesAllCorrectAwardsFullPoints(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, f.a3.ID})
	require.NoError(t, err)
	require.Equal(t, 15, score)

	require.Equal(t, 15, f.reloadUser(t, db).Score)
	require.Equal(t, 15, f.reloadGuild(t, db).Score)
}

func TestSubmitResponsesExactSetPerQuestion(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	// Q1 answered exactly right, Q2 answered wrong: the challenge is
	// complete and only Q1 pays out.
	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, f.a4.ID})
	require.NoError(t, err)
	require.Equal(t, 10, score)
	require.Equal(t, 10, f.reloadUser(t, db).Score)
}

func TestSubmitResponsesOverSelectionAwardsZero(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	// Selecting both the correct and the incorrect answer of a question
	// forfeits that question's points.
	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, f.a2.ID, f.a3.ID})
	require.NoError(t, err)
	require.Equal(t, 5, score)
}

func TestSubmitResponsesCompletionRequiresFullCoverage(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID})
	require.NoError(t, err)
	require.Zero(t, score)
	require.Zero(t, f.reloadUser(t, db).Score)
	require.Zero(t, f.reloadGuild(t, db).Score)

	// The second question's first response completes the challenge; the
	// award covers both questions.
	score, err = svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a3.ID})
	require.NoError(t, err)
	require.Equal(t, 15, score)
	require.Equal(t, 15, f.reloadUser(t, db).Score)
	require.Equal(t, 15, f.reloadGuild(t, db).Score)
}

func TestSubmitResponsesNoGuildNoGuildScore(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	loner := models.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, db.Create(&loner).Error)

	score, err := svc.SubmitResponses(context.Background(), loner.ID, []string{f.a1.ID, f.a3.ID})
	require.NoError(t, err)
	require.Equal(t, 15, score)

	require.Zero(t, f.reloadGuild(t, db).Score)
}

func TestSubmitResponsesNonGuildChallenge(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	plain := models.Challenge{
		Name:       "Solo Round",
		Difficulty: 2,
		Questions: []models.Question{
			{
				QuestionText: "Q3",
				Points:       7,
				Answers: []models.Answer{
					{Answer: "B1", IsCorrect: true},
					{Answer: "B2"},
				},
			},
		},
	}
	require.NoError(t, db.Create(&plain).Error)

	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{plain.Questions[0].Answers[0].ID})
	require.NoError(t, err)
	require.Equal(t, 7, score)

	require.Equal(t, 7, f.reloadUser(t, db).Score)
	require.Zero(t, f.reloadGuild(t, db).Score)
}

func TestSubmitResponsesNoDoubleAward(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID, f.a3.ID})
	require.NoError(t, err)
	require.Equal(t, 15, score)

	// A2 was never submitted, so this batch passes the duplicate check,
	// but the challenge was already paid for and must not score again.
	score, err = svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a2.ID})
	require.NoError(t, err)
	require.Zero(t, score)

	require.Equal(t, 15, f.reloadUser(t, db).Score)
	require.Equal(t, 15, f.reloadGuild(t, db).Score)
}

func TestSubmitResponsesZeroPointCompletionStaysComplete(t *testing.T) {
	db := newTestDB(t)
	f := newFixture(t, db)
	svc := NewResponseService(db, newTestLogger())

	// Complete the challenge entirely wrong: zero points, still complete.
	score, err := svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a2.ID, f.a4.ID})
	require.NoError(t, err)
	require.Zero(t, score)

	// Later submissions re-evaluate the same challenge and must keep
	// yielding the same (zero) total instead of accumulating.
	score, err = svc.SubmitResponses(context.Background(), f.user.ID, []string{f.a1.ID})
	require.NoError(t, err)
	require.Zero(t, score)
	require.Zero(t, f.reloadUser(t, db).Score)
}

func TestEvaluateChallenge(t *testing.T) {
	challenge := models.Challenge{
		Questions: []models.Question{
			{
				Points: 10,
				Answers: []models.Answer{
					{ID: "a1", IsCorrect: true},
					{ID: "a2"},
				},
			},
			{
				Points: 5,
				Answers: []models.Answer{
					{ID: "a3", IsCorrect: true},
					{ID: "a4"},
				},
			},
		},
	}

	complete, points := evaluateChallenge(challenge, map[string]bool{"a1": true})
	require.False(t, complete)
	require.Zero(t, points)

	complete, points = evaluateChallenge(challenge, map[string]bool{"a1": true, "a3": true})
	require.True(t, complete)
	require.Equal(t, 15, points)

	complete, points = evaluateChallenge(challenge, map[string]bool{"a1": true, "a2": true, "a3": true})
	require.True(t, complete)
	require.Equal(t, 5, points)
}

func TestEvaluateChallengeUnanswerableQuestion(t *testing.T) {
	// A question without answers can never be satisfied, so the
	// challenge never completes.
	challenge := models.Challenge{
		Questions: []models.Question{
			{Points: 10, Answers: []models.Answer{{ID: "a1", IsCorrect: true}}},
			{Points: 5},
		},
	}

	complete, points := evaluateChallenge(challenge, map[string]bool{"a1": true})
	require.False(t, complete)
	require.Zero(t, points)
}
