package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/internal/util"
)

const (
	weakAreaAccuracyThreshold = 60.0
	weakAreaMinAttempts       = 2
	timelinePoints            = 7
	recentActivityLimit       = 10
)

// AnalyticsService merges the three independent attempt logs into one
// summary. Everything is recomputed from scratch per request: the data is a
// single profile's history and stays small.
type AnalyticsService struct {
	Attempts *repository.AttemptRepository
	Practice *repository.PracticeRepository
	CAQuiz   *repository.CAQuizRepository
	Content  *ContentService
}

func NewAnalyticsService(
	attempts *repository.AttemptRepository,
	practice *repository.PracticeRepository,
	caQuiz *repository.CAQuizRepository,
	content *ContentService,
) *AnalyticsService {
	return &AnalyticsService{
		Attempts: attempts,
		Practice: practice,
		CAQuiz:   caQuiz,
		Content:  content,
	}
}

type sectionTally struct {
	attempted int
	correct   int
}

type topicTally struct {
	section   string
	topic     string
	attempted int
	correct   int
}

// splitTopicKey recovers section and topic from a "Section-Topic" composite
// key by splitting on the first hyphen. Topic names containing hyphens stay
// intact on the topic side; a section name containing one would be
// truncated, a known limitation of the stored key format.
func splitTopicKey(key string) (section, topic string) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return key, ""
}

// Summary builds the unified analytics rollup.
//
// Correctness for test attempts is re-derived against the question catalog
// rather than trusted from the stored attempt, so answer-key corrections
// made after the fact are reflected. Attempts referencing unknown test or
// question ids are skipped; partial results always beat a hard failure.
func (s *AnalyticsService) Summary(ctx context.Context) *model.AnalyticsSummary {
	testLog := s.Attempts.Log(ctx)
	caLog := s.CAQuiz.Log(ctx)
	practiceLog := s.Practice.Log(ctx)

	summary := &model.AnalyticsSummary{
		TotalAttempts: len(testLog.Attempts) + len(caLog.Attempts) + len(practiceLog.Sessions),
	}

	sections := make(map[string]*sectionTally, len(util.CLATSections))
	for _, name := range util.CLATSections {
		sections[name] = &sectionTally{}
	}
	topics := make(map[string]*topicTally)

	var bestScorePercent float64

	// Test attempts: per-question resolution against the catalog.
	for _, attempt := range testLog.Attempts {
		test, ok := s.Content.TestByID(attempt.TestID)
		if !ok {
			continue
		}

		for questionID, selected := range attempt.Answers {
			// The explicit -1 sentinel means no option was picked; it counts
			// neither as attempted nor as incorrect, same as in Score.
			if selected == util.UnattemptedSentinel {
				continue
			}
			summary.TotalQuestions++

			question, ok := s.Content.QuestionByID(questionID)
			if !ok {
				continue
			}

			if sec := sections[question.Section]; sec != nil {
				sec.attempted++
			}

			key := question.Section + "-" + question.Topic
			tt, ok := topics[key]
			if !ok {
				tt = &topicTally{section: question.Section, topic: question.Topic}
				topics[key] = tt
			}
			tt.attempted++

			if selected == question.CorrectAnswer {
				summary.CorrectAnswers++
				if sec := sections[question.Section]; sec != nil {
					sec.correct++
				}
				tt.correct++
			} else {
				summary.IncorrectAnswers++
			}
		}

		if pct := PercentOf(attempt.Score, test.TotalMarks); pct > bestScorePercent {
			bestScorePercent = pct
		}
		summary.TotalTimeSpent += test.Duration
	}

	// CA quiz attempts: pre-aggregated score/total pairs, all counted under
	// the Current Affairs section.
	for _, attempt := range caLog.Attempts {
		summary.TotalQuestions += attempt.Total
		summary.CorrectAnswers += attempt.Score
		summary.IncorrectAnswers += attempt.Total - attempt.Score

		if sec := sections["Current Affairs"]; sec != nil {
			sec.attempted += attempt.Total
			sec.correct += attempt.Score
		}
	}

	// Practice sessions: the embedded per-topic aggregate cache.
	for key, stat := range practiceLog.TopicStats {
		summary.TotalQuestions += stat.Attempted
		summary.CorrectAnswers += stat.Correct
		summary.IncorrectAnswers += stat.Attempted - stat.Correct

		section, topic := splitTopicKey(key)
		if sec := sections[section]; sec != nil {
			sec.attempted += stat.Attempted
			sec.correct += stat.Correct
		}

		tt, ok := topics[key]
		if !ok {
			tt = &topicTally{section: section, topic: topic}
			topics[key] = tt
		}
		tt.attempted += stat.Attempted
		tt.correct += stat.Correct
	}

	if summary.TotalQuestions > 0 {
		summary.AverageAccuracy = util.Round2(
			float64(summary.CorrectAnswers) / float64(summary.TotalQuestions) * 100)
	}
	summary.BestScore = bestScorePercent

	summary.PerformanceData = s.timeline(testLog.Attempts)
	summary.SectionScores = sectionScores(sections)
	summary.WeakAreas = weakAreas(topics)
	summary.RecentActivity = s.recentActivity(testLog.Attempts, practiceLog.Sessions)

	return summary
}

// timeline projects the most recent test attempts, in append order, into
// chart points. No interpolation for missing days.
func (s *AnalyticsService) timeline(attempts []model.TestAttempt) []model.TimelinePoint {
	start := 0
	if len(attempts) > timelinePoints {
		start = len(attempts) - timelinePoints
	}

	points := make([]model.TimelinePoint, 0, timelinePoints)
	for _, attempt := range attempts[start:] {
		point := model.TimelinePoint{
			Date:     attempt.EndTime.Format("Jan 2"),
			Accuracy: attempt.Accuracy,
		}
		if test, ok := s.Content.TestByID(attempt.TestID); ok {
			point.ScorePercent = PercentOf(attempt.Score, test.TotalMarks)
		}
		points = append(points, point)
	}
	return points
}

func sectionScores(sections map[string]*sectionTally) []model.SectionScore {
	out := make([]model.SectionScore, 0, len(util.CLATSections))
	for _, name := range util.CLATSections {
		tally := sections[name]
		score := model.SectionScore{
			Section:   name,
			Attempted: tally.attempted,
			Correct:   tally.correct,
		}
		if tally.attempted > 0 {
			score.Accuracy = util.Round2(float64(tally.correct) / float64(tally.attempted) * 100)
		}
		out = append(out, score)
	}
	return out
}

// weakAreas selects topics attempted at least twice with accuracy under the
// threshold, worst first. A single bad attempt never flags a topic.
func weakAreas(topics map[string]*topicTally) []model.WeakArea {
	out := make([]model.WeakArea, 0)
	for _, tally := range topics {
		if tally.attempted < weakAreaMinAttempts {
			continue
		}
		accuracy := util.Round2(float64(tally.correct) / float64(tally.attempted) * 100)
		if accuracy >= weakAreaAccuracyThreshold {
			continue
		}
		out = append(out, model.WeakArea{
			Topic:     tally.topic,
			Section:   tally.section,
			Accuracy:  accuracy,
			Attempted: tally.attempted,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Accuracy < out[j].Accuracy })
	return out
}

// recentActivity merges test attempts and practice sessions into one feed,
// newest first, truncated to the most recent entries.
func (s *AnalyticsService) recentActivity(attempts []model.TestAttempt, sessions []model.PracticeSession) []model.ActivityItem {
	items := make([]model.ActivityItem, 0, len(attempts)+len(sessions))

	for _, attempt := range attempts {
		item := model.ActivityItem{
			ID:    attempt.AttemptID,
			Type:  "test",
			Title: "Unknown Test",
			Score: attempt.Score,
			Date:  attempt.EndTime,
		}
		if test, ok := s.Content.TestByID(attempt.TestID); ok {
			item.Title = test.Title
			item.TotalMarks = test.TotalMarks
			item.Duration = test.Duration
		}
		items = append(items, item)
	}

	for i, session := range sessions {
		_, topic := splitTopicKey(session.TopicID)
		items = append(items, model.ActivityItem{
			ID:         fmt.Sprintf("practice-%d", i),
			Type:       "practice",
			Title:      topic + " Practice",
			Score:      float64(session.Correct),
			TotalMarks: float64(session.Total),
			Date:       session.Date,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items
}
