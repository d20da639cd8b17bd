package service

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"clat_prep_backend/internal/config"
	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
	"clat_prep_backend/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// CatalogSource opens one named dataset file (questions.json, tests.json,
// articles.json, modules.json).
type CatalogSource interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalCatalogSource reads datasets from a directory on disk.
type LocalCatalogSource struct {
	Dir string
}

func (s *LocalCatalogSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, name))
}

// MinioCatalogSource reads the same dataset files from an object-storage
// bucket.
type MinioCatalogSource struct {
	Client *minio.Client
	Bucket string
}

func NewMinioCatalogSource(cfg *config.CatalogConfig) (*MinioCatalogSource, error) {
	if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
		return nil, util.ErrCatalogUnavailable
	}
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioCatalogSource{Client: client, Bucket: cfg.MinioBucket}, nil
}

func (s *MinioCatalogSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// ContentService loads the static catalogs at startup and serves them as
// immutable in-memory reference data.
type ContentService struct {
	source CatalogSource

	questions     map[string]model.Question
	questionOrder []string
	tests         map[string]model.Test
	testOrder     []string
	articles      map[string]model.Article
	articleOrder  []string
	modules       []model.LearningModule
}

func NewContentService(source CatalogSource) *ContentService {
	return &ContentService{
		source:    source,
		questions: make(map[string]model.Question),
		tests:     make(map[string]model.Test),
		articles:  make(map[string]model.Article),
	}
}

func (s *ContentService) loadFile(ctx context.Context, name string, out interface{}) bool {
	rc, err := s.source.Open(ctx, name)
	if err != nil {
		logger.Log.Warn("catalog dataset missing, serving empty catalog",
			zap.String("file", name), zap.Error(err))
		return false
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(out); err != nil {
		logger.Log.Error("catalog dataset unreadable, serving empty catalog",
			zap.String("file", name), zap.Error(err))
		return false
	}
	return true
}

// Load reads every dataset. Missing or corrupt files degrade to empty
// catalogs; Load itself never fails.
func (s *ContentService) Load(ctx context.Context) {
	var questions model.QuestionsData
	if s.loadFile(ctx, "questions.json", &questions) {
		for _, q := range questions.Questions {
			s.questions[q.ID] = q
			s.questionOrder = append(s.questionOrder, q.ID)
		}
	}

	var tests model.TestsData
	if s.loadFile(ctx, "tests.json", &tests) {
		for _, t := range tests.Tests {
			s.tests[t.ID] = t
			s.testOrder = append(s.testOrder, t.ID)
		}
	}

	var articles model.ArticlesData
	if s.loadFile(ctx, "articles.json", &articles) {
		for _, a := range articles.Articles {
			s.articles[a.ID] = a
			s.articleOrder = append(s.articleOrder, a.ID)
		}
	}

	var modules model.ModulesData
	if s.loadFile(ctx, "modules.json", &modules) {
		s.modules = modules.Modules
	}

	logger.Log.Info("catalogs loaded",
		zap.Int("questions", len(s.questions)),
		zap.Int("tests", len(s.tests)),
		zap.Int("articles", len(s.articles)),
		zap.Int("modules", len(s.modules)))
}

func (s *ContentService) QuestionByID(id string) (model.Question, bool) {
	q, ok := s.questions[id]
	return q, ok
}

func (s *ContentService) TestByID(id string) (model.Test, bool) {
	t, ok := s.tests[id]
	return t, ok
}

func (s *ContentService) ArticleByID(id string) (model.Article, bool) {
	a, ok := s.articles[id]
	return a, ok
}

func (s *ContentService) Questions() []model.Question {
	out := make([]model.Question, 0, len(s.questionOrder))
	for _, id := range s.questionOrder {
		out = append(out, s.questions[id])
	}
	return out
}

func (s *ContentService) Tests() []model.Test {
	out := make([]model.Test, 0, len(s.testOrder))
	for _, id := range s.testOrder {
		out = append(out, s.tests[id])
	}
	return out
}

func (s *ContentService) Articles() []model.Article {
	out := make([]model.Article, 0, len(s.articleOrder))
	for _, id := range s.articleOrder {
		out = append(out, s.articles[id])
	}
	return out
}

func (s *ContentService) Modules() []model.LearningModule {
	return s.modules
}

func (s *ContentService) ModuleByID(id string) (model.LearningModule, error) {
	for _, m := range s.modules {
		if m.ID == id {
			return m, nil
		}
	}
	return model.LearningModule{}, util.ErrModuleNotFound
}

// TestQuestions resolves a test's ordered question list, skipping ids no
// longer present in the question catalog.
func (s *ContentService) TestQuestions(testID string) ([]model.Question, error) {
	t, ok := s.tests[testID]
	if !ok {
		return nil, util.ErrTestNotFound
	}
	questions := make([]model.Question, 0, len(t.QuestionIDs))
	for _, id := range t.QuestionIDs {
		if q, ok := s.questions[id]; ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// TopicQuestions returns the question set for one "Section-Topic" composite
// key, in catalog order.
func (s *ContentService) TopicQuestions(topicID string) ([]model.Question, error) {
	questions := make([]model.Question, 0)
	for _, id := range s.questionOrder {
		q := s.questions[id]
		if q.Section+"-"+q.Topic == topicID {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, util.ErrQuestionNotFound
	}
	return questions, nil
}

// PracticeTopic is one practice grouping derived from the question catalog.
type PracticeTopic struct {
	TopicID       string `json:"topicId"` // "Section-Topic" composite
	Section       string `json:"section"`
	Topic         string `json:"topic"`
	QuestionCount int    `json:"questionCount"`
}

// PracticeTopics rolls the question catalog up into section/topic
// groupings, ordered by section then topic.
func (s *ContentService) PracticeTopics() []PracticeTopic {
	byKey := make(map[string]*PracticeTopic)
	for _, id := range s.questionOrder {
		q := s.questions[id]
		key := q.Section + "-" + q.Topic
		t, ok := byKey[key]
		if !ok {
			t = &PracticeTopic{TopicID: key, Section: q.Section, Topic: q.Topic}
			byKey[key] = t
		}
		t.QuestionCount++
	}

	out := make([]PracticeTopic, 0, len(byKey))
	for _, t := range byKey {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}
