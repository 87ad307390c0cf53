package engine

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/studyplan"
)

// Kind names a request variant.
type Kind string

const (
	KindChat      Kind = "chat"
	KindQuiz      Kind = "quiz"
	KindStudyPlan Kind = "study-plan"
)

// Quiz request limits.
const (
	DefaultQuizCount  = 5
	MaxQuizCount      = 20
	DefaultDifficulty = "medium"
)

var ErrUnknownKind = errors.New("unknown request kind")

// HelpMessage is the chat reply when no documents are selected.
const HelpMessage = "I'm your study assistant! I can help you with:\n\n" +
	"• **Document Q&A**: Upload documents and ask questions about them\n" +
	"• **Quiz Generation**: Create practice quizzes from your materials\n" +
	"• **Study Plans**: Generate personalized study schedules\n\n" +
	"To get started, ingest a document and ask me questions about it!"

const (
	msgQuizNoDocuments = "Please ingest and select a document first to generate a quiz. I'll create questions based on the content of your document."
	msgPlanNoDocuments = "Please select documents first to create a personalized study plan."
)

// Request is one of ChatRequest, QuizRequest or StudyPlanRequest.
type Request interface {
	Kind() Kind
	isRequest()
}

type ChatRequest struct {
	Message     string
	DocumentIDs []string
}

type QuizRequest struct {
	DocumentIDs []string
	Count       int
	Difficulty  string
}

type StudyPlanRequest struct {
	DocumentIDs []string
	Preferences studyplan.Preferences
}

func (ChatRequest) Kind() Kind      { return KindChat }
func (QuizRequest) Kind() Kind      { return KindQuiz }
func (StudyPlanRequest) Kind() Kind { return KindStudyPlan }

func (ChatRequest) isRequest()      {}
func (QuizRequest) isRequest()      {}
func (StudyPlanRequest) isRequest() {}

var (
	quizCountPattern  = regexp.MustCompile(`(?i)(\d+)\s+(?:questions?|quiz)`)
	difficultyPattern = regexp.MustCompile(`(?i)(easy|medium|hard)\s+difficulty`)
)

// ParseRequest builds the request variant for kind. Quiz settings are read
// from message, e.g. "10 questions at hard difficulty".
func ParseRequest(kind Kind, message string, documentIDs []string) (Request, error) {
	switch strings.ToLower(string(kind)) {
	case string(KindChat):
		return ChatRequest{Message: message, DocumentIDs: documentIDs}, nil
	case string(KindQuiz), "quiz-generation":
		return QuizRequest{
			DocumentIDs: documentIDs,
			Count:       QuizCount(message),
			Difficulty:  Difficulty(message),
		}, nil
	case string(KindStudyPlan):
		return StudyPlanRequest{DocumentIDs: documentIDs}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// QuizCount reads "<n> questions" from message, capped at MaxQuizCount.
func QuizCount(message string) int {
	m := quizCountPattern.FindStringSubmatch(message)
	if m == nil {
		return DefaultQuizCount
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > MaxQuizCount {
		return MaxQuizCount
	}
	if n < 1 {
		return DefaultQuizCount
	}
	return n
}

// Difficulty reads "<level> difficulty" from message.
func Difficulty(message string) string {
	if m := difficultyPattern.FindStringSubmatch(message); m != nil {
		return strings.ToLower(m[1])
	}
	return DefaultDifficulty
}

// Quiz is a titled set of questions.
type Quiz struct {
	Title      string          `json:"title"`
	Difficulty string          `json:"difficulty"`
	Questions  []quiz.Question `json:"questions"`
}

// Response is the result of Dispatch. Content is always printable; Answer,
// Quiz or Plan holds the structured result for the matching kind.
type Response struct {
	ID      string          `json:"id"`
	Kind    Kind            `json:"kind"`
	Content string          `json:"content"`
	Answer  *Answer         `json:"answer,omitempty"`
	Quiz    *Quiz           `json:"quiz,omitempty"`
	Plan    *studyplan.Plan `json:"plan,omitempty"`
}

// Dispatch runs req and wraps the result.
func (e *Engine) Dispatch(ctx context.Context, req Request) *Response {
	resp := &Response{ID: uuid.NewString(), Kind: req.Kind()}

	switch r := req.(type) {
	case ChatRequest:
		switch len(r.DocumentIDs) {
		case 0:
			resp.Content = HelpMessage
		case 1:
			resp.Answer = e.Query(ctx, r.Message, r.DocumentIDs[0])
			resp.Content = resp.Answer.Text
		default:
			resp.Answer = e.QueryMultiple(ctx, r.Message, r.DocumentIDs)
			resp.Content = resp.Answer.Text
		}

	case QuizRequest:
		if len(r.DocumentIDs) == 0 {
			resp.Content = msgQuizNoDocuments
			break
		}
		id := r.DocumentIDs[0]
		n := r.Count
		if n < 1 {
			n = DefaultQuizCount
		}
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = DefaultDifficulty
		}

		name := "your document"
		if doc, err := e.src.GetDocumentText(ctx, id); err == nil && doc != nil && doc.FileName != "" {
			name = doc.FileName
		}
		questions := e.GenerateQuiz(ctx, id, n)
		resp.Quiz = &Quiz{Title: "Quiz: " + name, Difficulty: difficulty, Questions: questions}
		resp.Content = fmt.Sprintf("I've generated %d %s difficulty questions based on %q.", len(questions), difficulty, name)

	case StudyPlanRequest:
		if len(r.DocumentIDs) == 0 {
			resp.Content = msgPlanNoDocuments
			break
		}
		resp.Plan = e.GenerateStudyPlan(ctx, r.DocumentIDs, r.Preferences)
		resp.Content = fmt.Sprintf("I've created a study plan based on your %d selected %s:",
			len(r.DocumentIDs), plural(len(r.DocumentIDs), "document"))
	}
	return resp
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
