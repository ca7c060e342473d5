//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"
	"sync"

	"vocaaid/internal/middleware"
	"vocaaid/internal/model"
)

// QuizService は穴埋めクイズセッションの状態機械です。
// NotStarted → InProgress(index, answered, correct) → Finished と遷移します。
// 学習セッションと同様、プロセス内に1つだけ保持します。
type QuizService interface {
	// Start は選択条件で対象を絞り、シャッフルして回答記録を空にして開始します。
	Start(ctx context.Context, sel model.Selection) (*model.QuizState, error)
	// Submit は回答を判定して記録します。未回答の問題に対してのみ有効です。
	Submit(ctx context.Context, answer string) (*model.QuizState, error)
	// Advance は回答済みの場合のみ次の問題へ進みます。最後なら Finished へ。
	Advance(ctx context.Context) (*model.QuizState, error)
	// ToggleStar はスナップショット・回答記録・データセットの三箇所へ反映します。
	ToggleStar(ctx context.Context, wordID string) (*model.QuizState, error)
	Reset(ctx context.Context) *model.QuizState
	Retry(ctx context.Context) (*model.QuizState, error)
	State(ctx context.Context) *model.QuizState
	// Results は終了画面用の正誤別ビューを返します。
	Results(ctx context.Context) *model.QuizSummary
}

type quizSession struct {
	phase    model.SessionPhase
	words    []model.Word
	index    int
	answered bool
	correct  bool
	results  []model.QuizResult
	lastSel  model.Selection
	hasLast  bool
}

type quizService struct {
	datasetSvc DatasetService
	mu         sync.Mutex
	session    quizSession
}

func NewQuizService(datasetSvc DatasetService) QuizService {
	return &quizService{
		datasetSvc: datasetSvc,
		session:    quizSession{phase: model.PhaseNotStarted},
	}
}

// normalizeAnswer は回答を判定用に正規化します。境界の空白を除去して
// 大文字小文字を畳み込むだけで、内部の空白や部分一致は扱いません。
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isCorrectAnswer は korean か（あれば）korean2 との完全一致で判定します。
func isCorrectAnswer(w model.Word, answer string) bool {
	normalized := normalizeAnswer(answer)
	if normalized == normalizeAnswer(w.Korean) {
		return true
	}
	return w.Korean2 != "" && normalized == normalizeAnswer(w.Korean2)
}

func (s *quizService) Start(ctx context.Context, sel model.Selection) (*model.QuizState, error) {
	data, err := s.datasetSvc.GetData(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := sel.Filter(data)
	if len(matches) == 0 {
		return nil, model.ErrEmptySelection
	}

	s.session = quizSession{
		phase:   model.PhaseInProgress,
		words:   shuffledCopy(matches),
		results: []model.QuizResult{},
		lastSel: sel,
		hasLast: true,
	}
	return s.stateLocked(), nil
}

func (s *quizService) Submit(ctx context.Context, answer string) (*model.QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.phase != model.PhaseInProgress || s.session.answered {
		return nil, model.ErrInvalidTransition
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil, model.ErrInvalidInput
	}

	current := s.session.words[s.session.index]
	correct := isCorrectAnswer(current, trimmed)

	s.session.answered = true
	s.session.correct = correct
	s.session.results = append(s.session.results, model.QuizResult{
		Word:       current,
		UserAnswer: trimmed,
		IsCorrect:  correct,
	})
	return s.stateLocked(), nil
}

func (s *quizService) Advance(ctx context.Context) (*model.QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.phase != model.PhaseInProgress || !s.session.answered {
		return nil, model.ErrInvalidTransition
	}
	if s.session.index+1 < len(s.session.words) {
		s.session.index++
		s.session.answered = false
		s.session.correct = false
	} else {
		s.session.phase = model.PhaseFinished
	}
	return s.stateLocked(), nil
}

func (s *quizService) ToggleStar(ctx context.Context, wordID string) (*model.QuizState, error) {
	logger := middleware.GetLogger(ctx)

	s.mu.Lock()
	var toggled *model.Word
	for i := range s.session.words {
		if s.session.words[i].ID == wordID {
			s.session.words[i].IsStarred = !s.session.words[i].IsStarred
			w := s.session.words[i]
			toggled = &w
			break
		}
	}
	if toggled != nil {
		// 終了画面の表示が一致するよう、記録済みの結果にも反映する
		for i := range s.session.results {
			if s.session.results[i].Word.ID == wordID {
				s.session.results[i].Word.IsStarred = toggled.IsStarred
			}
		}
	}
	s.mu.Unlock()

	if toggled == nil {
		return nil, model.ErrNotFound
	}

	if _, err := s.datasetSvc.UpdateWord(ctx, *toggled); err != nil {
		logger.Error("Error persisting star toggle", "error", err, "word_id", wordID)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(), nil
}

func (s *quizService) Reset(ctx context.Context) *model.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, hasLast := s.session.lastSel, s.session.hasLast
	s.session = quizSession{phase: model.PhaseNotStarted, lastSel: last, hasLast: hasLast}
	return s.stateLocked()
}

func (s *quizService) Retry(ctx context.Context) (*model.QuizState, error) {
	s.mu.Lock()
	if !s.session.hasLast {
		s.mu.Unlock()
		return nil, model.ErrInvalidTransition
	}
	sel := s.session.lastSel
	s.mu.Unlock()

	return s.Start(ctx, sel)
}

func (s *quizService) State(ctx context.Context) *model.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *quizService) Results(ctx context.Context) *model.QuizSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := &model.QuizSummary{
		Total:     len(s.session.results),
		Correct:   []model.QuizResult{},
		Incorrect: []model.QuizResult{},
	}
	for _, r := range s.session.results {
		if r.IsCorrect {
			summary.Correct = append(summary.Correct, r)
		} else {
			summary.Incorrect = append(summary.Incorrect, r)
		}
	}
	return summary
}

func (s *quizService) stateLocked() *model.QuizState {
	st := &model.QuizState{
		Phase:      s.session.phase,
		Index:      s.session.index,
		Total:      len(s.session.words),
		IsAnswered: s.session.answered,
	}
	if s.session.answered {
		correct := s.session.correct
		st.IsCorrect = &correct
	}
	if s.session.phase == model.PhaseInProgress && s.session.index < len(s.session.words) {
		w := s.session.words[s.session.index]
		if !s.session.answered {
			// 未回答の間は答えを見せない
			w.Korean = ""
			w.Korean2 = ""
		}
		st.Current = &w
	}
	return st
}
