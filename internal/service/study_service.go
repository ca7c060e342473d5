//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"math/rand/v2"
	"sync"

	"vocaaid/internal/middleware"
	"vocaaid/internal/model"
)

// StudyService はめくりカード学習セッションの状態機械です。
// NotStarted → InProgress(index, revealed) → Completed と遷移します。
// セッションはプロセス内に1つだけ保持されます（個人利用アプリのため）。
// HTTPは並行に届くので、全遷移をロックで直列化しています。
type StudyService interface {
	// Start は選択条件に合致した単語をシャッフルしてセッションを開始します。
	// 合致する単語が無ければ ErrEmptySelection を返し、状態は変わりません。
	Start(ctx context.Context, sel model.Selection) (*model.StudyState, error)
	// Reveal は訳を表示します。表示済みなら何もしません（冪等）。
	Reveal(ctx context.Context) (*model.StudyState, error)
	// Advance は次の単語へ進みます。訳が未表示なら不正な遷移です。
	Advance(ctx context.Context) (*model.StudyState, error)
	// Flip は未表示なら Reveal、表示済みなら Advance を行います
	// （単一キー操作の文脈依存バインディング）。セッション外では何もしません。
	Flip(ctx context.Context) (*model.StudyState, error)
	// ToggleStar はスナップショット中の単語の別印を反転し、データセットにも反映します。
	ToggleStar(ctx context.Context, wordID string) (*model.StudyState, error)
	// Reset はどの状態からでも NotStarted に戻します。
	Reset(ctx context.Context) *model.StudyState
	// Retry は直前の選択条件で再シャッフルして開始します。
	Retry(ctx context.Context) (*model.StudyState, error)
	State(ctx context.Context) *model.StudyState
}

type studySession struct {
	phase    model.SessionPhase
	words    []model.Word // セッション中は不変の順序（別印のみ更新される）
	index    int
	revealed bool
	lastSel  model.Selection
	hasLast  bool
}

type studyService struct {
	datasetSvc DatasetService
	mu         sync.Mutex
	session    studySession
}

func NewStudyService(datasetSvc DatasetService) StudyService {
	return &studyService{
		datasetSvc: datasetSvc,
		session:    studySession{phase: model.PhaseNotStarted},
	}
}

// shuffledCopy は一様なシャッフル（Fisher–Yates）でコピーを返します。
func shuffledCopy(words []model.Word) []model.Word {
	out := make([]model.Word, len(words))
	copy(out, words)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (s *studyService) Start(ctx context.Context, sel model.Selection) (*model.StudyState, error) {
	data, err := s.datasetSvc.GetData(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := sel.Filter(data)
	if len(matches) == 0 {
		// 空の選択は開始を拒否し、状態はそのまま
		return nil, model.ErrEmptySelection
	}

	s.session = studySession{
		phase:   model.PhaseInProgress,
		words:   shuffledCopy(matches),
		lastSel: sel,
		hasLast: true,
	}
	return s.stateLocked(), nil
}

func (s *studyService) Reveal(ctx context.Context) (*model.StudyState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.phase != model.PhaseInProgress {
		return nil, model.ErrInvalidTransition
	}
	s.session.revealed = true // 既に true でも同じ（冪等）
	return s.stateLocked(), nil
}

func (s *studyService) Advance(ctx context.Context) (*model.StudyState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.phase != model.PhaseInProgress || !s.session.revealed {
		return nil, model.ErrInvalidTransition
	}
	s.advanceLocked()
	return s.stateLocked(), nil
}

func (s *studyService) advanceLocked() {
	s.session.index++
	s.session.revealed = false
	if s.session.index >= len(s.session.words) {
		s.session.phase = model.PhaseCompleted
	}
}

func (s *studyService) Flip(ctx context.Context) (*model.StudyState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.phase != model.PhaseInProgress {
		// セッション外のキー入力は何もしない
		return s.stateLocked(), nil
	}
	if !s.session.revealed {
		s.session.revealed = true
	} else {
		s.advanceLocked()
	}
	return s.stateLocked(), nil
}

func (s *studyService) ToggleStar(ctx context.Context, wordID string) (*model.StudyState, error) {
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
	s.mu.Unlock()

	if toggled == nil {
		return nil, model.ErrNotFound
	}

	// スナップショットだけでなくデータセットにも反映する
	if _, err := s.datasetSvc.UpdateWord(ctx, *toggled); err != nil {
		logger.Error("Error persisting star toggle", "error", err, "word_id", wordID)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(), nil
}

func (s *studyService) Reset(ctx context.Context) *model.StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, hasLast := s.session.lastSel, s.session.hasLast
	s.session = studySession{phase: model.PhaseNotStarted, lastSel: last, hasLast: hasLast}
	return s.stateLocked()
}

func (s *studyService) Retry(ctx context.Context) (*model.StudyState, error) {
	s.mu.Lock()
	if !s.session.hasLast {
		s.mu.Unlock()
		return nil, model.ErrInvalidTransition
	}
	sel := s.session.lastSel
	s.mu.Unlock()

	return s.Start(ctx, sel)
}

func (s *studyService) State(ctx context.Context) *model.StudyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *studyService) stateLocked() *model.StudyState {
	st := &model.StudyState{
		Phase:      s.session.phase,
		Index:      s.session.index,
		Total:      len(s.session.words),
		IsRevealed: s.session.revealed,
	}
	if s.session.phase == model.PhaseInProgress && s.session.index < len(s.session.words) {
		w := s.session.words[s.session.index]
		st.Current = &w
		// 学習済みの単語（新しいものが先頭）
		for i := s.session.index - 1; i >= 0; i-- {
			st.Studied = append(st.Studied, s.session.words[i])
		}
	}
	return st
}
