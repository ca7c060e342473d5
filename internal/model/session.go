// internal/model/session.go
package model

// SessionPhase は学習・クイズセッションの状態機械の相です。
type SessionPhase string

const (
	PhaseNotStarted SessionPhase = "not_started"
	PhaseInProgress SessionPhase = "in_progress"
	PhaseCompleted  SessionPhase = "completed" // 学習セッションの終端
	PhaseFinished   SessionPhase = "finished"  // クイズセッションの終端
)

// セッション開始リクエストDTO（学習・クイズ共通）
type StartSessionRequest struct {
	Selection Selection `json:"selection" validate:"required"`
}

// 別印トグルリクエストDTO
type ToggleStarRequest struct {
	WordID string `json:"wordId" validate:"required"`
}

// StudyState は学習セッションの現在の状態ビューです。
type StudyState struct {
	Phase      SessionPhase `json:"phase"`
	Index      int          `json:"index"`
	Total      int          `json:"total"`
	IsRevealed bool         `json:"isRevealed"`
	Current    *Word        `json:"current,omitempty"`
	// 既に学習した単語（新しいものが先頭）
	Studied []Word `json:"studied,omitempty"`
}

// クイズ回答リクエストDTO
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// QuizResult は1問分の回答記録です。
type QuizResult struct {
	Word       Word   `json:"word"`
	UserAnswer string `json:"userAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

// QuizState はクイズセッションの現在の状態ビューです。
type QuizState struct {
	Phase      SessionPhase `json:"phase"`
	Index      int          `json:"index"`
	Total      int          `json:"total"`
	IsAnswered bool         `json:"isAnswered"`
	IsCorrect  *bool        `json:"isCorrect,omitempty"` // 回答済みの場合のみ
	Current    *Word        `json:"current,omitempty"`
}

// QuizSummary は終了画面用に結果を正誤で分けたビューです。
type QuizSummary struct {
	Total     int          `json:"total"`
	Correct   []QuizResult `json:"correct"`
	Incorrect []QuizResult `json:"incorrect"`
}
