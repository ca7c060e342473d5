//go:generate mockery --name SyncService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vocaaid/internal/model"
	"vocaaid/internal/remote"
)

// SyncService はローカル変更のリモートミラーへの同期を調停します。
// {Idle, Dirty, Syncing} の状態機械に {Online, Offline} フラグが直交します。
//
//   - 変更のたびに Dirty になり、Online∧Dirty の間はアイドルタイマーが張られる
//   - タイマーは新しい変更が来るたびに張り直され、満了で一度だけプッシュする
//   - プッシュは同時に1本まで（真偽値ガード）。プッシュ中に届いた変更は
//     Dirty を残すだけで、現在のプッシュ完了後に追加のプッシュが予約される
//   - 失敗はログに残すだけで、次のデバウンスか手動操作が再試行になる
type SyncService interface {
	// MarkDirty はローカル変更の発生を記録します（オンラインかどうかに関わらず）。
	MarkDirty()
	// SetOnline は接続性イベントを受け取ります。
	SetOnline(online bool)
	// Sync は明示的なプッシュ要求です。オフラインまたは変更なしなら静かに何もしません。
	Sync(ctx context.Context) error
	// Refresh は明示的なプル要求です。オンラインであることだけが条件です。
	// ミラーの単語リストでローカルを丸ごと置き換えます（マージはしない）。
	Refresh(ctx context.Context) error
	Status() model.SyncStatus
	// Stop は保留中のタイマーを破棄します（シャットダウン用）。
	Stop()
}

var _ SyncNotifier = (SyncService)(nil)

// DatasetStore は同期コーディネータから見たデータセットへの窓口です。
// すべての書き込みは DatasetService のロックを通るので、プッシュ・プルが
// 通常の変更操作と競合して保存を取りこぼすことはありません。
type DatasetStore interface {
	GetData(ctx context.Context) (*model.Dataset, error)
	ReplaceWords(ctx context.Context, words []model.Word) error
	ApplyRemoteIDs(ctx context.Context, ids map[string]string) error
}

var _ DatasetStore = (DatasetService)(nil)

// SyncCoordinator は SyncService の実装です。DatasetService が通知先として
// この型を参照するため、データセットへの窓口はコンストラクタではなく
// BindStore で後から結びます。
type SyncCoordinator struct {
	remote   remote.Client
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	store   DatasetStore
	status  model.SyncStatus
	timer   *time.Timer
	pushing bool
	gen     uint64 // 変更世代。プッシュ中の追加変更の検出に使う
}

var _ SyncService = (*SyncCoordinator)(nil)

func NewSyncService(remoteClient remote.Client, debounce time.Duration, startOnline bool, logger *slog.Logger) *SyncCoordinator {
	return &SyncCoordinator{
		remote:   remoteClient,
		debounce: debounce,
		logger:   logger,
		status:   model.SyncStatus{IsOnline: startOnline},
	}
}

// BindStore はデータセットへの窓口を結びます。プッシュ・プルの前に必ず
// 呼んでください。
func (s *SyncCoordinator) BindStore(store DatasetStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
}

func (s *SyncCoordinator) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.HasLocalChanges = true
	s.gen++
	s.armTimerLocked()
}

func (s *SyncCoordinator) SetOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.IsOnline = online
	if online {
		s.armTimerLocked()
	} else if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.logger.Info("Connectivity changed", slog.Bool("online", online))
}

// armTimerLocked は Online∧Dirty のときだけデバウンスタイマーを張り直します。
func (s *SyncCoordinator) armTimerLocked() {
	if !s.status.IsOnline || !s.status.HasLocalChanges {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.push(context.Background())
	})
}

func (s *SyncCoordinator) Sync(ctx context.Context) error {
	s.mu.Lock()
	if !s.status.IsOnline || !s.status.HasLocalChanges {
		// 仕様上の黙認: オフライン中・変更なしの手動同期は何もしない
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.push(ctx)
	return nil
}

// push は一度のプッシュ試行です。同時実行は真偽値ガードで1本に制限します。
func (s *SyncCoordinator) push(ctx context.Context) {
	s.mu.Lock()
	if s.pushing || !s.status.IsOnline || !s.status.HasLocalChanges {
		s.mu.Unlock()
		return
	}
	s.pushing = true
	s.status.IsLoading = true
	startGen := s.gen
	s.mu.Unlock()

	err := s.pushOnce(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushing = false
	s.status.IsLoading = false
	if err != nil {
		// Dirty は残したまま。バックオフ付きの自動再試行はしない
		s.logger.Error("Failed to sync to remote mirror", slog.Any("error", err))
		return
	}
	now := time.Now()
	s.status.LastSyncTime = &now
	if s.gen == startGen {
		s.status.HasLocalChanges = false
	} else {
		// プッシュ中に変更が届いていたので、もう一度の同期を予約する
		s.armTimerLocked()
	}
	s.logger.Info("Synced dataset to remote mirror")
}

// pushOnce はデータセット全体をミラーへ送り、新規作成分の RemoteID を
// 書き戻します。途中で失敗しても、失敗までに採番された RemoteID は
// 書き戻します（次回のプッシュで同じページを二重作成しないため）。
// 書き戻しは DatasetService のロック越しに行うので、プッシュ中に
// 行われた他の変更を上書きすることはありません。
func (s *SyncCoordinator) pushOnce(ctx context.Context) error {
	s.mu.Lock()
	store := s.store
	s.mu.Unlock()
	if store == nil {
		return model.ErrInternalServer
	}

	data, err := store.GetData(ctx)
	if err != nil {
		return err
	}
	snapshot := data.Clone()

	pushErr := s.remote.PushAll(ctx, snapshot)

	assigned := make(map[string]string)
	for _, pushed := range snapshot.Words {
		if pushed.RemoteID == "" {
			continue
		}
		if w := data.FindWord(pushed.ID); w != nil && w.RemoteID == "" {
			assigned[pushed.ID] = pushed.RemoteID
		}
	}
	if len(assigned) > 0 {
		if err := store.ApplyRemoteIDs(ctx, assigned); err != nil {
			s.logger.Error("Failed to persist assigned remote ids", slog.Any("error", err))
			if pushErr == nil {
				return err
			}
		}
	}
	return pushErr
}

func (s *SyncCoordinator) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if !s.status.IsOnline {
		s.mu.Unlock()
		return nil
	}
	store := s.store
	if store == nil {
		s.mu.Unlock()
		return model.ErrInternalServer
	}
	s.status.IsLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.status.IsLoading = false
		s.mu.Unlock()
	}()

	if !s.remote.Enabled() {
		// ミラー未設定。取り込むものがないのでフラグだけ整える
		s.logger.Info("Refresh requested but remote mirror is disabled")
		return nil
	}

	words, err := s.remote.FetchAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch from remote mirror", slog.Any("error", err))
		return err
	}

	// 明示的なプルはローカルの単語リストを丸ごと置き換える（マージしない）。
	// 置き換えは DatasetService のロック越しに直列化される
	if err := store.ReplaceWords(ctx, words); err != nil {
		s.logger.Error("Failed to apply pulled words", slog.Any("error", err))
		return err
	}

	s.mu.Lock()
	now := time.Now()
	s.status.LastSyncTime = &now
	s.status.HasLocalChanges = false
	s.mu.Unlock()

	s.logger.Info("Replaced local words from remote mirror", slog.Int("count", len(words)))
	return nil
}

func (s *SyncCoordinator) Status() model.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *SyncCoordinator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
