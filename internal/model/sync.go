// internal/model/sync.go
package model

import "time"

// SyncStatus は同期コーディネータの一時的な状態です。永続化されず、
// プロセス起動のたびに初期化されます。
type SyncStatus struct {
	IsOnline        bool       `json:"isOnline"`
	HasLocalChanges bool       `json:"hasLocalChanges"`
	IsLoading       bool       `json:"isLoading"`
	LastSyncTime    *time.Time `json:"lastSyncTime,omitempty"`
}

// オンライン状態変更リクエストDTO（接続性イベントを離散イベントとして受け取る）
type PutOnlineRequest struct {
	IsOnline *bool `json:"isOnline" validate:"required"`
}

// SyncResponse はリモート一括同期APIのレスポンスです。
type SyncResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	SyncedAt time.Time `json:"syncedAt"`
}
