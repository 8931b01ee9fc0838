package model

import "errors"

// このコアの失敗はすべてセッション継続可能。致命的エラーのクラスは存在しない。
var (
	// ErrUnauthorized 未ログイン状態での会員機能の操作（ネットワーク送信前に拒否）
	ErrUnauthorized = errors.New("ログインが必要です")

	// ErrValidation コメント本文・評価値などの入力検証エラー（ローカルで拒否）
	ErrValidation = errors.New("入力内容が正しくありません")

	// ErrRequestFailed 認証済みネットワークリクエストの失敗
	ErrRequestFailed = errors.New("リクエストに失敗しました")

	// ErrDataUnavailable カタログ・地域階層の取得失敗（空データにフォールバック）
	ErrDataUnavailable = errors.New("データを取得できません")

	// ErrGeolocation 現在地が取得できない（距離ソートはカタログ順にフォールバック）
	ErrGeolocation = errors.New("現在地を取得できません")
)
