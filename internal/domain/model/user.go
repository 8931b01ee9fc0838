package model

// AuthUser 認証プロバイダから通知されるユーザー情報。
// コアは｛user, credential｝の遷移イベントのみを消費する。
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
