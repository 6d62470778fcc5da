package models

type InvitationCode struct {
	Code string `db:"code"`
	Used bool   `db:"is_used"`
}
