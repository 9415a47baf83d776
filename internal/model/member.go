package model

type MemberCreate struct {
	FullName string
	Email    string
	Photo    string
}

type Member struct {
	ID int64
	MemberCreate
}
