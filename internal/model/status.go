package model

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)
