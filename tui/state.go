package tui

type state int

const (
	editState state = iota + 1
	stacksState
	helpState
)
