package tui

type state int

const (
	playingState state = iota
	dialogState
	closedState
)
