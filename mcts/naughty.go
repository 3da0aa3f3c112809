package mcts

// naughty is essentially *Node
type naughty int

const (
	nilNode naughty = -1
)
