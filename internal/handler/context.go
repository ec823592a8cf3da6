package handler

type ContextKey string

var (
	ProblemCtx ContextKey = "problem"
)
