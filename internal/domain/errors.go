package domain

import "errors"

var (
	// ErrInvalidRosterSize 表示排班编码的长度和问题定义不匹配
	ErrInvalidRosterSize = errors.New("排班编码的长度与问题定义不匹配")
	// ErrInvalidRosterValue 表示排班编码中存在 0/1 以外的值
	ErrInvalidRosterValue = errors.New("排班编码中存在非 0/1 的值")
	// ErrProblemNotFound 表示请求的排班问题不存在
	ErrProblemNotFound = errors.New("排班问题不存在")
	// ErrTooManyProblems 表示注册的排班问题数量已达上限
	ErrTooManyProblems = errors.New("排班问题数量已达上限")
)
