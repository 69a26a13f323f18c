package repo

import "errors"

var (
	ErrCallNotFound = errors.New("call not found")
	ErrUserNotFound = errors.New("user not found")
	// 对终态呼叫的 accept/reject 不产生任何变化
	ErrAlreadyResolved = errors.New("call already resolved")
	ErrNotCallee       = errors.New("only the callee can resolve a call")
)
