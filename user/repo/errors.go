package repo

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrWrongPassword = errors.New("wrong password")

	// 评分：每人对每个目标只能评一次
	ErrAlreadyRated = errors.New("user already rated this target")
	ErrInvalidScore = errors.New("score must be between 1 and 5")

	// 平台级封禁/警告 只有管理员账号可以操作
	ErrNotAuthorized          = errors.New("operation requires the administrator account")
	ErrCannotBanAdminAccount  = errors.New("cannot ban the administrator account")
	ErrCannotWarnAdminAccount = errors.New("cannot warn the administrator account")

	ErrCannotFriendSelf = errors.New("cannot add yourself as a friend")
	ErrAlreadyFriends   = errors.New("user is already a friend")

	ErrReportNotFound = errors.New("report not found")

	ErrTransientFailure = errors.New("transient storage failure, try again")
)
