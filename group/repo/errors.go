package repo

import "errors"

// 群操作的失败原因 handler 按类型映射为 HTTP 状态码 不做模糊化
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrDuplicateName = errors.New("group name already in use")
	ErrNotAMember    = errors.New("user is not a member of the group")
	ErrNotAdmin      = errors.New("operation requires group admin")

	ErrCannotRemoveSelf  = errors.New("cannot remove yourself from the group")
	ErrCannotRemoveAdmin = errors.New("cannot remove an admin, demote first")

	ErrCannotBanSelf  = errors.New("cannot ban yourself")
	ErrCannotBanAdmin = errors.New("cannot ban an admin, demote first")
	ErrAlreadyBanned  = errors.New("member is already banned")
	ErrNotBanned      = errors.New("member is not banned")

	ErrAlreadyAdmin      = errors.New("member is already an admin")
	ErrAdminLimitReached = errors.New("a group can have at most 3 admins")
	ErrTargetNotAdmin    = errors.New("target member is not an admin")
	ErrCannotDemoteSelf  = errors.New("cannot demote yourself")
	ErrLastAdmin         = errors.New("a group must keep at least one admin")

	ErrSoleAdminMustTransferFirst = errors.New("sole admin must transfer admin role before leaving")

	// 重试次数耗尽 对外表现为可重试的临时失败
	ErrTransientFailure = errors.New("transient storage failure, try again")
)
