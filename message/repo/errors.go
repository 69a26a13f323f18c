package repo

import "errors"

var (
	ErrNotAMember        = errors.New("actor is not a member of this group")
	ErrBannedFromChannel = errors.New("actor is banned from this channel")
	ErrMessageNotFound   = errors.New("message not found")
	ErrNotMessageSender  = errors.New("only the sender can delete a message")
	ErrUserNotFound      = errors.New("user not found")
)
