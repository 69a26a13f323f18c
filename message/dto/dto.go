package dto

import "github.com/google/uuid"

// ChannelRequest 频道描述符 kind 决定哪个字段有效
type ChannelRequest struct {
	Kind    string    `json:"kind" binding:"required,oneof=public group private"`
	GroupID uuid.UUID `json:"groupId"`
	PeerID  string    `json:"peerId"`
}

type SendMessageRequest struct {
	SenderID string         `json:"senderId" binding:"required"`
	Channel  ChannelRequest `json:"channel" binding:"required"`
	Kind     string         `json:"kind" binding:"required,oneof=text file audio"`
	Text     string         `json:"text"`
	FileRef  string         `json:"fileRef"`
}
