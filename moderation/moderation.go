package moderation

import (
	"errors"
	"strings"
)

// 所有用户产生的文本都要先经过这里：消息、群名、评论、举报理由
var ErrForbiddenContent = errors.New("content contains forbidden words")

// 违禁词表 来自原产品运营侧 不做大小写/变体归一化
var forbiddenWords = []string{
	"küfür", "hakaret", "aptal", "salak", "gerizekalı", "lan", "amk",
}

// Classify 判断文本是否可以发布。纯函数，无副作用。
func Classify(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range forbiddenWords {
		if strings.Contains(lower, word) {
			return false
		}
	}
	return true
}

// Ensure 校验文本，不允许发布时返回 ErrForbiddenContent。
// 调用方必须在收到错误后放弃整个写入。
func Ensure(text string) error {
	if !Classify(text) {
		return ErrForbiddenContent
	}
	return nil
}
