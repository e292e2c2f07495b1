package coordinator

import (
	"fmt"
	"strings"
)

// links builds human-followable URLs for threads, comments and private
// messages on the external platform.
type links struct {
	threadBase  string
	messageBase string
	composeBase string
	accountName string
}

func newLinks(cfg Config) links {
	return links{
		threadBase:  cfg.ThreadLinkBase,
		messageBase: cfg.MessageLinkBase,
		composeBase: cfg.ComposeLinkBase,
		accountName: cfg.AccountName,
	}
}

func (l links) Thread(threadId string) string {
	return l.threadBase + threadId
}

// Message ids carry a type prefix assigned by the platform: t1_ for
// thread comments, t4_ for private messages.
const (
	commentPrefix = "t1_"
	messagePrefix = "t4_"
)

// ForThing renders a markdown link to an outstanding comment or message
// so a coach can find the right place to reply.
func (l links) ForThing(threadId, thingId string) (string, bool) {
	switch {
	case strings.HasPrefix(thingId, commentPrefix):
		return fmt.Sprintf("[comment](%s//%s)", l.Thread(threadId), thingId[len(commentPrefix):]), true
	case strings.HasPrefix(thingId, messagePrefix):
		return fmt.Sprintf("[message](%s%s)", l.messageBase, thingId[len(messagePrefix):]), true
	default:
		return "", false
	}
}

func thingKind(thingId string) (string, bool) {
	switch {
	case strings.HasPrefix(thingId, commentPrefix):
		return "comment", true
	case strings.HasPrefix(thingId, messagePrefix):
		return "message", true
	default:
		return "", false
	}
}

// Compose builds a pre-filled operator message link.
func (l links) Compose(subject, content string) string {
	return fmt.Sprintf("%s?to=%s&subject=%s&message=%s",
		l.composeBase,
		l.accountName,
		strings.ReplaceAll(subject, " ", "%20"),
		strings.ReplaceAll(content, " ", "%20"),
	)
}
