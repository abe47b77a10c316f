package domain

import "strings"

const (
	publicChannelPrefix = "https://t.me/"
	privateInvitePrefix = "https://t.me/+"
)

// ChannelRef turns a task link into the reference the Gateway resolves: private invite
// links are kept verbatim, public links lose the https://t.me/ prefix.
func ChannelRef(link string) string {
	if strings.Contains(link, privateInvitePrefix) {
		return link
	}
	if len(link) <= len(publicChannelPrefix) {
		return link
	}
	return link[len(publicChannelPrefix):]
}
