package dashboard

import (
	"vcnnet/internal/config"
	"vcnnet/internal/gateway"
)

// Messages delivered by background commands.
type (
	analysisDoneMsg struct {
		result gateway.AnalysisResult
	}

	chatReplyMsg struct {
		requestID string
		result    gateway.ChatResult
	}

	mediaDoneMsg struct {
		result gateway.MediaResult
	}

	keyRequestMsg struct {
		action string
		reply  chan keyReply
	}

	voiceStatusMsg string

	voiceStoppedMsg struct {
		err error
	}

	configReloadedMsg struct {
		cfg *config.Config
		err error
	}

	noticeMsg string
)
