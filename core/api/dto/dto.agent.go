package dto

import models "influencer_studio/core/api/models/mongodb"

// CritiqueResult là response của POST /agent/critique/:postId
type CritiqueResult struct {
	PostID string             `json:"postId"`
	Agent  models.AgentRecord `json:"agent"`
	Mode   string             `json:"mode"` // "external" hoặc "fallback"
}

// ApplyResult là response của POST /agent/apply/:postId - draft mới sinh từ nextDraftConfig
type ApplyResult struct {
	SourcePostID string       `json:"sourcePostId"`
	Draft        models.Draft `json:"draft"`
}
