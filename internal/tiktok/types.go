package tiktok

// TokenResult is the decoded token-endpoint response. TikTok reports
// rejections in-band with error/error_description fields.
type TokenResult struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
	OpenID           string `json:"open_id"`
	UnionID          string `json:"union_id"`
	Scope            string `json:"scope"`

	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
	LogID            string `json:"log_id"`
}

// CreatorInfo holds the optional creator metadata attached to a credential
// record when the enrichment call succeeds.
type CreatorInfo struct {
	Nickname         string
	AvatarURL        string
	Username         string
	CommentDisabled  bool
	DuetDisabled     bool
	StitchDisabled   bool
	MaxVideoDuration int64
}

// creatorInfoResponse mirrors the creator_info/query wire format.
type creatorInfoResponse struct {
	Data struct {
		CreatorAvatarURL        string `json:"creator_avatar_url"`
		CreatorNickname         string `json:"creator_nickname"`
		CreatorUsername         string `json:"creator_username"`
		CommentDisabled         bool   `json:"comment_disabled"`
		DuetDisabled            bool   `json:"duet_disabled"`
		StitchDisabled          bool   `json:"stitch_disabled"`
		MaxVideoPostDurationSec int64  `json:"max_video_post_duration_sec"`
	} `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		LogID   string `json:"log_id"`
	} `json:"error"`
}
