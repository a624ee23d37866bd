package model

const (
	Range24Hours = "24hrs"
	Range48Hours = "48hrs"
	Range3Days   = "3days"
	Range7Days   = "7days"
	Range1Month  = "1month"
	Range3Months = "3months"
	Range6Months = "6months"
	RangeAllTime = "alltime"
)

var AnalyticsRanges = []string{
	Range24Hours,
	Range48Hours,
	Range3Days,
	Range7Days,
	Range1Month,
	Range3Months,
	Range6Months,
	RangeAllTime,
}

type GrowthPoint struct {
	Date      string `json:"date"`
	Followers int64  `json:"followers"`
	Views     int64  `json:"views"`
}

type EngagementPoint struct {
	Date     string `json:"date"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
}

type AudienceBreakdown struct {
	Countries map[string]int64 `json:"countries"`
	Devices   map[string]int64 `json:"devices"`
	Genders   map[string]int64 `json:"genders"`
}

type RecentPost struct {
	PostID   string `json:"post_id"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Earnings string `json:"earnings"`
}

// AnalyticsOverview is one coherent dashboard snapshot. All four panels are
// loaded together; a snapshot never mixes data from different ranges.
type AnalyticsOverview struct {
	Range       string            `json:"range"`
	Growth      []GrowthPoint     `json:"growth"`
	Engagement  []EngagementPoint `json:"engagement"`
	Audience    AudienceBreakdown `json:"audience"`
	RecentPosts []RecentPost      `json:"recent_posts"`
}
