package schemas

// Rank is one leaderboard row.
type Rank struct {
	Rank  int    `json:"rank" validate:"gte=1"`
	Name  string `json:"name" validate:"required"`
	Score int    `json:"score" validate:"gte=0"`
}

// RankQuery validates the leaderboard query parameters.
type RankQuery struct {
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

func (q *RankQuery) SetDefaults() {
	if q.Limit == 0 {
		q.Limit = 10
	}
}
