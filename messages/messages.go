package messages

import "github.com/chronobio/thermograph/schema"

// Request is the first message a websocket client sends: a view expression
// like "female | range 2 9 | CtoF" plus an optional window size.
type Request struct {
	Expr          string  `json:"expr"`
	WindowMinutes float64 `json:"windowMinutes,omitempty"`
}

// Data is pushed to websocket clients: the initial aggregated series, then
// one message per recompute.
type Data struct {
	Now    int64                 `json:"now,omitempty"`
	Series []schema.WindowSeries `json:"series,omitempty"`
	Error  string                `json:"error,omitempty"`
}
