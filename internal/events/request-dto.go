package events

type EventListQuery struct {
	Tab string `form:"tab"`
}

type QuoteQuery struct {
	Quantity int `form:"quantity,default=1"`
}
