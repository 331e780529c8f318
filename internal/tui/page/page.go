package page

type PageID string

type PageChangeMsg struct {
	ID PageID
}
