package handlers

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	Search  *SearchHandler
	Listing *ListingHandler
	Quote   *QuoteHandler
	Booking *BookingHandler
}
